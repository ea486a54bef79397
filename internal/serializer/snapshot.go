package serializer

import (
	"context"
	"os"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/sqlite"
)

// OpenSnapshotFunc opens a snapshot database
type OpenSnapshotFunc func(path string) (sqlite.Repository, error)

func openSQLite(path string) (sqlite.Repository, error) {
	repo, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// SaveSnapshot replaces the contents of the snapshot database at path with tasks
func SaveSnapshot(ctx context.Context, open OpenSnapshotFunc, path string, tasks []domain.Task, perm os.FileMode) (*sqlite.Snapshot, error) {
	// sqlite would report an unwritable path only on first use, so probe it first
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, perm)
	if err != nil {
		return nil, errors.NewFileOpenError(path, err)
	}
	f.Close()

	repo, err := open(path)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	rows := domain.NewMapper().Task.ToDatabaseSlice(tasks)
	ptrs := make([]*sqlite.Task, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	return repo.ReplaceTasks(ctx, ptrs)
}

// LoadSnapshot reads every task row from the snapshot database at path
func LoadSnapshot(ctx context.Context, open OpenSnapshotFunc, path string) (*LoadResult, error) {
	// opening a missing path would create an empty database
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewFileOpenError(path, err)
	}

	repo, err := open(path)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	if snapshot, err := repo.LatestSnapshot(ctx); err == nil {
		logging.Debugf("loading snapshot %s saved %s\n", snapshot.ID, snapshot.SavedAt.Format("2006-01-02 15:04:05"))
	}

	rows, err := repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := domain.NewMapper().Task.FromDatabaseSlice(rows)
	if err != nil {
		return nil, errors.NewParseError(path, 0, err.Error(), err)
	}
	return &LoadResult{Tasks: tasks}, nil
}
