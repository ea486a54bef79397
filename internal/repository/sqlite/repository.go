package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the snapshot storage operations
type Repository interface {
	// CreateTask appends one row and sets its Seq
	CreateTask(ctx context.Context, task *Task) error
	// GetTask returns the row at the given list position
	GetTask(ctx context.Context, seq int64) (*Task, error)
	// ListTasks returns all rows in list order
	ListTasks(ctx context.Context) ([]*Task, error)
	// ReplaceTasks swaps the whole snapshot for tasks in one transaction and records the write
	ReplaceTasks(ctx context.Context, tasks []*Task) (*Snapshot, error)
	// LatestSnapshot returns the most recent ReplaceTasks record
	LatestSnapshot(ctx context.Context) (*Snapshot, error)
	// DeleteAllTasks empties the snapshot and returns how many rows went
	DeleteAllTasks(ctx context.Context) (int64, error)

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens (or creates) the snapshot database at dbPath and migrates it
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// one connection: ":memory:" databases are per-connection and access is serial anyway
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("opened snapshot database %s\n", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const insertTaskQuery = `
	INSERT INTO tasks (task_id, priority, description, deadline, completed)
	VALUES (?, ?, ?, ?, ?)`

// CreateTask appends a task row
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	return createTask(ctx, r.db, task)
}

func createTask(ctx context.Context, db Executor, task *Task) error {
	seq, err := ExecuteWithLastInsertID(ctx, db, insertTaskQuery,
		task.TaskID, task.Priority, task.Description, task.Deadline, task.Completed)
	if err != nil {
		return err
	}
	task.Seq = seq
	return nil
}

// GetTask retrieves a row by its list position
func (r *SQLiteRepository) GetTask(ctx context.Context, seq int64) (*Task, error) {
	query := `
	SELECT seq, task_id, priority, description, deadline, completed
	FROM tasks
	WHERE seq = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task row", fmt.Sprintf("%d", seq), seq)
}

// ListTasks retrieves all rows in the order they were written
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT seq, task_id, priority, description, deadline, completed
	FROM tasks
	ORDER BY seq ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// DeleteAllTasks removes every row
func (r *SQLiteRepository) DeleteAllTasks(ctx context.Context) (int64, error) {
	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM tasks`)
}

const insertSnapshotQuery = `
	INSERT INTO snapshots (snapshot_id, saved_at, task_count)
	VALUES (?, ?, ?)`

// ReplaceTasks overwrites the snapshot with tasks, keeping their order
func (r *SQLiteRepository) ReplaceTasks(ctx context.Context, tasks []*Task) (*Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := ExecuteWithRowsAffected(ctx, tx, `DELETE FROM tasks`); err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if err := createTask(ctx, tx, task); err != nil {
			return nil, err
		}
	}

	snapshot := &Snapshot{
		ID:        uuid.NewString(),
		SavedAt:   time.Now().UTC(),
		TaskCount: len(tasks),
	}
	if _, err := ExecuteWithLastInsertID(ctx, tx, insertSnapshotQuery,
		snapshot.ID, snapshot.SavedAt.Format(time.RFC3339Nano), snapshot.TaskCount); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleDatabaseError("commit snapshot", err)
	}
	logging.Debugf("wrote snapshot %s with %d task rows\n", snapshot.ID, len(tasks))
	return snapshot, nil
}

// LatestSnapshot returns the newest snapshot record
func (r *SQLiteRepository) LatestSnapshot(ctx context.Context) (*Snapshot, error) {
	query := `
	SELECT snapshot_id, saved_at, task_count
	FROM snapshots
	ORDER BY seq DESC
	LIMIT 1`
	return QuerySingle(ctx, r.db, query, ScanSnapshot, "snapshot", "latest")
}
