package serializer

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"task-manager/internal/domain"
	"task-manager/internal/repository/sqlite"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"tasks.txt", FormatText},
		{"tasks", FormatText},
		{"tasks.csv", FormatText},
		{"tasks.db", FormatSnapshot},
		{"/tmp/x/tasks.SQLITE", FormatSnapshot},
		{"tasks.sqlite3", FormatSnapshot},
		{"tasks.db.txt", FormatText},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFor(tt.path))
		})
	}
}

func TestSerializer_Dispatch(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	tasks := []domain.Task{{ID: 1, Priority: domain.PriorityMedium, Description: "d", Deadline: "x", Completed: true}}

	opened := 0
	s := NewWithOpener(Options{}, func(path string) (sqlite.Repository, error) {
		opened++
		return openSQLite(path)
	})

	textPath := filepath.Join(dir, "tasks.txt")
	require.NoError(t, s.Save(ctx, textPath, tasks))
	result, err := s.Load(ctx, textPath)
	require.NoError(t, err)
	assert.False(t, result.Tasks[0].Completed)
	assert.Equal(t, 0, opened)

	dbPath := filepath.Join(dir, "tasks.db")
	require.NoError(t, s.Save(ctx, dbPath, tasks))
	result, err = s.Load(ctx, dbPath)
	require.NoError(t, err)
	assert.True(t, result.Tasks[0].Completed)
	assert.Equal(t, 2, opened)
}

func TestSerializer_SkipOption(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, SaveFile(path, nil, 0644))

	strict := New(Options{Timeout: time.Second})
	lenient := New(Options{SkipMalformed: true})

	require.NoError(t, writeRaw(path, "1,1,a,b\nbad line\n"))

	_, err := strict.Load(ctx, path)
	assert.Error(t, err)

	result, err := lenient.Load(ctx, path)
	require.NoError(t, err)
	assert.Len(t, result.Tasks, 1)
	assert.Len(t, result.Skipped, 1)
}

func TestSerializer_SnapshotHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Options{Timeout: time.Minute})
	err := s.Save(ctx, filepath.Join(t.TempDir(), "tasks.db"), []domain.Task{{ID: 1, Priority: domain.PriorityLow}})
	assert.Error(t, err)
}
