package serializer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

func TestSaveFile_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	tasks := []domain.Task{
		{ID: 1, Priority: domain.PriorityHigh, Description: "Paint fence", Deadline: "2024-06-01"},
		{ID: 2, Priority: domain.PriorityMedium, Description: "Sand deck", Deadline: "2024-06-02", Completed: true},
	}

	require.NoError(t, SaveFile(path, tasks, 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,3,Paint fence,2024-06-01\n2,2,Sand deck,2024-06-02\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	result, err := LoadFile(path, false)
	require.NoError(t, err)
	require.Len(t, result.Tasks, 2)
	assert.Equal(t, tasks[0], result.Tasks[0])
	assert.False(t, result.Tasks[1].Completed, "the text format does not carry completion")
}

func TestSaveFile_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content line\n"), 0644))

	require.NoError(t, SaveFile(path, []domain.Task{{ID: 1, Priority: domain.PriorityLow, Description: "x"}}, 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,1,x,\n", string(data))
}

func TestSaveFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, SaveFile(path, nil, 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSaveFile_UnopenableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "tasks.txt")

	err := SaveFile(path, []domain.Task{{ID: 1, Priority: domain.PriorityLow}}, 0644)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeFileOpen))
	assert.Equal(t, "Failed to open file: "+path, apperrors.GetUserMessage(err))
}

func TestLoadFile_MissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	result, err := LoadFile(path, false)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeFileOpen))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_ParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("x,1,desc,2024-01-01\n"), 0644))

	_, err := LoadFile(path, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeParse))
	assert.Contains(t, err.Error(), path+":1:")
}

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
