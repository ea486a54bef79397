package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *int:
			*v = ts.data[i].(int)
		case *string:
			*v = ts.data[i].(string)
		case *bool:
			*v = ts.data[i].(bool)
		}
	}

	return nil
}

// TestRows walks a fixed set of scanners
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (tr *TestRows) Next() bool {
	if tr.pos >= len(tr.rows) {
		return false
	}
	tr.pos++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.pos-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name: "completed task",
			scanner: &TestScanner{
				data: []interface{}{int64(1), int64(10), 3, "Deploy", "2024-01-01", true},
			},
			expected: &Task{Seq: 1, TaskID: 10, Priority: 3, Description: "Deploy", Deadline: "2024-01-01", Completed: true},
		},
		{
			name: "open task with empty deadline",
			scanner: &TestScanner{
				data: []interface{}{int64(2), int64(11), 1, "Tidy", "", false},
			},
			expected: &Task{Seq: 2, TaskID: 11, Priority: 1, Description: "Tidy"},
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanTask(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanTasks(t *testing.T) {
	t.Run("multiple rows", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{
			{data: []interface{}{int64(1), int64(1), 1, "a", "", false}},
			{data: []interface{}{int64(2), int64(1), 2, "b", "", true}},
		}}
		tasks, err := ScanTasks(rows)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "b", tasks[1].Description)
		assert.Equal(t, int64(1), tasks[1].TaskID)
	})

	t.Run("row error", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{{err: errors.New("bad row")}}}
		_, err := ScanTasks(rows)
		assert.Error(t, err)
	})

	t.Run("iteration error", func(t *testing.T) {
		rows := &TestRows{err: errors.New("cursor closed")}
		_, err := ScanTasks(rows)
		assert.EqualError(t, err, "cursor closed")
	})
}

func TestScanSnapshot(t *testing.T) {
	snapshot, err := ScanSnapshot(&TestScanner{
		data: []interface{}{"3f1c2d9e-0000-4000-8000-000000000001", "2024-03-01T10:00:00Z", 4},
	})
	require.NoError(t, err)
	assert.Equal(t, "3f1c2d9e-0000-4000-8000-000000000001", snapshot.ID)
	assert.Equal(t, 4, snapshot.TaskCount)
	assert.Equal(t, 2024, snapshot.SavedAt.Year())

	_, err = ScanSnapshot(&TestScanner{data: []interface{}{"id", "yesterday", 1}})
	assert.Error(t, err, "saved_at must be RFC 3339")
}
