package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name        string
		description string
		priority    Priority
		deadline    string
		expected    Task
	}{
		{
			name:        "creates open task",
			description: "Write report",
			priority:    PriorityHigh,
			deadline:    "2024-01-01",
			expected:    Task{Description: "Write report", Priority: PriorityHigh, Deadline: "2024-01-01"},
		},
		{
			name:        "keeps unvalidated deadline text",
			description: "Call back",
			priority:    PriorityLow,
			deadline:    "next tuesday-ish",
			expected:    Task{Description: "Call back", Priority: PriorityLow, Deadline: "next tuesday-ish"},
		},
		{
			name:        "allows empty fields",
			description: "",
			priority:    PriorityMedium,
			deadline:    "",
			expected:    Task{Priority: PriorityMedium},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewTask(tt.description, tt.priority, tt.deadline)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, TaskStateOpen, result.State())
		})
	}
}

func TestTask_Complete(t *testing.T) {
	task := NewTask("Deploy", PriorityHigh, "2024-02-01")
	assert.Equal(t, TaskStateOpen, task.State())

	task.Complete()
	assert.True(t, task.Completed)
	assert.Equal(t, TaskStateDone, task.State())

	task.Complete()
	assert.True(t, task.Completed, "completing twice keeps the task done")
	assert.Equal(t, "Deploy", task.Description)
	assert.Equal(t, PriorityHigh, task.Priority)
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "Fix bug", Task{ID: 3, Description: "Fix bug"}.String())
	assert.Equal(t, "", Task{ID: 3}.String())
}

func TestNewWorker(t *testing.T) {
	w := NewWorker("Alice")
	assert.Equal(t, Worker{Name: "Alice"}, w)
	assert.Equal(t, "Alice", w.String())
}
