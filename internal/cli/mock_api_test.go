package cli

import (
	"context"
	"io"

	"task-manager/internal/api"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/repository/memory"
)

// mockAPI implements the API interface for testing. Store operations go to a
// real in-memory store; file operations return the configured results.
type mockAPI struct {
	store *memory.Store

	saveErr    error
	loadErr    error
	loadReport *api.LoadReport
	exportErr  error

	savedPaths  []string
	loadedPaths []string
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{store: memory.New()}
}

func (m *mockAPI) AddWorker(name string) domain.Worker {
	return m.store.AddWorker(name)
}

func (m *mockAPI) ListWorkers() []domain.Worker {
	return m.store.ListWorkers()
}

func (m *mockAPI) AddTask(description string, priority domain.Priority, deadline string) domain.Task {
	return m.store.AddTask(description, priority, deadline)
}

func (m *mockAPI) AssignTask(taskID, workerID int64) (domain.Assignment, error) {
	return m.store.AssignTask(taskID, workerID)
}

func (m *mockAPI) CompleteTask(taskID, workerID int64) (domain.Completion, error) {
	return m.store.CompleteTask(taskID, workerID)
}

func (m *mockAPI) ListTasks() []domain.Task {
	return m.store.ListTasks()
}

func (m *mockAPI) SaveTasks(ctx context.Context, path string) error {
	m.savedPaths = append(m.savedPaths, path)
	return m.saveErr
}

func (m *mockAPI) LoadTasks(ctx context.Context, path string) (*api.LoadReport, error) {
	m.loadedPaths = append(m.loadedPaths, path)
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.loadReport != nil {
		return m.loadReport, nil
	}
	return &api.LoadReport{Path: path}, nil
}

func (m *mockAPI) ExportTasks(w io.Writer, format string) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	if format != "csv" {
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
	_, err := io.WriteString(w, "ID,Priority,Description,Deadline,Completed\n")
	return err
}
