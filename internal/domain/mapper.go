package domain

import (
	"fmt"

	"task-manager/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain Tasks and snapshot rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a snapshot row. Seq is left for the database to assign.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		TaskID:      domainTask.ID,
		Priority:    domainTask.Priority.Code(),
		Description: domainTask.Description,
		Deadline:    domainTask.Deadline,
		Completed:   domainTask.Completed,
	}
}

// FromDatabase converts a snapshot row to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	priority, err := ParsePriority(dbTask.Priority)
	if err != nil {
		return Task{}, fmt.Errorf("snapshot row %d: %w", dbTask.Seq, err)
	}
	return Task{
		ID:          dbTask.TaskID,
		Description: dbTask.Description,
		Priority:    priority,
		Deadline:    dbTask.Deadline,
		Completed:   dbTask.Completed,
	}, nil
}

// ToDatabaseSlice converts a slice of domain Tasks to snapshot rows.
func (m *TaskMapper) ToDatabaseSlice(domainTasks []Task) []sqlite.Task {
	dbTasks := make([]sqlite.Task, len(domainTasks))
	for i, task := range domainTasks {
		dbTasks[i] = m.ToDatabase(task)
	}
	return dbTasks
}

// FromDatabaseSlice converts snapshot rows to domain Tasks, stopping at the first bad row.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) ([]Task, error) {
	domainTasks := make([]Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		task, err := m.FromDatabase(*dbTask)
		if err != nil {
			return nil, err
		}
		domainTasks = append(domainTasks, task)
	}
	return domainTasks, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
