// Package memory holds the in-process record store for tasks and workers.
package memory

import (
	"strconv"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
)

// Store owns the task and worker collections and issues their ids.
// It is not safe for concurrent use; the interactive session drives it from one goroutine.
type Store struct {
	tasks        []domain.Task
	workers      []domain.Worker
	nextTaskID   int64
	nextWorkerID int64
}

// New creates an empty store whose counters start at 1
func New() *Store {
	return &Store{
		nextTaskID:   1,
		nextWorkerID: 1,
	}
}

// AddWorker appends a worker with the next worker id
func (s *Store) AddWorker(name string) domain.Worker {
	worker := domain.NewWorker(name)
	worker.ID = s.nextWorkerID
	s.nextWorkerID++
	s.workers = append(s.workers, worker)
	return worker
}

// AddTask appends an open task with the next task id
func (s *Store) AddTask(description string, priority domain.Priority, deadline string) domain.Task {
	task := domain.NewTask(description, priority, deadline)
	task.ID = s.nextTaskID
	s.nextTaskID++
	s.tasks = append(s.tasks, task)
	return task
}

// AssignTask confirms that both ids exist. Nothing is recorded.
func (s *Store) AssignTask(taskID, workerID int64) (domain.Assignment, error) {
	ti := s.findTask(taskID)
	if ti < 0 {
		return domain.Assignment{}, errors.NewNotFoundError("task", strconv.FormatInt(taskID, 10))
	}
	wi := s.findWorker(workerID)
	if wi < 0 {
		return domain.Assignment{}, errors.NewNotFoundError("worker", strconv.FormatInt(workerID, 10))
	}
	return domain.Assignment{Task: s.tasks[ti], Worker: s.workers[wi]}, nil
}

// CompleteTask marks the task done. workerID is reported back but not checked.
func (s *Store) CompleteTask(taskID, workerID int64) (domain.Completion, error) {
	ti := s.findTask(taskID)
	if ti < 0 {
		return domain.Completion{}, errors.NewNotFoundError("task", strconv.FormatInt(taskID, 10))
	}
	s.tasks[ti].Complete()
	return domain.Completion{Task: s.tasks[ti], WorkerID: workerID}, nil
}

// ListTasks returns a copy of all tasks in creation order
func (s *Store) ListTasks() []domain.Task {
	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// ListWorkers returns a copy of all workers in creation order
func (s *Store) ListWorkers() []domain.Worker {
	workers := make([]domain.Worker, len(s.workers))
	copy(workers, s.workers)
	return workers
}

// RestoreTasks appends loaded records. Each one goes through AddTask, drawing a
// fresh id, and then takes the id (and completed flag) carried by the record.
// The counter is left alone unless resync is set, so later AddTask calls can
// reuse a loaded id.
func (s *Store) RestoreTasks(records []domain.Task, resync bool) []domain.Task {
	restored := make([]domain.Task, 0, len(records))
	for _, rec := range records {
		s.AddTask(rec.Description, rec.Priority, rec.Deadline)
		last := &s.tasks[len(s.tasks)-1]
		last.ID = rec.ID
		if rec.Completed {
			last.Complete()
		}
		restored = append(restored, *last)

		if resync && rec.ID >= s.nextTaskID {
			s.nextTaskID = rec.ID + 1
		}
	}
	logging.Debugf("restored %d tasks, next task id %d\n", len(restored), s.nextTaskID)
	return restored
}

// NextTaskID returns the id the next AddTask will use
func (s *Store) NextTaskID() int64 {
	return s.nextTaskID
}

// NextWorkerID returns the id the next AddWorker will use
func (s *Store) NextWorkerID() int64 {
	return s.nextWorkerID
}

// findTask returns the index of the first task with id, or -1
func (s *Store) findTask(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findWorker(id int64) int {
	for i := range s.workers {
		if s.workers[i].ID == id {
			return i
		}
	}
	return -1
}
