package api

import (
	"context"
	"io"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/memory"
	"task-manager/internal/serializer"
	"task-manager/internal/validation"
)

// API defines every operation the interactive menu and subcommands can run.
type API interface {
	// Worker operations
	AddWorker(name string) domain.Worker
	ListWorkers() []domain.Worker

	// Task operations
	AddTask(description string, priority domain.Priority, deadline string) domain.Task
	AssignTask(taskID, workerID int64) (domain.Assignment, error)
	CompleteTask(taskID, workerID int64) (domain.Completion, error)
	ListTasks() []domain.Task

	// File operations
	SaveTasks(ctx context.Context, path string) error
	LoadTasks(ctx context.Context, path string) (*LoadReport, error)
	ExportTasks(w io.Writer, format string) error
}

// LoadReport describes what a LoadTasks call added to the store
type LoadReport struct {
	Path    string
	Loaded  []domain.Task
	Skipped []serializer.LineError
}

// Options configures file handling for an API instance
type Options struct {
	// ResyncIDs advances the task counter past loaded ids after each load
	ResyncIDs bool
}

type apiImpl struct {
	store      *memory.Store
	serializer *serializer.Serializer
	validator  *validation.RecordValidator
	opts       Options
}

// New creates a new API instance over one store.
func New(store *memory.Store, s *serializer.Serializer, opts Options) API {
	return &apiImpl{
		store:      store,
		serializer: s,
		validator:  validation.NewRecordValidator(),
		opts:       opts,
	}
}

func (a *apiImpl) AddWorker(name string) domain.Worker {
	return a.store.AddWorker(name)
}

func (a *apiImpl) ListWorkers() []domain.Worker {
	return a.store.ListWorkers()
}

func (a *apiImpl) AddTask(description string, priority domain.Priority, deadline string) domain.Task {
	return a.store.AddTask(description, priority, deadline)
}

func (a *apiImpl) AssignTask(taskID, workerID int64) (domain.Assignment, error) {
	return a.store.AssignTask(taskID, workerID)
}

func (a *apiImpl) CompleteTask(taskID, workerID int64) (domain.Completion, error) {
	return a.store.CompleteTask(taskID, workerID)
}

func (a *apiImpl) ListTasks() []domain.Task {
	return a.store.ListTasks()
}

// SaveTasks writes the current task list to path
func (a *apiImpl) SaveTasks(ctx context.Context, path string) error {
	if err := a.validator.ValidateFilePath(path); err != nil {
		return err
	}
	return a.serializer.Save(ctx, path, a.store.ListTasks())
}

// LoadTasks appends the tasks stored at path. On any error the store is left as it was.
func (a *apiImpl) LoadTasks(ctx context.Context, path string) (*LoadReport, error) {
	if err := a.validator.ValidateFilePath(path); err != nil {
		return nil, err
	}

	result, err := a.serializer.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	loaded := a.store.RestoreTasks(result.Tasks, a.opts.ResyncIDs)
	if len(result.Skipped) > 0 {
		logging.Debugf("skipped %d malformed lines in %s\n", len(result.Skipped), path)
	}
	return &LoadReport{Path: path, Loaded: loaded, Skipped: result.Skipped}, nil
}

// ExportTasks writes the task list to w in the named format
func (a *apiImpl) ExportTasks(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "csv":
		return serializer.WriteCSV(w, a.store.ListTasks())
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}
