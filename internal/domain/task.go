package domain

// TaskState is the lifecycle position of a task: Open until completed, then Done for good.
type TaskState string

const (
	TaskStateOpen TaskState = "open"
	TaskStateDone TaskState = "done"
)

// Task represents a unit of work in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Description string
	Priority    Priority
	Deadline    string
	Completed   bool
}

// NewTask creates an open Task. The ID is assigned by the store.
func NewTask(description string, priority Priority, deadline string) Task {
	return Task{
		Description: description,
		Priority:    priority,
		Deadline:    deadline,
	}
}

// State returns the lifecycle state derived from the completed flag.
func (t Task) State() TaskState {
	if t.Completed {
		return TaskStateDone
	}
	return TaskStateOpen
}

// Complete moves the task to Done. Completing a finished task is a no-op.
func (t *Task) Complete() {
	t.Completed = true
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}

// Worker is someone tasks can be handed to.
type Worker struct {
	ID   int64
	Name string
}

// NewWorker creates a Worker with the given name. The ID is assigned by the store.
func NewWorker(name string) Worker {
	return Worker{Name: name}
}

// String returns the worker name for display purposes.
func (w Worker) String() string {
	return w.Name
}

// Assignment confirms that a task and a worker both exist. It is not recorded anywhere.
type Assignment struct {
	Task   Task
	Worker Worker
}

// Completion reports a task marked done and the worker id given for it.
// The worker id is neither validated nor stored.
type Completion struct {
	Task     Task
	WorkerID int64
}
