package sqlite

import "time"

// Task is one row of the tasks snapshot table.
// Seq preserves list order; TaskID may repeat because loaded files can carry duplicate ids.
type Task struct {
	Seq         int64
	TaskID      int64
	Priority    int
	Description string
	Deadline    string
	Completed   bool
}

// Snapshot records one ReplaceTasks write
type Snapshot struct {
	ID        string
	SavedAt   time.Time
	TaskCount int
}
