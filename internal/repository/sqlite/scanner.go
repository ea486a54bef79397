package sqlite

import "time"

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	err := scanner.Scan(
		&task.Seq,
		&task.TaskID,
		&task.Priority,
		&task.Description,
		&task.Deadline,
		&task.Completed,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple task rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanSnapshot scans a snapshots row. saved_at is stored as RFC 3339 text.
func ScanSnapshot(scanner Scanner) (*Snapshot, error) {
	snapshot := &Snapshot{}
	var savedAt string
	if err := scanner.Scan(&snapshot.ID, &savedAt, &snapshot.TaskCount); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return nil, err
	}
	snapshot.SavedAt = t
	return snapshot, nil
}
