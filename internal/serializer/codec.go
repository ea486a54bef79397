// Package serializer reads and writes task lists: the comma-separated text
// format, SQLite snapshots and CSV exports.
package serializer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// LineError describes a line that could not be decoded
type LineError struct {
	Line   int
	Reason string
}

// LoadResult is what a load produced. Skipped is only filled when malformed
// lines are skipped instead of failing the load.
type LoadResult struct {
	Tasks   []domain.Task
	Skipped []LineError
}

// EncodeLine renders one task as id,priorityCode,description,deadline.
// Commas inside fields are written as-is.
func EncodeLine(task domain.Task) string {
	return strconv.FormatInt(task.ID, 10) + "," +
		strconv.Itoa(task.Priority.Code()) + "," +
		task.Description + "," +
		task.Deadline
}

// DecodeLine parses one line. The id ends at the first comma, the priority at
// the second, the description at the third; the deadline keeps the rest,
// commas included. Missing trailing fields read as empty strings.
func DecodeLine(line string) (domain.Task, error) {
	fields := strings.SplitN(line, ",", 4)
	for len(fields) < 4 {
		fields = append(fields, "")
	}

	rv := validation.NewRecordValidator()
	id, err := rv.ParseID("task_id", fields[0])
	if err != nil {
		return domain.Task{}, err
	}
	priority, err := rv.ParsePriorityCode(fields[1])
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.NewTask(fields[2], priority, fields[3])
	task.ID = id
	return task, nil
}

// Encode writes one line per task, in order, each ending in \n
func Encode(w io.Writer, tasks []domain.Task) error {
	bw := bufio.NewWriter(w)
	for _, task := range tasks {
		if _, err := bw.WriteString(EncodeLine(task) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads tasks from r. name is used in error messages. With skip set,
// malformed lines are collected in the result; otherwise the first one fails
// the whole decode with a parse error. Empty lines are ignored.
func Decode(r io.Reader, name string, skip bool) (*LoadResult, error) {
	result := &LoadResult{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		task, err := DecodeLine(line)
		if err != nil {
			reason := lineReason(err)
			if !skip {
				return nil, errors.NewParseError(name, lineNo, reason, err)
			}
			result.Skipped = append(result.Skipped, LineError{Line: lineNo, Reason: reason})
			continue
		}
		result.Tasks = append(result.Tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewParseError(name, lineNo+1, "read failed", err)
	}
	return result, nil
}

func lineReason(err error) string {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.GetUserFriendlyMessage()
	}
	return fmt.Sprint(err)
}
