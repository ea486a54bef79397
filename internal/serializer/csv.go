package serializer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"task-manager/internal/domain"
)

// CSVHeader is the first row written by WriteCSV
var CSVHeader = []string{"ID", "Priority", "Description", "Deadline", "Completed"}

// WriteCSV writes tasks as CSV with a header row. Unlike the text format,
// fields containing commas are quoted.
func WriteCSV(w io.Writer, tasks []domain.Task) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.Priority.String(),
			task.Description,
			task.Deadline,
			strconv.FormatBool(task.Completed),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
