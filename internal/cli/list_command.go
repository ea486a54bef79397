package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// ListCommand loads a task file and prints the listing
type ListCommand struct {
	app *App
	api api.API
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, api: app.api}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "list", "usage: tm list FILE")
	}
	report, err := c.api.LoadTasks(ctx, args[0])
	if err != nil {
		return err
	}
	printSkipped(c.app.errOut, report.Path, report.Skipped)
	PrintTasks(c.app.out, c.api.ListTasks(), c.app.config.Display.PriorityStyle)
	return nil
}

// PrintTasks writes the task listing in creation order
func PrintTasks(w io.Writer, tasks []domain.Task, priorityStyle string) {
	fmt.Fprintln(w, "Tasks:")
	for _, task := range tasks {
		fmt.Fprintln(w, FormatTask(task, priorityStyle))
	}
}

// FormatTask renders one listing line
func FormatTask(task domain.Task, priorityStyle string) string {
	priority := task.Priority.String()
	if priorityStyle == config.PriorityStyleCode {
		priority = strconv.Itoa(task.Priority.Code())
	}
	completed := "No"
	if task.Completed {
		completed = "Yes"
	}
	return fmt.Sprintf("ID: %d, Description: %s, Priority: %s, Deadline: %s, Completed: %s",
		task.ID, task.Description, priority, task.Deadline, completed)
}

// PrintWorkers writes the worker listing in creation order
func PrintWorkers(w io.Writer, workers []domain.Worker) {
	fmt.Fprintln(w, "Workers:")
	for _, worker := range workers {
		fmt.Fprintf(w, "ID: %d, Name: %s\n", worker.ID, worker.Name)
	}
}
