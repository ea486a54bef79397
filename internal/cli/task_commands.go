package cli

import (
	"context"
	"fmt"
	"strings"

	"task-manager/internal/api"
	"task-manager/internal/domain"
)

// AddTaskCommand prompts for the task fields and creates a task
type AddTaskCommand struct {
	app *App
	api api.API
}

// NewAddTaskCommand creates a new add task handler
func NewAddTaskCommand(app *App) *AddTaskCommand {
	return &AddTaskCommand{app: app, api: app.api}
}

// Execute runs the add task action. Any priority answer other than 1, 2 or 3 means Low.
func (c *AddTaskCommand) Execute(ctx context.Context, args []string) error {
	description, err := c.app.prompt("Enter task description: ")
	if err != nil {
		return err
	}
	deadline, err := c.app.prompt("Enter task deadline (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	answer, err := c.app.prompt(priorityPrompt())
	if err != nil {
		return err
	}

	priority := domain.PriorityLow
	if choice, err := c.app.validator.ParseChoice(answer); err == nil {
		priority = domain.PriorityFromChoice(choice)
	}

	c.api.AddTask(description, priority, deadline)
	fmt.Fprintln(c.app.out, "Task added successfully.")
	return nil
}

// priorityPrompt renders "Select task priority (1: Low, 2: Medium, 3: High): "
func priorityPrompt() string {
	options := make([]string, 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		options = append(options, fmt.Sprintf("%d: %s", p.Code(), p))
	}
	return "Select task priority (" + strings.Join(options, ", ") + "): "
}

// AssignTaskCommand checks that a task and a worker both exist
type AssignTaskCommand struct {
	app *App
	api api.API
}

// NewAssignTaskCommand creates a new assign task handler
func NewAssignTaskCommand(app *App) *AssignTaskCommand {
	return &AssignTaskCommand{app: app, api: app.api}
}

// Execute runs the assign task action
func (c *AssignTaskCommand) Execute(ctx context.Context, args []string) error {
	taskID, err := c.app.promptID("Enter task ID to assign: ", "task_id")
	if err != nil {
		return err
	}
	workerID, err := c.app.promptID("Enter worker ID to assign the task to: ", "worker_id")
	if err != nil {
		return err
	}

	assignment, err := c.api.AssignTask(taskID, workerID)
	if err != nil {
		if c.app.errorHandler.IsNotFoundError(err) {
			fmt.Fprintln(c.app.out, "Task or Worker not found.")
			return nil
		}
		return err
	}
	fmt.Fprintf(c.app.out, "Task \"%s\" assigned to worker %s.\n", assignment.Task.Description, assignment.Worker.Name)
	return nil
}

// CompleteTaskCommand marks a task done
type CompleteTaskCommand struct {
	app *App
	api api.API
}

// NewCompleteTaskCommand creates a new complete task handler
func NewCompleteTaskCommand(app *App) *CompleteTaskCommand {
	return &CompleteTaskCommand{app: app, api: app.api}
}

// Execute runs the complete task action
func (c *CompleteTaskCommand) Execute(ctx context.Context, args []string) error {
	taskID, err := c.app.promptID("Enter task ID to complete: ", "task_id")
	if err != nil {
		return err
	}
	workerID, err := c.app.promptID("Enter worker ID completing the task: ", "worker_id")
	if err != nil {
		return err
	}

	completion, err := c.api.CompleteTask(taskID, workerID)
	if err != nil {
		if c.app.errorHandler.IsNotFoundError(err) {
			fmt.Fprintln(c.app.out, "Task not found.")
			return nil
		}
		return err
	}
	fmt.Fprintf(c.app.out, "Task \"%s\" marked as completed by worker ID %d.\n", completion.Task.Description, completion.WorkerID)
	return nil
}

// ShowTasksCommand prints every task
type ShowTasksCommand struct {
	app *App
	api api.API
}

// NewShowTasksCommand creates a new show tasks handler
func NewShowTasksCommand(app *App) *ShowTasksCommand {
	return &ShowTasksCommand{app: app, api: app.api}
}

// Execute runs the show tasks action
func (c *ShowTasksCommand) Execute(ctx context.Context, args []string) error {
	PrintTasks(c.app.out, c.api.ListTasks(), c.app.config.Display.PriorityStyle)
	return nil
}
