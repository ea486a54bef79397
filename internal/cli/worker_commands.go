package cli

import (
	"context"
	"fmt"

	"task-manager/internal/api"
)

// AddWorkerCommand prompts for a name and registers a worker
type AddWorkerCommand struct {
	app *App
	api api.API
}

// NewAddWorkerCommand creates a new add worker handler
func NewAddWorkerCommand(app *App) *AddWorkerCommand {
	return &AddWorkerCommand{app: app, api: app.api}
}

// Execute runs the add worker action
func (c *AddWorkerCommand) Execute(ctx context.Context, args []string) error {
	name, err := c.app.prompt("Enter worker name: ")
	if err != nil {
		return err
	}
	c.api.AddWorker(name)
	fmt.Fprintln(c.app.out, "Worker added successfully.")
	return nil
}

// ShowWorkersCommand prints every worker
type ShowWorkersCommand struct {
	app *App
	api api.API
}

// NewShowWorkersCommand creates a new show workers handler
func NewShowWorkersCommand(app *App) *ShowWorkersCommand {
	return &ShowWorkersCommand{app: app, api: app.api}
}

// Execute runs the show workers action
func (c *ShowWorkersCommand) Execute(ctx context.Context, args []string) error {
	PrintWorkers(c.app.out, c.api.ListWorkers())
	return nil
}
