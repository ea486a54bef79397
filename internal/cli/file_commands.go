package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"task-manager/internal/api"
	"task-manager/internal/serializer"
)

// SaveCommand writes the task list to a file
type SaveCommand struct {
	app *App
	api api.API
}

// NewSaveCommand creates a new save handler
func NewSaveCommand(app *App) *SaveCommand {
	return &SaveCommand{app: app, api: app.api}
}

// Execute runs the save action. A blank filename means the configured default.
func (c *SaveCommand) Execute(ctx context.Context, args []string) error {
	path, err := c.app.promptFilename("Enter filename to save tasks: ")
	if err != nil {
		return err
	}
	if err := c.api.SaveTasks(ctx, path); err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "Tasks saved successfully to %s\n", path)
	return nil
}

// LoadCommand appends the tasks stored in a file
type LoadCommand struct {
	app *App
	api api.API
}

// NewLoadCommand creates a new load handler
func NewLoadCommand(app *App) *LoadCommand {
	return &LoadCommand{app: app, api: app.api}
}

// Execute runs the load action
func (c *LoadCommand) Execute(ctx context.Context, args []string) error {
	path, err := c.app.promptFilename("Enter filename to load tasks: ")
	if err != nil {
		return err
	}
	report, err := c.api.LoadTasks(ctx, path)
	if err != nil {
		return err
	}
	printSkipped(c.app.errOut, report.Path, report.Skipped)
	fmt.Fprintf(c.app.out, "Tasks loaded successfully from %s\n", path)
	return nil
}

func (a *App) promptFilename(label string) (string, error) {
	line, err := a.prompt(label)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		path = a.config.Storage.DefaultFile
	}
	return path, nil
}

// printSkipped reports lines a lenient load passed over
func printSkipped(w io.Writer, path string, skipped []serializer.LineError) {
	if len(skipped) == 0 {
		return
	}
	lines := make([]string, len(skipped))
	for i, s := range skipped {
		lines[i] = strconv.Itoa(s.Line)
	}
	fmt.Fprintf(w, "Skipped %d malformed line(s) in %s: %s\n", len(skipped), path, strings.Join(lines, ", "))
}
