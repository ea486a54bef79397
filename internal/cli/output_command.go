package cli

import (
	"context"
	"strings"

	"task-manager/internal/api"
	"task-manager/internal/errors"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app *App
	api api.API
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app, api: app.api}
}

// Execute runs the output command: tm output FILE [format=csv]
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "output", "usage: tm output FILE format=csv")
	}

	format := c.app.config.Commands.OutputDefaultFormat
	if len(args) > 1 {
		option := args[1]
		if !strings.HasPrefix(option, "format=") {
			return errors.NewInvalidInputError("format", option, "invalid format option")
		}
		format = strings.TrimPrefix(option, "format=")
	}
	if format != "csv" {
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}

	report, err := c.api.LoadTasks(ctx, args[0])
	if err != nil {
		return err
	}
	printSkipped(c.app.errOut, report.Path, report.Skipped)
	return c.api.ExportTasks(c.app.out, format)
}
