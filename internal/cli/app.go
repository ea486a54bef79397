package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/validation"
)

// errEndOfInput is returned by prompts once the input stream is exhausted
var errEndOfInput = errors.New("end of input")

// App represents the interactive task manager session
type App struct {
	api          api.API
	config       *config.Config
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	validator    *validation.RecordValidator

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp creates an application reading stdin and writing stdout/stderr
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return NewAppWithIO(apiInstance, cfg, os.Stdin, os.Stdout, os.Stderr)
}

// NewAppWithIO creates an application on the given streams
func NewAppWithIO(apiInstance api.API, cfg *config.Config, in io.Reader, out, errOut io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:          apiInstance,
		config:       cfg,
		errorHandler: NewErrorHandler(),
		validator:    validation.NewRecordValidator(),
		in:           bufio.NewReader(in),
		out:          out,
		errOut:       errOut,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// RunMenu shows the menu until the user picks Exit or input runs out
func (a *App) RunMenu(ctx context.Context) error {
	if a.config.Application.Verbose {
		fmt.Fprintf(a.out, "Using default file %s, load policy %s, id resync %t, priority style %s\n",
			a.config.Storage.DefaultFile, a.config.Load.Policy, a.config.Load.ResyncIDs, a.config.Display.PriorityStyle)
	}

	for {
		fmt.Fprint(a.out, a.registry.GetMenu())

		line, err := a.readLine()
		if err != nil {
			return a.exit(err)
		}

		choice, err := a.validator.ParseChoice(line)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid choice, please try again.")
			continue
		}
		if choice == ExitChoice {
			return a.exit(nil)
		}

		if err := a.registry.Execute(ctx, choice, nil); err != nil {
			if errors.Is(err, errEndOfInput) {
				return a.exit(err)
			}
			if a.errorHandler.IsInvalidChoice(err) {
				fmt.Fprintln(a.out, "Invalid choice, please try again.")
				continue
			}
			a.report(err)
		}
	}
}

func (a *App) exit(err error) error {
	fmt.Fprintln(a.out, "Exiting...")
	if err != nil && !errors.Is(err, errEndOfInput) {
		return err
	}
	return nil
}

// report prints a failed action. File and database problems go to the error stream.
func (a *App) report(err error) {
	w := a.out
	if !a.errorHandler.IsUserError(err) {
		w = a.errOut
	}
	fmt.Fprintln(w, a.errorHandler.HandleSimple(err))
}

// readLine reads one line without its terminator. A final line with no
// newline is still returned; after that errEndOfInput.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if err == io.EOF {
			return "", errEndOfInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints label and reads the reply line
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	return a.readLine()
}

// promptID prints label and parses the first token of the reply as an id
func (a *App) promptID(label, field string) (int64, error) {
	line, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	return a.validator.ParseID(field, line)
}
