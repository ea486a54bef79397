package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"task-manager/internal/api"
	"task-manager/internal/config"
)

// APIFactory builds the API for a session once configuration is final
type APIFactory func(cfg *config.Config) api.API

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory APIFactory
	config  *config.Config
	app     *App

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(factory APIFactory) *RootCommand {
	root := &RootCommand{
		factory: factory,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "An interactive task and worker manager",
		Long: `Task Manager (tm) keeps a list of tasks and workers for one session.

Run without arguments for the interactive menu: add workers and tasks,
assign and complete tasks, list everything, and save or load the task
list. Files ending in .db, .sqlite or .sqlite3 are SQLite snapshots;
anything else uses the plain text format (id,priority,description,deadline).

EXAMPLES:
  tm                                       # Interactive menu
  tm list tasks.txt                        # Print the tasks stored in a file
  tm output tasks.db format=csv > out.csv  # Export a file as CSV

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TM_STORAGE_DEFAULT_FILE                File used when the filename prompt is blank (default: tasks.txt)
    TM_STORAGE_FILE_PERMISSIONS            Octal mode for new files (default: 0644)
    TM_LOAD_POLICY                         abort or skip on malformed lines (default: abort)
    TM_LOAD_RESYNC_IDS                     Advance the task counter past loaded ids (default: false)
    TM_DISPLAY_PRIORITY_STYLE              name or code (default: name)
    TM_APP_TIMEOUT                         Snapshot database timeout (default: 60s)
    TM_APP_VERBOSE                         Enable verbose output (default: false)
    TM_OUTPUT_DEFAULT_FORMAT               Default output format (default: csv)
    TM_DEBUG                               Print debug lines to stderr when set`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			return root.app.RunMenu(ctx)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides os.Args, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetIO replaces the standard streams
func (r *RootCommand) SetIO(in io.Reader, out, errOut io.Writer) {
	r.in = in
	r.out = out
	r.errOut = errOut
}

// Config returns the configuration in effect after flags were applied
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("default-file", "", "Default task file (overrides TM_STORAGE_DEFAULT_FILE)")
	flags.String("file-permissions", "", "Octal mode for new task files (overrides TM_STORAGE_FILE_PERMISSIONS)")
	flags.String("load-policy", "", "abort or skip malformed lines (overrides TM_LOAD_POLICY)")
	flags.Bool("resync-ids", false, "Advance the task counter past loaded ids (overrides TM_LOAD_RESYNC_IDS)")
	flags.String("priority-style", "", "Show priorities as name or code (overrides TM_DISPLAY_PRIORITY_STYLE)")
	flags.Duration("app-timeout", 0, "Snapshot database timeout (overrides TM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TM_APP_VERBOSE)")
	flags.String("output-format", "", "Default output format (overrides TM_OUTPUT_DEFAULT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list FILE",
		Short: "Print the tasks stored in a file",
		Long: `Load FILE into an empty session and print its tasks.

Examples:
  tm list tasks.txt
  tm list --priority-style code tasks.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			if err := NewListCommand(r.app).Execute(ctx, args); err != nil {
				return r.app.errorHandler.Handle("list tasks", err)
			}
			return nil
		},
	}

	outputCmd := &cobra.Command{
		Use:   "output FILE [format=csv]",
		Short: "Export the tasks stored in a file",
		Long: `Load FILE into an empty session and write its tasks to stdout.

Supported formats:
  csv - Comma-separated values format

Example:
  tm output tasks.txt format=csv`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			if err := NewOutputCommand(r.app).Execute(ctx, args); err != nil {
				return r.app.errorHandler.Handle("export tasks", err)
			}
			return nil
		},
	}

	r.cmd.AddCommand(listCmd, outputCmd)
}

// setup loads configuration, applies flags and builds the session
func (r *RootCommand) setup() error {
	overrides, err := r.getOverridesFromFlags()
	if err != nil {
		return err
	}
	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg
	r.app = NewAppWithIO(r.factory(cfg), cfg, r.in, r.out, r.errOut)
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getOverridesFromFlags collects the flags the user actually set
func (r *RootCommand) getOverridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("default-file") {
		v, _ := flags.GetString("default-file")
		overrides.DefaultFile = &v
	}
	if flags.Changed("file-permissions") {
		s, _ := flags.GetString("file-permissions")
		p, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid --file-permissions %q: must be octal", s)
		}
		v := uint32(p)
		overrides.FilePermissions = &v
	}
	if flags.Changed("load-policy") {
		v, _ := flags.GetString("load-policy")
		overrides.LoadPolicy = &v
	}
	if flags.Changed("resync-ids") {
		v, _ := flags.GetBool("resync-ids")
		overrides.ResyncIDs = &v
	}
	if flags.Changed("priority-style") {
		v, _ := flags.GetString("priority-style")
		overrides.PriorityStyle = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("output-format") {
		v, _ := flags.GetString("output-format")
		overrides.OutputDefaultFormat = &v
	}

	return overrides, nil
}
