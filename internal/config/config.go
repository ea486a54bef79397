package config

import (
	"os"
	"strconv"
	"time"
)

// Load policies for malformed lines in a task file
const (
	LoadPolicyAbort = "abort"
	LoadPolicySkip  = "skip"
)

// Priority display styles for task listings
const (
	PriorityStyleName = "name"
	PriorityStyleCode = "code"
)

// Config holds all configuration options for the task manager
type Config struct {
	Storage     StorageConfig
	Load        LoadConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// StorageConfig holds task file configuration
type StorageConfig struct {
	DefaultFile     string `env:"TM_STORAGE_DEFAULT_FILE"`
	FilePermissions uint32 `env:"TM_STORAGE_FILE_PERMISSIONS"`
}

// LoadConfig controls how task files are read back in
type LoadConfig struct {
	Policy    string `env:"TM_LOAD_POLICY"`
	ResyncIDs bool   `env:"TM_LOAD_RESYNC_IDS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	PriorityStyle string `env:"TM_DISPLAY_PRIORITY_STYLE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TM_APP_TIMEOUT"`
	Verbose bool          `env:"TM_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	OutputDefaultFormat string `env:"TM_OUTPUT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DefaultFile:     "tasks.txt",
			FilePermissions: 0644,
		},
		Load: LoadConfig{
			Policy:    LoadPolicyAbort,
			ResyncIDs: false,
		},
		Display: DisplayConfig{
			PriorityStyle: PriorityStyleName,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			OutputDefaultFormat: "csv",
		},
	}
}

// FileMode returns the permissions used when creating task files
func (c *Config) FileMode() os.FileMode {
	return os.FileMode(c.Storage.FilePermissions)
}

// SkipMalformed reports whether loads should skip bad lines instead of failing
func (c *Config) SkipMalformed() bool {
	return c.Load.Policy == LoadPolicySkip
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values leave the current setting in place.
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if file := os.Getenv("TM_STORAGE_DEFAULT_FILE"); file != "" {
		c.Storage.DefaultFile = file
	}
	if perms := os.Getenv("TM_STORAGE_FILE_PERMISSIONS"); perms != "" {
		c.Storage.FilePermissions = ParseUint32WithFallback(perms, 8, c.Storage.FilePermissions)
	}

	// Load configuration
	if policy := os.Getenv("TM_LOAD_POLICY"); policy != "" {
		c.Load.Policy = policy
	}
	if resync := os.Getenv("TM_LOAD_RESYNC_IDS"); resync != "" {
		c.Load.ResyncIDs = ParseBoolWithFallback(resync, c.Load.ResyncIDs)
	}

	// Display configuration
	if style := os.Getenv("TM_DISPLAY_PRIORITY_STYLE"); style != "" {
		c.Display.PriorityStyle = style
	}

	// Application configuration
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Commands configuration
	if format := os.Getenv("TM_OUTPUT_DEFAULT_FORMAT"); format != "" {
		c.Commands.OutputDefaultFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.DefaultFile == "" {
		return &ConfigError{Field: "storage.default_file", Message: "default file cannot be empty"}
	}
	if c.Storage.FilePermissions == 0 || c.Storage.FilePermissions > 0777 {
		return &ConfigError{Field: "storage.file_permissions", Message: "file permissions must be between 0001 and 0777"}
	}

	if c.Load.Policy != LoadPolicyAbort && c.Load.Policy != LoadPolicySkip {
		return &ConfigError{Field: "load.policy", Message: "load policy must be 'abort' or 'skip'"}
	}

	if c.Display.PriorityStyle != PriorityStyleName && c.Display.PriorityStyle != PriorityStyleCode {
		return &ConfigError{Field: "display.priority_style", Message: "priority style must be 'name' or 'code'"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Commands.OutputDefaultFormat != "csv" {
		return &ConfigError{Field: "commands.output_default_format", Message: "only 'csv' output is supported"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
