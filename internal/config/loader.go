package config

import (
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields were not set.
type ConfigOverrides struct {
	// Storage overrides
	DefaultFile     *string
	FilePermissions *uint32

	// Load overrides
	LoadPolicy *string
	ResyncIDs  *bool

	// Display overrides
	PriorityStyle *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Commands overrides
	OutputDefaultFormat *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DefaultFile != nil {
		config.Storage.DefaultFile = *overrides.DefaultFile
	}
	if overrides.FilePermissions != nil {
		config.Storage.FilePermissions = *overrides.FilePermissions
	}

	if overrides.LoadPolicy != nil {
		config.Load.Policy = *overrides.LoadPolicy
	}
	if overrides.ResyncIDs != nil {
		config.Load.ResyncIDs = *overrides.ResyncIDs
	}

	if overrides.PriorityStyle != nil {
		config.Display.PriorityStyle = *overrides.PriorityStyle
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	if overrides.OutputDefaultFormat != nil {
		config.Commands.OutputDefaultFormat = *overrides.OutputDefaultFormat
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
