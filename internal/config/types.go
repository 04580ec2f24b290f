package config

import "github.com/nibzard/mytasks-go/internal/todo"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultTitle       = "My Tasks"
	DefaultPlaceholder = "Enter a new task"
	DefaultIDStrategy  = "uuid"
	DefaultLogDir      = "~/.mytasks/logs"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// ID strategies, shared with the task store.
const (
	IDStrategyUUID     = todo.IDStrategyUUID
	IDStrategySequence = todo.IDStrategySequence
)

// Config holds the full configuration for mytasks.
type Config struct {
	// Screen
	Title         string `toml:"title"`
	Placeholder   string `toml:"placeholder"`
	StartFiltered bool   `toml:"start_filtered"`
	AltScreen     bool   `toml:"alt_screen"`

	// Task ids (uuid or sequence)
	IDStrategy string `toml:"id_strategy"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// configFields returns the configurable field names, in display order.
func configFields() []string {
	return []string{
		"title",
		"placeholder",
		"start_filtered",
		"alt_screen",
		"id_strategy",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Fields returns the configurable field names, in display order.
func Fields() []string {
	return configFields()
}
