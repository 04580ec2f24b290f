// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.mytasks/mytasks.toml or OS-specific config directory)
// 3. Project config file (mytasks.toml or .mytasks.toml in the working directory)
// 4. Environment variables (MYTASKS_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.mytasks/mytasks.toml (preferred)
// - Windows: %APPDATA%\mytasks\mytasks.toml
// - macOS: ~/Library/Application Support/mytasks/mytasks.toml
// - Linux/BSD: $XDG_CONFIG_HOME/mytasks/mytasks.toml or ~/.config/mytasks/mytasks.toml
//
// Example file:
//
//	title = "My Tasks"
//	placeholder = "Enter a new task"
//	id_strategy = "uuid"
//	start_filtered = false
//	alt_screen = true
//	log_dir = "~/.mytasks/logs"
//	log_level = "info"
//	log_format = "text"
package config
