package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/mytasks-go/internal/todo"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file
// 3. Project config file
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := LoadWithSources(fs, args)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	cws := &ConfigWithSources{
		Config:  &Config{},
		Sources: make(map[string]ConfigSource),
	}
	cfg := cws.Config

	// 1. Defaults
	setDefaults(cfg)
	for _, field := range configFields() {
		cws.Sources[field] = SourceDefault
	}

	// 2. User config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, cws.Sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
		cws.Files = append(cws.Files, path)
	}

	// 3. Project config file (overrides user config)
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path, cws.Sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
		cws.Files = append(cws.Files, path)
	}

	// 4. Environment
	if err := loadFromEnv(cfg, cws.Sources); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	// 5. CLI flags
	if err := parseFlags(cfg, fs, args, cws.Sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Title = DefaultTitle
	cfg.Placeholder = DefaultPlaceholder
	cfg.StartFiltered = false
	cfg.AltScreen = true
	cfg.IDStrategy = DefaultIDStrategy
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// loadConfigFile decodes a TOML file over cfg and records which keys it set.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if sources != nil {
		for _, field := range configFields() {
			if md.IsDefined(field) {
				sources[field] = source
			}
		}
	}
	return nil
}

// loadFromEnv overrides config from MYTASKS_* environment variables.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			if sources != nil {
				sources[field] = SourceEnv
			}
		}
	}
	setBool := func(env, field string, target *bool) error {
		v := os.Getenv(env)
		if v == "" {
			return nil
		}
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
		*target = b
		if sources != nil {
			sources[field] = SourceEnv
		}
		return nil
	}

	setString("MYTASKS_TITLE", "title", &cfg.Title)
	setString("MYTASKS_PLACEHOLDER", "placeholder", &cfg.Placeholder)
	setString("MYTASKS_ID_STRATEGY", "id_strategy", &cfg.IDStrategy)
	setString("MYTASKS_LOG_DIR", "log_dir", &cfg.LogDir)
	setString("MYTASKS_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("MYTASKS_LOG_FORMAT", "log_format", &cfg.LogFormat)

	if err := setBool("MYTASKS_START_FILTERED", "start_filtered", &cfg.StartFiltered); err != nil {
		return err
	}
	if err := setBool("MYTASKS_ALT_SCREEN", "alt_screen", &cfg.AltScreen); err != nil {
		return err
	}
	if err := setBool("MYTASKS_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps); err != nil {
		return err
	}
	return setBool("MYTASKS_LOG_CALLER", "log_caller", &cfg.LogCaller)
}

// flagFields maps flag names to config field names.
var flagFields = map[string]string{
	"title":          "title",
	"placeholder":    "placeholder",
	"filtered":       "start_filtered",
	"alt-screen":     "alt_screen",
	"ids":            "id_strategy",
	"log-dir":        "log_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags binds global flags to cfg, parses args and records which flags were set.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("mytasks", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.Title, "title", cfg.Title, "Screen title")
	fs.StringVar(&cfg.Placeholder, "placeholder", cfg.Placeholder, "Placeholder of the new task field")
	fs.BoolVar(&cfg.StartFiltered, "filtered", cfg.StartFiltered, "Start with completed tasks hidden")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Use the terminal's alternate screen")
	fs.StringVar(&cfg.IDStrategy, "ids", cfg.IDStrategy, "Task id strategy (uuid, sequence)")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}

// finalizeConfig computes derived values and validates enumerations.
func finalizeConfig(cfg *Config) error {
	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.IDStrategy = strings.ToLower(strings.TrimSpace(cfg.IDStrategy))

	if _, err := todo.NewIDGenerator(cfg.IDStrategy); err != nil {
		return err
	}

	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	return nil
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{"mytasks.toml", ".mytasks.toml"}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.mytasks/mytasks.toml first, then the OS-specific config directory.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".mytasks", "mytasks.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		path := filepath.Join(cfgDir, "mytasks", "mytasks.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// parseBool parses a boolean from a string.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// Value returns the string form of a config field, for display.
func (c *Config) Value(field string) string {
	switch field {
	case "title":
		return c.Title
	case "placeholder":
		return c.Placeholder
	case "start_filtered":
		return strconv.FormatBool(c.StartFiltered)
	case "alt_screen":
		return strconv.FormatBool(c.AltScreen)
	case "id_strategy":
		return c.IDStrategy
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return strconv.FormatBool(c.LogTimestamps)
	case "log_caller":
		return strconv.FormatBool(c.LogCaller)
	}
	return ""
}
