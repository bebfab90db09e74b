package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "sqlcaps.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "sqlcaps.yml"

// maxUpwardSearchLevels limits how far up the directory tree to search for
// a config file.
const maxUpwardSearchLevels = 10

var (
	configFileUsed string
	currentConfig  *Config
)

// SetCurrent stores the loaded config for access by commands.
func SetCurrent(c *Config) { currentConfig = c }

// Current returns the loaded config, or defaults when the root command has
// not run (tests, completion).
func Current() *Config {
	if currentConfig != nil {
		return currentConfig
	}
	return &Config{OutputFormat: "auto"}
}

// GetConfigFileUsed returns the path of the config file used by the last
// Load, or empty if none was found.
func GetConfigFileUsed() string { return configFileUsed }

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// A missing config file is not an error; a malformed one is.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	configFileUsed = ""

	// Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"dialect": "",
		"output":  "auto",
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, err
	}

	// Config file (explicit path, or upward search from CWD)
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
		configFileUsed = path
	}

	// Environment: SQLCAPS_DIALECT, SQLCAPS_OUTPUT, ...
	if err := k.Load(env.Provider("SQLCAPS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLCAPS_"))
	}), nil); err != nil {
		return nil, err
	}

	// CLI flags override everything; only flags the user actually set.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile finds the config file to use.
// Priority: explicit path > sqlcaps.yaml upward from CWD.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	dir := cwd
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// NewLogger builds the CLI logger. Verbose switches to debug level.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
