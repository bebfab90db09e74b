// Package config provides configuration loading for the sqlcaps CLI.
// Values are layered from defaults, the sqlcaps.yaml project file,
// SQLCAPS_* environment variables and CLI flags, highest last.
package config

import (
	"fmt"
	"strings"

	"github.com/sqlcaps/sqlcaps/pkg/dialect"
)

// Config holds the resolved CLI configuration.
type Config struct {
	// Dialect is the active dialect name. Empty falls back to ansi.
	Dialect string `koanf:"dialect"`

	// Blacklist lists words exempt from capitalization. Entries are plain
	// strings, not patterns.
	Blacklist []string `koanf:"blacklist"`

	// OutputFormat selects command output rendering: auto, text, json, yaml.
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// Validate rejects malformed configuration at load time; capitalization
// itself never validates.
func (c *Config) Validate() error {
	if c.Dialect != "" {
		if _, ok := dialect.Get(c.Dialect); !ok {
			return fmt.Errorf("unknown dialect %q (registered: %s)", c.Dialect, strings.Join(dialect.List(), ", "))
		}
	}
	for _, w := range c.Blacklist {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("blacklist contains an empty entry")
		}
		if strings.ContainsAny(w, " \t\n") {
			return fmt.Errorf("blacklist entry %q is not a single word", w)
		}
	}
	switch c.OutputFormat {
	case "", "auto", "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	return nil
}
