// Package commands implements the sqlcaps subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sqlcaps/sqlcaps/internal/cli/config"
	"github.com/sqlcaps/sqlcaps/internal/document"
	"github.com/sqlcaps/sqlcaps/pkg/caps"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext builds the shared dependencies from the loaded config.
func NewCommandContext(_ *cobra.Command) *CommandContext {
	cfg := config.Current()
	return &CommandContext{
		Cfg:    cfg,
		Logger: config.NewLogger(cfg.Verbose),
	}
}

// newEngine wires a document, engine and blacklist together for one text,
// registering the keyword-cache invalidation on dialect change.
func newEngine(cfg *config.Config, name, content string) (*document.Document, *caps.Engine) {
	doc := document.New(name, content, document.WithDialect(cfg.Dialect))
	eng := caps.NewEngine(doc, caps.NewBlacklist(cfg.Blacklist...))
	doc.OnDialectChange(eng.Invalidate)
	return doc, eng
}

// capitalizeText runs the batch path over a whole text and returns the
// rewritten text with pass statistics.
func capitalizeText(cfg *config.Config, name, content string) (string, caps.Stats, error) {
	doc, eng := newEngine(cfg, name, content)
	stats, err := eng.CapitalizeBuffer()
	return doc.Content(), stats, err
}
