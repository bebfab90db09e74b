// Package cli provides the command-line interface for sqlcaps.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqlcaps/sqlcaps/internal/cli/commands"
	"github.com/sqlcaps/sqlcaps/internal/cli/config"

	// Register dialects.
	_ "github.com/sqlcaps/sqlcaps/pkg/dialects/ansi"
	_ "github.com/sqlcaps/sqlcaps/pkg/dialects/postgres"
	_ "github.com/sqlcaps/sqlcaps/pkg/dialects/redis"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlcaps",
		Short: "sqlcaps - context-aware SQL keyword capitalization",
		Long: `sqlcaps uppercases reserved keywords in SQL and key/value-command text
while leaving identifiers, string literals and comments untouched. Strings
introduced by an eval prefix (e.g. EXECUTE 'select 1') are treated as code.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			config.SetCurrent(cfg)
			if cfg.Verbose {
				if used := config.GetConfigFileUsed(); used != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", used)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sqlcaps.yaml)")
	rootCmd.PersistentFlags().StringP("dialect", "d", "", "Active dialect (default: ansi)")
	rootCmd.PersistentFlags().StringSlice("blacklist", nil, "Words exempt from capitalization")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"ansi", "postgres", "redis"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewRegionCommand())
	rootCmd.AddCommand(commands.NewReplCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
