package commands

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Write bool // rewrite files in place instead of printing
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Capitalize keywords in whole documents",
		Long: `Scan one or more documents token by token and rewrite every reserved
keyword of the active dialect in uppercase. Identifiers, string literals and
comments are left untouched; blacklisted words are exempt.

With no file arguments, reads from stdin and writes to stdout.`,
		Example: `  # Capitalize stdin
  echo 'select * from foo;' | sqlcaps run

  # Rewrite files in place
  sqlcaps run --write queries/*.sql

  # Use a specific dialect
  sqlcaps run --dialect postgres proc.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place")
	return cmd
}

func runRun(cmd *cobra.Command, files []string, opts *RunOptions) error {
	cmdCtx := NewCommandContext(cmd)

	if len(files) == 0 {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, stats, err := capitalizeText(cmdCtx.Cfg, "stdin", string(content))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
		printSummary(cmd.ErrOrStderr(), "stdin", stats.Rewritten, stats.Confirmed)
		return nil
	}

	// Each file gets its own document and engine; nothing is shared across
	// documents, so files can be processed concurrently.
	outputs := make([]string, len(files))
	summaries := make([][2]int, len(files))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			out, stats, err := capitalizeText(cmdCtx.Cfg, path, string(content))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if opts.Write {
				if out != string(content) {
					if err := os.WriteFile(path, []byte(out), 0644); err != nil {
						return err
					}
				}
			} else {
				outputs[i] = out
			}
			summaries[i] = [2]int{stats.Rewritten, stats.Confirmed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range files {
		if !opts.Write {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), outputs[i])
		}
		printSummary(cmd.ErrOrStderr(), path, summaries[i][0], summaries[i][1])
	}
	return nil
}
