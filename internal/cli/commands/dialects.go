package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sqlcaps/sqlcaps/internal/cli/config"
	"github.com/sqlcaps/sqlcaps/pkg/dialect"
)

// DialectsOptions holds options for the dialects command.
type DialectsOptions struct {
	Format string
}

type dialectInfo struct {
	Name         string   `json:"name" yaml:"name"`
	Keywords     int      `json:"keywords" yaml:"keywords"`
	EvalPrefixes []string `json:"eval_prefixes,omitempty" yaml:"eval_prefixes,omitempty"`
	LineComments []string `json:"line_comments" yaml:"line_comments"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	opts := &DialectsOptions{}
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Example: `  # Table view
  sqlcaps dialects

  # Machine-readable
  sqlcaps dialects --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, yaml (default from config)")
	return cmd
}

func runDialects(cmd *cobra.Command, opts *DialectsOptions) error {
	format := opts.Format
	if format == "" {
		switch cfg := config.Current(); cfg.OutputFormat {
		case "json", "yaml":
			format = cfg.OutputFormat
		default:
			format = "table"
		}
	}

	var infos []dialectInfo
	for _, name := range dialect.List() {
		d, _ := dialect.Get(name)
		infos = append(infos, dialectInfo{
			Name:         d.Name,
			Keywords:     len(d.Keywords),
			EvalPrefixes: d.EvalPrefixes,
			LineComments: d.LineComments,
		})
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		data, err := yaml.Marshal(infos)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	case "table", "text", "auto":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Dialect", "Keywords", "Eval Prefixes", "Line Comments"})
		for _, info := range infos {
			t.AppendRow(table.Row{
				info.Name,
				info.Keywords,
				strings.Join(info.EvalPrefixes, " "),
				strings.Join(info.LineComments, " "),
			})
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
