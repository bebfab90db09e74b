package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/sqlcaps/sqlcaps/internal/document"
	"github.com/sqlcaps/sqlcaps/pkg/caps"
	"github.com/sqlcaps/sqlcaps/pkg/dialect"
	"github.com/sqlcaps/sqlcaps/pkg/token"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive capitalize-as-you-type session",
		Long: `Start an interactive session. Each submitted line is fed through the
incremental trigger path character by character, exactly as if it were typed
into an editor with capitalization enabled, and echoed back capitalized.

Dot-commands control the session: .dialect NAME switches the dialect
(discarding the cached keyword table), .off and .on toggle the trigger hook,
.blacklist shows the exemption list, .quit exits.`,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".sqlcaps_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          styled(promptStyle, "sqlcaps> "),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	doc, eng := newEngine(cmdCtx.Cfg, "repl", "")
	trigger := caps.NewTrigger(eng)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "sqlcaps REPL (dialect: %s)\n", eng.Dialect().Name)
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if strings.HasPrefix(strings.TrimSpace(line), ".") {
			if quit := handleDotCommand(out, doc, eng, trigger, strings.TrimSpace(line), cmdCtx.Cfg.Blacklist); quit {
				break
			}
			continue
		}
		_, _ = fmt.Fprintln(out, feedLine(doc, trigger, line))
	}
	return nil
}

// feedLine appends the line to the session document one character at a
// time, invoking the trigger after each insertion, and returns the line as
// it now reads in the document. The final newline acts as the line's
// closing trigger, matching editor behavior where pressing return
// capitalizes the last word.
func feedLine(doc *document.Document, trigger *caps.Trigger, line string) string {
	start := doc.Len()
	for _, r := range line + "\n" {
		at := doc.Len()
		_ = doc.Insert(at, string(r))
		_, _ = trigger.HandleInsert(at, r)
	}
	return strings.TrimSuffix(doc.ReadText(token.Span{Start: start, End: doc.Len()}), "\n")
}

func handleDotCommand(out io.Writer, doc *document.Document, eng *caps.Engine, trigger *caps.Trigger, line string, blacklist []string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".quit", ".exit":
		return true
	case ".help":
		_, _ = fmt.Fprintln(out, `Commands:
  .dialect [name]  show or switch the active dialect
  .on / .off       enable or disable the capitalization trigger
  .blacklist       show blacklisted words
  .quit            exit`)
	case ".dialect":
		if len(fields) < 2 {
			_, _ = fmt.Fprintf(out, "dialect: %s (registered: %s)\n", eng.Dialect().Name, strings.Join(dialect.List(), ", "))
			break
		}
		name := fields[1]
		if _, ok := dialect.Get(name); !ok {
			_, _ = fmt.Fprintf(out, "unknown dialect %q\n", name)
			break
		}
		doc.SetDialect(name)
		_, _ = fmt.Fprintf(out, "dialect: %s\n", name)
	case ".on":
		trigger.Enable()
		_, _ = fmt.Fprintln(out, "capitalization on")
	case ".off":
		trigger.Disable()
		_, _ = fmt.Fprintln(out, "capitalization off")
	case ".blacklist":
		if len(blacklist) == 0 {
			_, _ = fmt.Fprintln(out, "blacklist is empty")
		} else {
			_, _ = fmt.Fprintln(out, strings.Join(blacklist, " "))
		}
	default:
		_, _ = fmt.Fprintf(out, "unknown command %s (try .help)\n", fields[0])
	}
	return false
}
