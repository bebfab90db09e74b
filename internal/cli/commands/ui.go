package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// isTTY reports whether stderr is attached to a terminal; styling is gated
// on it so piped output stays plain.
func isTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// styled renders s with style when on a terminal, plain otherwise.
func styled(style lipgloss.Style, s string) string {
	if isTTY() {
		return style.Render(s)
	}
	return s
}

// printSummary writes the per-document pass summary.
func printSummary(w io.Writer, name string, rewritten, confirmed int) {
	line := fmt.Sprintf("%s: %d keyword(s) uppercased", name, rewritten)
	if confirmed > 0 {
		line += fmt.Sprintf(", %d already canonical", confirmed)
	}
	if rewritten > 0 {
		_, _ = fmt.Fprintln(w, styled(successStyle, line))
	} else {
		_, _ = fmt.Fprintln(w, styled(dimStyle, line))
	}
}
