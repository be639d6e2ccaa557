package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// FormatCLI writes one colored line per diagnostic to w, in the
// `pos: code: message` register (space-separated when colored). Color is the caller's
// decision (cmd/checklam disables it with go-isatty when stdout isn't
// a terminal).
func FormatCLI(w io.Writer, diags []Diagnostic, colorEnabled bool) {
	for _, d := range diags {
		if !colorEnabled {
			fmt.Fprintf(w, "%s: %s: %s\n", d.Pos(), d.Code(), d.Message())
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", cyan(d.Pos().String()), red(bold(d.Code())), yellow(d.Message()))
	}
}

// Summary renders a short closing line, e.g. "3 diagnostics".
func Summary(w io.Writer, diags []Diagnostic, colorEnabled bool) {
	n := len(diags)
	word := "diagnostics"
	if n == 1 {
		word = "diagnostic"
	}
	line := fmt.Sprintf("%d %s", n, word)
	if !colorEnabled {
		fmt.Fprintln(w, line)
		return
	}
	if n == 0 {
		fmt.Fprintln(w, color.New(color.FgGreen).Sprint(line))
		return
	}
	fmt.Fprintln(w, bold(line))
}
