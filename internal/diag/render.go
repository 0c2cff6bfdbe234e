package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	codeColor = color.New(color.Faint)
)

// Render writes diagnostics in a compact single-line format. Coloring
// follows the package-global color.NoColor switch set by the CLI.
func Render(w io.Writer, items []Diagnostic) {
	for _, d := range items {
		label := infoColor
		switch d.Severity {
		case SevError:
			label = errColor
		case SevWarning:
			label = warnColor
		}
		where := "document"
		if d.Page > 0 {
			where = fmt.Sprintf("page %d", d.Page)
		}
		if d.NodeKind != "" {
			where += " (" + d.NodeKind + ")"
		}
		fmt.Fprintf(w, "%s %s %s: %s\n",
			label.Sprint(d.Severity.String()),
			codeColor.Sprint(d.Code.String()),
			where,
			d.Message,
		)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", n.Msg)
		}
	}
}
