package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// renderBuildSummary prints one line per document plus a closing total.
func renderBuildSummary(w io.Writer, outcomes []buildOutcome) {
	fmt.Fprintln(w, styleTitle.Render("build summary"))
	pages := 0
	for _, out := range outcomes {
		switch {
		case out.Err != nil:
			fmt.Fprintf(w, "  %s %s\n", styleError.Render("fail"), out.Path)
		case !out.Converged:
			fmt.Fprintf(w, "  %s %s %s\n",
				styleWarning.Render("warn"), out.Path,
				styleDim.Render(fmt.Sprintf("(%d pages, %d attempts, not settled)", out.Pages, out.Attempts)))
			pages += out.Pages
		case out.Diags.HasWarnings():
			fmt.Fprintf(w, "  %s %s %s\n",
				styleWarning.Render("warn"), out.Path,
				styleDim.Render(fmt.Sprintf("(%d pages, %d attempts, with warnings)", out.Pages, out.Attempts)))
			pages += out.Pages
		default:
			detail := fmt.Sprintf("(%d pages, %d attempts)", out.Pages, out.Attempts)
			if out.Output != "" {
				detail = fmt.Sprintf("(%d pages, %d attempts) -> %s", out.Pages, out.Attempts, out.Output)
			}
			fmt.Fprintf(w, "  %s %s %s\n", styleSuccess.Render("ok"), out.Path, styleDim.Render(detail))
			pages += out.Pages
		}
	}
	fmt.Fprintf(w, "  %s\n", styleDim.Render(fmt.Sprintf("%d documents, %d pages", len(outcomes), pages)))
}
