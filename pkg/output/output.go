// Package output renders sublink's terminal reports. Styling degrades
// to plain text when stdout is not a terminal.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/sublink/pkg/syntaxcheck"
	"github.com/arthur-debert/sublink/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// Renderer produces the text for the install, status, list and check
// commands.
type Renderer struct{}

// NewRenderer creates a renderer, disabling styling when stdout is not
// a terminal.
func NewRenderer() *Renderer {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableStyling()
	}
	return &Renderer{}
}

// statusStyle returns the pterm style for an entry's link state.
func statusStyle(state types.LinkState) *pterm.Style {
	switch state {
	case types.StateLinked:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StateWrong:
		return pterm.NewStyle(pterm.FgRed)
	case types.StateFile:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderInstall renders the outcome of an install run, one line per
// entry with failures expanded underneath.
func (r *Renderer) RenderInstall(result types.InstallResult) string {
	var b strings.Builder

	title := "Installed"
	if result.DryRun {
		title = "Would install"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	for _, res := range result.Results {
		entry := res.Entry
		switch {
		case res.Failed():
			line := fmt.Sprintf("%s %-12s %s", pterm.NewStyle(pterm.FgRed).Sprint("✗"),
				entry.Category, entry.Target)
			b.WriteString(line + "\n")
			b.WriteString("  " + mutedStyle.Render(res.LinkErr.Error()) + "\n")
			if res.RemoveErr != nil {
				b.WriteString("  " + mutedStyle.Render(res.RemoveErr.Error()) + "\n")
			}
		case res.Skipped:
			line := fmt.Sprintf("%s %-12s %s -> %s", mutedStyle.Render("·"),
				entry.Category, entry.Target, entry.SourceRel)
			b.WriteString(line + "\n")
		default:
			line := fmt.Sprintf("%s %-12s %s -> %s", pterm.NewStyle(pterm.FgGreen).Sprint("✓"),
				entry.Category, entry.Target, entry.SourceRel)
			b.WriteString(line + "\n")
		}
	}

	if n := result.FailureCount(); n > 0 {
		b.WriteString("\n" + pterm.NewStyle(pterm.FgRed).Sprintf("%d of %d entries failed",
			n, len(result.Results)) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderStatus renders the read-only state of every catalog entry.
func (r *Renderer) RenderStatus(statuses []types.EntryStatus) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Status") + "\n\n")

	for _, st := range statuses {
		label := string(st.State)
		if st.Dangling() {
			label = "dangling"
		}
		line := fmt.Sprintf("%s %-12s %s", statusStyle(st.State).Sprintf("%-8s", label),
			st.Entry.Category, st.Entry.Target)
		b.WriteString(line + "\n")
		if st.State == types.StateWrong && st.LinkDest != "" {
			b.WriteString("  " + mutedStyle.Render("points at "+st.LinkDest) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderCatalog renders the catalog itself: category, source, target.
func (r *Renderer) RenderCatalog(entries []types.LinkEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Catalog") + "\n\n")

	for _, entry := range entries {
		b.WriteString(fmt.Sprintf("%-12s %s\n", entry.Category, entry.SourceRel))
		b.WriteString("  " + mutedStyle.Render("-> "+entry.Target) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderCheck renders syntax-definition validation results.
func (r *Renderer) RenderCheck(results []syntaxcheck.Result) string {
	if len(results) == 0 {
		return mutedStyle.Render("No syntax definitions to check")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Syntax check") + "\n\n")

	for _, res := range results {
		switch {
		case res.Missing:
			b.WriteString(fmt.Sprintf("%s %s\n", mutedStyle.Render("?"), res.Entry.SourceRel))
			b.WriteString("  " + mutedStyle.Render("source missing") + "\n")
		case res.Err != nil:
			b.WriteString(fmt.Sprintf("%s %s\n", pterm.NewStyle(pterm.FgRed).Sprint("✗"), res.Entry.SourceRel))
			b.WriteString("  " + mutedStyle.Render(res.Err.Error()) + "\n")
		default:
			b.WriteString(fmt.Sprintf("%s %s\n", pterm.NewStyle(pterm.FgGreen).Sprint("✓"), res.Entry.SourceRel))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders a fatal error for stderr.
func (r *Renderer) RenderError(err error) string {
	return pterm.NewStyle(pterm.FgRed).Sprintf("Error: %v", err)
}
