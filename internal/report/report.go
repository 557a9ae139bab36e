// Package report renders property-check outcomes as styled terminal text
// using lipgloss, for callers that want something friendlier than the
// plain-text reproducer message prop.ForAll writes with t.Fatalf.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Failure is the plain-data shape a report renders: the caller flattens
// whatever prop.Outcome it has into this before calling RenderFailure, so this
// package stays free of the generic prop.Outcome[T] type parameter.
type Failure struct {
	Seed          int64
	Successes     int
	NodesVisited  int
	OriginalValue string
	OriginalErr   string
	ShrunkValue   string
	ShrunkErr     string
	ReplayHint    string
}

// RenderFailure formats f as a boxed, colorized terminal report.
func RenderFailure(f Failure) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("property failed"))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("seed:"), valueStyle.Render(fmt.Sprintf("%d", f.Seed)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("successful runs:"), valueStyle.Render(fmt.Sprintf("%d", f.Successes)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("shrink nodes visited:"), valueStyle.Render(fmt.Sprintf("%d", f.NodesVisited)))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, labelStyle.Render("original counterexample:"))
	fmt.Fprintf(&b, "  %s\n", valueStyle.Render(f.OriginalValue))
	fmt.Fprintf(&b, "  %s\n", errStyle.Render(f.OriginalErr))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, labelStyle.Render("shrunk counterexample:"))
	fmt.Fprintf(&b, "  %s\n", valueStyle.Render(f.ShrunkValue))
	fmt.Fprintf(&b, "  %s\n", errStyle.Render(f.ShrunkErr))
	if f.ReplayHint != "" {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("replay:"), valueStyle.Render(f.ReplayHint))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderSuccess formats a passing run summary.
func RenderSuccess(seed int64, successes int) string {
	line := fmt.Sprintf("%s %s after %s runs (seed %d)",
		okStyle.Render("ok"),
		valueStyle.Render("property held"),
		valueStyle.Render(fmt.Sprintf("%d", successes)),
		seed)
	return boxStyle.Render(line)
}

// RenderValue formats a single sampled value under a generator label, used
// by the CLI's "take"/"pick" subcommands.
func RenderValue(label string, index int, value string) string {
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(fmt.Sprintf("%s[%d]", label, index)),
		labelStyle.Render("="),
		valueStyle.Render(value))
}
