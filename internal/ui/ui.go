// Package ui renders user-facing notifications and result lists for the
// CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier writes severity-tagged messages. Styling degrades to plain
// text when the output is not a terminal.
type Notifier struct {
	w      io.Writer
	errW   io.Writer
	styles styles
}

type styles struct {
	info    lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
}

// NewNotifier creates a Notifier writing results to w and diagnostics to
// errW. Colors are enabled only when isTTY is true.
func NewNotifier(w, errW io.Writer, isTTY bool) *Notifier {
	s := styles{
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Faint(true),
	}
	if !isTTY {
		s = styles{}
	}
	return &Notifier{w: w, errW: errW, styles: s}
}

// Info reports a success-class message.
func (n *Notifier) Info(format string, args ...any) {
	fmt.Fprintln(n.w, n.styles.info.Render(fmt.Sprintf(format, args...)))
}

// Warn reports a non-fatal problem.
func (n *Notifier) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(n.errW, "%s: %s\n", n.styles.warning.Render("Warning"), msg)
}

// Error reports a failure.
func (n *Notifier) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(n.errW, "%s: %s\n", n.styles.err.Render("Error"), msg)
}

// Title prints a result-list heading.
func (n *Notifier) Title(text string) {
	fmt.Fprintln(n.w, n.styles.title.Render(text))
}

// Line prints one result row.
func (n *Notifier) Line(format string, args ...any) {
	fmt.Fprintf(n.w, format+"\n", args...)
}

// Dim prints secondary detail, such as captured command output.
func (n *Notifier) Dim(text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(n.errW, n.styles.dim.Render(text))
}
