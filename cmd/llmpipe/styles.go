package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the stderr diagnostic styles. They are bound to the stderr
// writer so colour is dropped when stderr is not a terminal.
type styles struct {
	errorBlock lipgloss.Style
	errorLabel lipgloss.Style
	notice     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		errorBlock: r.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("1")), // red
		errorLabel: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		notice:     r.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	}
}

// renderError formats a fatal diagnostic.
func (s styles) renderError(msg string) string {
	return s.errorBlock.Render(s.errorLabel.Render("error:") + " " + msg)
}

// renderNotice formats a non-fatal message.
func (s styles) renderNotice(msg string) string {
	return s.notice.Render(msg)
}
