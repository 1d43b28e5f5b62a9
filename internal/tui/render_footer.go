package tui

import "github.com/charmbracelet/x/ansi"

const helpLine = " drag: create/move · ←/→ week · t today · ± zoom · e pdf · r reload · q quit"

// renderFooter draws the help line with the status message on the right.
func (m Model) renderFooter() string {
	help := m.theme.Footer.Render(helpLine)
	if m.status == "" {
		return padCell(help, m.width)
	}
	status := m.theme.Status.Render(m.status + " ")
	gap := m.width - ansi.StringWidth(help) - ansi.StringWidth(status)
	if gap < 1 {
		return padCell(status, m.width)
	}
	return help + padCell("", gap) + status
}
