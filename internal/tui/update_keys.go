package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"weekview/internal/config"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.refDate = m.refDate.AddDate(0, 0, -7)
		return m, nil
	case "right", "l":
		m.refDate = m.refDate.AddDate(0, 0, 7)
		return m, nil
	case "t":
		m.refDate = m.now()
		return m, nil
	case "+", "=":
		m.zoom = clampZoom(m.zoom + config.ZoomStep)
		return m, nil
	case "-", "_":
		m.zoom = clampZoom(m.zoom - config.ZoomStep)
		return m, nil
	case "e":
		m.status = "exporting..."
		return m, m.exportCmd()
	case "r":
		return m, m.reloadCmd()
	}

	// Remaining keys (pgup/pgdown, arrows...) scroll the grid.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func clampZoom(z float64) float64 {
	if z < config.ZoomMin {
		return config.ZoomMin
	}
	if z > config.ZoomMax {
		return config.ZoomMax
	}
	return z
}
