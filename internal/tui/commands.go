package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"weekview/internal/models"
)

// --- Messages ---

type eventsLoadedMsg struct {
	events []models.Event
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

// reloadCmd asks the caller for a fresh event list, if a reload hook
// was provided.
func (m Model) reloadCmd() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	reload := m.reload
	return func() tea.Msg {
		events, err := reload()
		return eventsLoadedMsg{events: events, err: err}
	}
}

// exportCmd renders the current week to a PDF agenda.
func (m Model) exportCmd() tea.Cmd {
	days := m.weekDays()
	events := make([]models.Event, len(m.events))
	copy(events, m.events)
	startHour := columnStartHour(m.slots)
	return func() tea.Msg {
		path, err := ExportWeekPDF(days, events, startHour)
		return exportDoneMsg{path: path, err: err}
	}
}
