package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"weekview/internal/timegrid"
)

// handleMouse feeds pointer events into the drag state machine. The
// program runs with cell-motion tracking, so motion arrives only while
// a button is held and the release arrives wherever the pointer is,
// including outside the grid. That release always commits.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - wheelScrollLines)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + wheelScrollLines)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		cell, slotIdx, ok := m.hitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if ev := m.eventAt(cell, slotIdx); ev != nil {
			m.drag = startMove(*ev, cell)
		} else {
			m.drag = startSelection(cell)
		}

	case tea.MouseActionMotion:
		if !m.drag.active() {
			return m, nil
		}
		if cell, _, ok := m.hitTest(msg.X, msg.Y); ok {
			m.drag = m.drag.track(cell)
		}

	case tea.MouseActionRelease:
		return m.commitDrag()
	}
	return m, nil
}

// commitDrag resolves the active drag into a time interval, fires the
// matching callback and resets to idle. The reset happens regardless of
// whether a callback was registered.
func (m Model) commitDrag() (Model, tea.Cmd) {
	d := m.drag
	m.drag = dragState{}
	if !d.active() {
		return m, nil
	}
	startHour := columnStartHour(m.slots)

	switch d.kind {
	case dragSelect:
		if !d.moved && m.callbacks.OnTimeSlotClick != nil {
			m.callbacks.OnTimeSlotClick(
				timegrid.DateAt(d.start.Day.Date, d.start.Slot.Hour, d.start.Slot.Minute),
				d.start.Slot)
		}
		start, end := selectionTimes(d.start, d.current, m.interval(), startHour)
		if m.callbacks.OnEventCreate != nil {
			m.callbacks.OnEventCreate(start, end)
			m.status = "created " + start.Format("Mon 15:04") + " – " + end.Format("Mon 15:04")
			return m, m.reloadCmd()
		}

	case dragMove:
		if !d.moved && m.callbacks.OnEventClick != nil {
			m.callbacks.OnEventClick(*d.event)
		}
		newStart, newEnd := moveTimes(*d.event, d.current, startHour)
		if m.callbacks.OnEventUpdate != nil {
			m.callbacks.OnEventUpdate(*d.event, newStart, newEnd)
			m.status = "moved to " + newStart.Format("Mon 15:04")
			return m, m.reloadCmd()
		}
	}
	return m, nil
}
