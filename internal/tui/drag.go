package tui

import (
	"time"

	"weekview/internal/config"
	"weekview/internal/models"
	"weekview/internal/timegrid"
)

// dragKind tags the active pointer operation. Modeling the drag as a
// single tagged variant makes "exactly one operation at a time" hold by
// construction.
type dragKind int

const (
	dragNone dragKind = iota
	dragSelect
	dragMove
)

// gridCell identifies one cell of the day × slot grid.
type gridCell struct {
	Day  timegrid.WeekDay
	Slot timegrid.Slot
}

func (c gridCell) slotMinutes() int {
	return c.Slot.Hour*60 + c.Slot.Minute
}

// dragState is the in-progress pointer operation. It exists between a
// press and the matching release; the zero value means idle.
type dragState struct {
	kind    dragKind
	event   *models.Event // captured for dragMove
	start   gridCell
	current gridCell
	moved   bool // pointer entered a different cell since the press
}

func (d dragState) active() bool {
	return d.kind != dragNone
}

// startSelection begins a new-event selection anchored at c.
func startSelection(c gridCell) dragState {
	return dragState{kind: dragSelect, start: c, current: c}
}

// startMove begins relocating ev, anchored at the cell under it.
func startMove(ev models.Event, c gridCell) dragState {
	return dragState{kind: dragMove, event: &ev, start: c, current: c}
}

// track updates the current anchor as the pointer enters c. The start
// anchor never changes during the active phase.
func (d dragState) track(c gridCell) dragState {
	if !d.active() {
		return d
	}
	if c != d.start {
		d.moved = true
	}
	d.current = c
	return d
}

// columnStartHour is the hour the day columns begin at, falling back
// to the default when no slots were generated.
func columnStartHour(slots []timegrid.Slot) int {
	if len(slots) == 0 {
		return config.DefaultStartHour
	}
	return slots[0].Hour
}

// selectionTimes resolves a committed selection into an interval. The
// anchors are normalized so the earlier one becomes the start, then the
// end extends one interval past the later slot. Normalizing first makes
// the result direction-independent.
func selectionTimes(start, current gridCell, interval, startHour int) (time.Time, time.Time) {
	a := timegrid.RollingDateAt(start.Day.Date, start.Slot.Hour, start.Slot.Minute, startHour)
	b := timegrid.RollingDateAt(current.Day.Date, current.Slot.Hour, current.Slot.Minute, startHour)
	if b.Before(a) {
		a, b = b, a
	}
	return a, b.Add(time.Duration(interval) * time.Minute)
}

// moveTimes resolves an event drop on target: the event starts at the
// target slot boundary and keeps its original duration.
func moveTimes(ev models.Event, target gridCell, startHour int) (time.Time, time.Time) {
	newStart := timegrid.RollingDateAt(target.Day.Date, target.Slot.Hour, target.Slot.Minute, startHour)
	return newStart, newStart.Add(ev.Duration())
}

// inSelection reports whether the candidate (day, slot) lies inside the
// span between start and current. It is derived purely from the two
// anchors: a single-day drag highlights the inclusive band of slot
// minutes, a multi-day drag highlights whole days strictly between the
// boundary days and partial bands on the boundaries.
func inSelection(start, current gridCell, day timegrid.WeekDay, slot timegrid.Slot) bool {
	candidate := slot.Hour*60 + slot.Minute

	if start.Day.Date.Equal(current.Day.Date) {
		if !day.Date.Equal(start.Day.Date) {
			return false
		}
		lo, hi := start.slotMinutes(), current.slotMinutes()
		if lo > hi {
			lo, hi = hi, lo
		}
		return candidate >= lo && candidate <= hi
	}

	first, last := start, current
	if last.Day.Date.Before(first.Day.Date) {
		first, last = last, first
	}
	if day.Date.Before(first.Day.Date) || day.Date.After(last.Day.Date) {
		return false
	}
	if day.Date.Equal(first.Day.Date) {
		return candidate >= first.slotMinutes()
	}
	if day.Date.Equal(last.Day.Date) {
		return candidate <= last.slotMinutes()
	}
	return true
}
