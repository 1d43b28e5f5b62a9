package tui

import (
	"time"

	"weekview/internal/models"
	"weekview/internal/timegrid"
)

// eventsForDay filters the events belonging to a day column. A column
// is a rolling 24-hour window beginning at the configured start hour,
// not a midnight-to-midnight calendar day.
func (m Model) eventsForDay(day timegrid.WeekDay) []models.Event {
	startHour := columnStartHour(m.slots)
	columnStart := timegrid.DateAt(day.Date, startHour, 0)
	columnEnd := columnStart.AddDate(0, 0, 1)

	var out []models.Event
	for _, ev := range m.events {
		if !ev.Start.Before(columnStart) && ev.Start.Before(columnEnd) {
			out = append(out, ev)
		}
	}
	return out
}

// spanSlots is the number of slots an event's block covers.
func spanSlots(ev models.Event, interval int) int {
	minutes := ev.Duration().Minutes()
	span := int(minutes / float64(interval))
	if float64(span*interval) < minutes {
		span++
	}
	return span
}

// slotStartTime is the absolute start of a slot within a day column,
// rolling past midnight for slots below the start hour.
func (m Model) slotStartTime(day timegrid.WeekDay, slot timegrid.Slot) time.Time {
	return timegrid.RollingDateAt(day.Date, slot.Hour, slot.Minute, columnStartHour(m.slots))
}

// occSlot records what occupies one slot of a day column. offset is
// the distance in slots from the block's starting slot.
type occSlot struct {
	ev      *models.Event
	isStart bool
	offset  int
}

// columnOccupancy buckets a day's events into their starting slot
// (half-open window: slotStart <= eventStart < slotStart+interval) and
// marks the slots their blocks extend over. Later events win overlaps;
// overlap layout is out of scope.
func (m Model) columnOccupancy(day timegrid.WeekDay) []occSlot {
	occ := make([]occSlot, len(m.slots))
	interval := m.interval()

	for _, ev := range m.eventsForDay(day) {
		for i, slot := range m.slots {
			slotStart := m.slotStartTime(day, slot)
			slotEnd := slotStart.Add(time.Duration(interval) * time.Minute)
			if ev.Start.Before(slotStart) || !ev.Start.Before(slotEnd) {
				continue
			}
			span := spanSlots(ev, interval)
			for k := i; k < i+span && k < len(occ); k++ {
				occ[k] = occSlot{ev: &ev, isStart: k == i, offset: k - i}
			}
			break
		}
	}
	return occ
}
