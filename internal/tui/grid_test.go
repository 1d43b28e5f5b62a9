package tui

import (
	"testing"
	"time"

	"weekview/internal/models"
	"weekview/internal/testutil"
	"weekview/internal/timegrid"
)

func newTestModel(events []models.Event, cb Callbacks) Model {
	clock := testutil.NewClock(time.Date(2026, time.September, 7, 12, 0, 0, 0, time.Local))
	return New(timegrid.Config{StartHour: 6, SlotInterval: 15}, events, cb).
		WithClock(clock.NowFunc())
}

func TestSpanSlots(t *testing.T) {
	cases := []struct {
		minutes int
		want    int
	}{
		{15, 1},
		{30, 2},
		{40, 3}, // partial slots round up
		{90, 6},
		{0, 0},
	}
	for _, tc := range cases {
		ev := testutil.NewEvent().Lasting(time.Duration(tc.minutes) * time.Minute).Build()
		if got := spanSlots(ev, 15); got != tc.want {
			t.Fatalf("spanSlots(%dm) = %d, want %d", tc.minutes, got, tc.want)
		}
	}
}

func TestColumnOccupancyBucketsIntoStartingSlot(t *testing.T) {
	ev := testutil.NewEvent().
		StartingAt(time.Date(2026, time.September, 7, 10, 0, 0, 0, time.Local)).
		Lasting(30 * time.Minute).
		Build()
	m := newTestModel([]models.Event{ev}, Callbacks{})
	mon := m.weekDays()[0]

	occ := m.columnOccupancy(mon)
	startIdx := 16 // 10:00 is four hours past the 06:00 column start
	if occ[startIdx].ev == nil || !occ[startIdx].isStart {
		t.Fatalf("event not bucketed into slot %d: %+v", startIdx, occ[startIdx])
	}
	if occ[startIdx+1].ev == nil || occ[startIdx+1].isStart || occ[startIdx+1].offset != 1 {
		t.Fatalf("30m event should cover a second slot: %+v", occ[startIdx+1])
	}
	if occ[startIdx+2].ev != nil {
		t.Fatalf("event block extends too far")
	}
	if occ[startIdx-1].ev != nil {
		t.Fatalf("event block starts too early")
	}
}

func TestColumnOccupancySubSlotStartStaysInSlot(t *testing.T) {
	// Starts mid-slot: bucketed into the slot containing the start.
	ev := testutil.NewEvent().
		StartingAt(time.Date(2026, time.September, 7, 10, 7, 0, 0, time.Local)).
		Lasting(15 * time.Minute).
		Build()
	m := newTestModel([]models.Event{ev}, Callbacks{})

	occ := m.columnOccupancy(m.weekDays()[0])
	if occ[16].ev == nil || !occ[16].isStart {
		t.Fatalf("10:07 start should land in the 10:00 slot")
	}
}

func TestEventsForDayRollingWindow(t *testing.T) {
	// 01:00 Tuesday belongs to Monday's column, which runs 06:00 Monday
	// to 06:00 Tuesday.
	lateNight := testutil.NewEvent().
		StartingAt(time.Date(2026, time.September, 8, 1, 0, 0, 0, time.Local)).
		Lasting(30 * time.Minute).
		Build()
	tueMorning := testutil.NewEvent().
		StartingAt(time.Date(2026, time.September, 8, 9, 0, 0, 0, time.Local)).
		Build()
	m := newTestModel([]models.Event{lateNight, tueMorning}, Callbacks{})
	days := m.weekDays()

	monEvents := m.eventsForDay(days[0])
	if len(monEvents) != 1 || monEvents[0].ID != lateNight.ID {
		t.Fatalf("monday column should hold the late-night event, got %+v", monEvents)
	}
	tueEvents := m.eventsForDay(days[1])
	if len(tueEvents) != 1 || tueEvents[0].ID != tueMorning.ID {
		t.Fatalf("tuesday column should hold only the morning event, got %+v", tueEvents)
	}

	// And the late-night event occupies the post-midnight slots of
	// Monday's column: 01:00 is 19h past the column start.
	occ := m.columnOccupancy(days[0])
	if idx := 19 * 4; occ[idx].ev == nil || !occ[idx].isStart {
		t.Fatalf("late-night event not placed in post-midnight slot %d", 19*4)
	}
}
