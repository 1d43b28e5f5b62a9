// Package timegrid holds the pure time math behind the weekly view:
// week boundaries, day descriptors and time-slot generation. Everything
// here is deterministic and side-effect free apart from a diagnostic
// when an invalid slot interval is corrected.
package timegrid

import (
	"fmt"
	"time"

	"weekview/internal/config"
	"weekview/internal/util"
)

// WeekDay describes one column of the weekly grid.
type WeekDay struct {
	Date       time.Time // midnight-normalized
	DayName    string
	DayOfMonth int
	IsToday    bool
}

// Slot is a single time slot in a day column. Its position in the
// generated sequence encodes the offset into the column; Hour and
// Minute wrap past midnight for display.
type Slot struct {
	Hour   int
	Minute int
	Label  string
}

// Config controls slot generation.
type Config struct {
	StartHour    int // hour the day column begins at (0-23)
	SlotInterval int // slot width in minutes, clamped to [5,30]
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of the week containing t, normalized to
// midnight. Sunday counts as the last day of the preceding week.
func WeekStart(t time.Time) time.Time {
	d := Midnight(t)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, 1-wd)
}

// WeekDays produces the seven day descriptors starting at weekStart.
// The day matching today's date (midnight-normalized) is flagged.
func WeekDays(weekStart, today time.Time) []WeekDay {
	ref := Midnight(today)
	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := Midnight(weekStart.AddDate(0, 0, i))
		days = append(days, WeekDay{
			Date:       date,
			DayName:    date.Weekday().String(),
			DayOfMonth: date.Day(),
			IsToday:    date.Equal(ref),
		})
	}
	return days
}

// Slots generates the full 24-hour slot sequence beginning at
// cfg.StartHour. The sequence is continuous: slots past midnight keep
// their position at the bottom of the column while their labels wrap.
// An interval outside [5,30] falls back to the default.
func Slots(cfg Config) []Slot {
	interval := cfg.SlotInterval
	if interval < config.MinSlotInterval || interval > config.MaxSlotInterval {
		util.Warnf("slot interval %d out of range [%d,%d], using %d",
			interval, config.MinSlotInterval, config.MaxSlotInterval, config.DefaultSlotInterval)
		interval = config.DefaultSlotInterval
	}

	var slots []Slot
	for i := 0; i < config.MinutesPerDay; i += interval {
		total := cfg.StartHour*60 + i
		hour := (total / 60) % 24
		minute := total % 60
		slots = append(slots, Slot{
			Hour:   hour,
			Minute: minute,
			Label:  FormatTime(hour, minute),
		})
	}
	return slots
}

// FormatTime renders an hour/minute pair as a zero-padded clock label.
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// DateAt builds a timestamp on date's calendar day at hour:minute.
func DateAt(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// RollingDateAt builds a timestamp for a slot inside a rolling day
// column that begins at startHour. Slot hours below startHour belong
// to the early morning of the next calendar day.
func RollingDateAt(date time.Time, hour, minute, startHour int) time.Time {
	if hour < startHour {
		date = date.AddDate(0, 0, 1)
	}
	return DateAt(date, hour, minute)
}

// ISOWeekNumber returns the ISO-8601 week number of t.
func ISOWeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// MonthYearLabel renders the month and year of t for the header.
func MonthYearLabel(t time.Time) string {
	return t.Format("January 2006")
}

// MinutesBetween returns the whole minutes from start to end.
func MinutesBetween(start, end time.Time) int {
	return int(end.Sub(start).Minutes())
}
