// Package ics imports events from iCalendar files into the event store.
// Recurring events are skipped: the calendar renders concrete
// occurrences only.
package ics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"weekview/internal/models"
	"weekview/internal/store"
	"weekview/internal/util"
)

// ImportFile parses the ICS file at path and inserts its events into s.
// It returns the number of imported events. Unparseable or recurring
// VEVENTs are logged and skipped; they do not abort the import.
func ImportFile(ctx context.Context, s *store.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Import(ctx, s, f)
}

// Import reads an ICS payload from r and inserts its events into s.
func Import(ctx context.Context, s *store.Store, r io.Reader) (int, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return 0, fmt.Errorf("parse calendar: %w", err)
	}

	imported := 0
	for _, ve := range cal.Events() {
		ev, err := eventFromVEvent(ve)
		if err != nil {
			util.LogError("skipping vevent", err)
			continue
		}
		if err := s.Insert(ctx, ev); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func eventFromVEvent(ve *ical.VEvent) (models.Event, error) {
	var ev models.Event

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil && p.Value != "" {
		return ev, errors.New("recurring event")
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return ev, fmt.Errorf("missing DTSTART: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return ev, fmt.Errorf("missing DTEND: %w", err)
	}
	ev.Start = start.Local()
	ev.End = end.Local()

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		ev.ID = p.Value
	} else {
		ev.ID = uuid.NewString()
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Title = p.Value
	}
	if ev.Title == "" {
		ev.Title = "(untitled)"
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		ev.Category = p.Value
	}
	return ev, nil
}
