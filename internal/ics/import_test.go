package ics

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"weekview/internal/store"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//test//EN
BEGIN:VEVENT
UID:evt-1@test
DTSTART:20260907T100000Z
DTEND:20260907T103000Z
SUMMARY:Morning Briefing
CATEGORIES:news
END:VEVENT
BEGIN:VEVENT
UID:evt-2@test
DTSTART:20260908T090000Z
DTEND:20260908T110000Z
SUMMARY:Weekly Repeat
RRULE:FREQ=WEEKLY
END:VEVENT
BEGIN:VEVENT
UID:evt-3@test
DTSTART:20260909T200000Z
DTEND:20260909T213000Z
END:VEVENT
END:VCALENDAR
`

func TestImportSkipsRecurringAndKeepsRest(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	n, err := Import(ctx, s, strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported events, got %d", n)
	}

	events, err := s.AllEvents(ctx)
	if err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 stored events, got %d", len(events))
	}
	if events[0].ID != "evt-1@test" || events[0].Title != "Morning Briefing" || events[0].Category != "news" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Title != "(untitled)" {
		t.Fatalf("expected untitled fallback, got %q", events[1].Title)
	}
	if got := events[0].End.Sub(events[0].Start); got.Minutes() != 30 {
		t.Fatalf("expected 30m duration, got %s", got)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := Import(ctx, s, strings.NewReader("not an ics file")); err == nil {
		t.Fatalf("expected parse error")
	}
}
