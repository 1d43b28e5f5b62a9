package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"weekview/internal/models"
	"weekview/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("store close failed: %v", err)
		}
	})
	return s
}

func TestInsertAndListRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	ev := testutil.NewEvent().
		WithTitle("Morning News").
		WithCategory(models.CategoryNews).
		StartingAt(time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)).
		Lasting(30 * time.Minute).
		Build()

	if err := s.Insert(ctx, ev); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := s.AllEvents(ctx)
	if err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].ID != ev.ID || got[0].Title != "Morning News" || got[0].Category != models.CategoryNews {
		t.Fatalf("round trip mismatch: %+v", got[0])
	}
	if !got[0].Start.Equal(ev.Start) || !got[0].End.Equal(ev.End) {
		t.Fatalf("times mismatch: got %s-%s want %s-%s", got[0].Start, got[0].End, ev.Start, ev.End)
	}
}

func TestEventsBetweenFiltersOnStart(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	weekStart := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	inside := testutil.NewEvent().StartingAt(weekStart.Add(10 * time.Hour)).Build()
	before := testutil.NewEvent().StartingAt(weekStart.Add(-2 * time.Hour)).Build()
	after := testutil.NewEvent().StartingAt(weekStart.AddDate(0, 0, 8)).Build()

	for _, ev := range []models.Event{inside, before, after} {
		if err := s.Insert(ctx, ev); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := s.EventsBetween(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("EventsBetween failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != inside.ID {
		t.Fatalf("expected only the in-range event, got %+v", got)
	}
}

func TestUpdateTimesReschedules(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	ev := testutil.NewEvent().
		StartingAt(time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)).
		Lasting(30 * time.Minute).
		Build()
	if err := s.Insert(ctx, ev); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	newStart := ev.Start.AddDate(0, 0, 1).Add(-time.Hour)
	newEnd := newStart.Add(30 * time.Minute)
	if err := s.UpdateTimes(ctx, ev.ID, newStart, newEnd); err != nil {
		t.Fatalf("UpdateTimes failed: %v", err)
	}

	got, err := s.AllEvents(ctx)
	if err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}
	if !got[0].Start.Equal(newStart) || !got[0].End.Equal(newEnd) {
		t.Fatalf("reschedule not applied: %+v", got[0])
	}
}

func TestUpdateTimesMissingEvent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	err := s.UpdateTimes(ctx, "no-such-id", time.Now(), time.Now().Add(time.Hour))
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestDeleteRemovesEvent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	ev := testutil.NewEvent().Build()
	if err := s.Insert(ctx, ev); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := s.Delete(ctx, ev.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err := s.AllEvents(ctx)
	if err != nil {
		t.Fatalf("AllEvents failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %d events", len(got))
	}
}
