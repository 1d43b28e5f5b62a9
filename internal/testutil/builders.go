// Package testutil provides fixture builders and a controllable clock
// for tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"weekview/internal/models"
)

// EventBuilder provides a fluent API for creating test events.
type EventBuilder struct {
	event models.Event
}

func NewEvent() *EventBuilder {
	start := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	return &EventBuilder{
		event: models.Event{
			ID:    uuid.NewString(),
			Title: "Test Event",
			Start: start,
			End:   start.Add(30 * time.Minute),
		},
	}
}

func (b *EventBuilder) WithID(id string) *EventBuilder {
	b.event.ID = id
	return b
}

func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

func (b *EventBuilder) WithCategory(category string) *EventBuilder {
	b.event.Category = category
	return b
}

// StartingAt moves the event start, preserving its duration.
func (b *EventBuilder) StartingAt(start time.Time) *EventBuilder {
	d := b.event.End.Sub(b.event.Start)
	b.event.Start = start
	b.event.End = start.Add(d)
	return b
}

// Lasting sets the event duration from its current start.
func (b *EventBuilder) Lasting(d time.Duration) *EventBuilder {
	b.event.End = b.event.Start.Add(d)
	return b
}

func (b *EventBuilder) Build() models.Event {
	return b.event
}
