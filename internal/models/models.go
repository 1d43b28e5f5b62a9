package models

import "time"

// Event categories with a dedicated display color.
const (
	CategoryNews        = "news"
	CategoryEntertain   = "entertainment"
	CategorySports      = "sports"
	CategoryDocumentary = "documentary"
	CategoryFilm        = "film"
)

// Event represents a single calendar entry. The widget treats events as
// read-only: rescheduling is reported through callbacks and the caller
// decides whether to apply it.
type Event struct {
	ID       string
	Title    string
	Category string // optional, selects the display color
	Start    time.Time
	End      time.Time
	Color    string // optional ANSI color override
}

// Duration returns the event length. Not validated: an event whose End
// precedes its Start yields a negative duration.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
