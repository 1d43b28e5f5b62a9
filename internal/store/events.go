package store

import (
	"context"
	"database/sql"
	"time"

	"weekview/internal/models"
)

// Insert adds a new event.
func (s *Store) Insert(ctx context.Context, ev models.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, title, category, start_time, end_time, color)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, nullableString(ev.Category), ev.Start, ev.End, nullableString(ev.Color))
	return wrapEventErr("insert", ev.ID, err)
}

// UpdateTimes reschedules an event, leaving everything else untouched.
func (s *Store) UpdateTimes(ctx context.Context, id string, start, end time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET start_time = ?, end_time = ? WHERE id = ?`,
		start, end, id)
	if err != nil {
		return wrapEventErr("update", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wrapEventErr("update", id, ErrEventNotFound)
	}
	return nil
}

// Delete removes an event.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return wrapEventErr("delete", id, err)
}

// EventsBetween lists events starting within [from, to), ordered by
// start time.
func (s *Store) EventsBetween(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, category, start_time, end_time, color
		 FROM events WHERE start_time >= ? AND start_time < ?
		 ORDER BY start_time`,
		from, to)
	if err != nil {
		return nil, wrapErr("list", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// AllEvents lists every stored event ordered by start time.
func (s *Store) AllEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, category, start_time, end_time, color
		 FROM events ORDER BY start_time`)
	if err != nil {
		return nil, wrapErr("list", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var ev models.Event
		var category, color sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Title, &category, &ev.Start, &ev.End, &color); err != nil {
			return nil, wrapErr("scan", err)
		}
		ev.Category = category.String
		ev.Color = color.String
		events = append(events, ev)
	}
	return events, wrapErr("list", rows.Err())
}
