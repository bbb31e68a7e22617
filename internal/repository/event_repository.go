package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/harism06/museum-db/internal/model"
)

// EventRepo provides CRUD over the event table.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// List returns every event.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT EventID, Name, Date, Time, GalleryID, Description FROM event ORDER BY Date, Time")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.EventID, &e.Name, &e.Date, &e.Time, &e.GalleryID, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Create inserts an event and returns its ID. eventTime is the raw
// "HH:MM:SS" text the TIME column expects.
func (r *EventRepo) Create(ctx context.Context, name string, date time.Time, eventTime string, galleryID uint64, description string) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO event (Name, Date, Time, GalleryID, Description) VALUES (?,?,?,?,?)",
		name, date, eventTime, galleryID, description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites an event row.
func (r *EventRepo) Update(ctx context.Context, id uint64, name string, date time.Time, eventTime string, galleryID uint64, description string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE event SET Name=?, Date=?, Time=?, GalleryID=?, Description=? WHERE EventID=?",
		name, date, eventTime, galleryID, description, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an event row.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM event WHERE EventID=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
