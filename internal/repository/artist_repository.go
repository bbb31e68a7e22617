package repository

import (
	"context"
	"database/sql"

	"github.com/harism06/museum-db/internal/model"
)

// ArtistRepo provides CRUD over the artist table.
type ArtistRepo struct{ db *sql.DB }

func NewArtistRepo(db *sql.DB) *ArtistRepo { return &ArtistRepo{db: db} }

// List returns every artist.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT ArtistID, Name, BirthYear, Country FROM artist ORDER BY Name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Artist
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(&a.ArtistID, &a.Name, &a.BirthYear, &a.Country); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create inserts an artist and returns its ID.
func (r *ArtistRepo) Create(ctx context.Context, name string, birthYear int, country string) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO artist (Name, BirthYear, Country) VALUES (?,?,?)",
		name, birthYear, country)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites an artist row.
func (r *ArtistRepo) Update(ctx context.Context, id uint64, name string, birthYear int, country string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE artist SET Name=?, BirthYear=?, Country=? WHERE ArtistID=?",
		name, birthYear, country, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an artist row.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM artist WHERE ArtistID=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
