package repository

import (
	"context"
	"database/sql"
)

// ArtworkRepo provides CRUD over the artwork table. Listings join the
// artist table so clients get the artist name without a second round trip.
type ArtworkRepo struct{ db *sql.DB }

func NewArtworkRepo(db *sql.DB) *ArtworkRepo { return &ArtworkRepo{db: db} }

// ArtworkRow is the listing shape: artwork columns plus the artist name.
type ArtworkRow struct {
	ArtworkID   uint64  `json:"artworkID"`
	Title       string  `json:"title"`
	YearCreated int     `json:"yearCreated"`
	ArtistName  string  `json:"artistName"`
	ArtistID    uint64  `json:"artistID"`
	GalleryID   uint64  `json:"galleryID"`
	Value       float64 `json:"value"`
	Medium      string  `json:"medium"`
	Dimensions  string  `json:"dimensions"`
}

// List returns every artwork joined with its artist.
func (r *ArtworkRepo) List(ctx context.Context) ([]ArtworkRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT aw.ArtworkID, aw.Title, aw.YearCreated, ar.Name, aw.ArtistID,
		        aw.GalleryID, aw.Value, aw.Medium, aw.Dimensions
		 FROM artwork aw
		 JOIN artist ar ON aw.ArtistID = ar.ArtistID
		 ORDER BY aw.Title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ArtworkRow
	for rows.Next() {
		var a ArtworkRow
		if err := rows.Scan(&a.ArtworkID, &a.Title, &a.YearCreated, &a.ArtistName, &a.ArtistID,
			&a.GalleryID, &a.Value, &a.Medium, &a.Dimensions); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create inserts an artwork and returns its ID.
func (r *ArtworkRepo) Create(ctx context.Context, title string, yearCreated int, artistID, galleryID uint64, value float64, dimensions, medium string) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO artwork (Title, YearCreated, ArtistID, GalleryID, Value, Dimensions, Medium)
		 VALUES (?,?,?,?,?,?,?)`,
		title, yearCreated, artistID, galleryID, value, dimensions, medium)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites an artwork row.
func (r *ArtworkRepo) Update(ctx context.Context, id uint64, title string, yearCreated int, artistID, galleryID uint64, value float64, dimensions, medium string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE artwork
		 SET Title=?, YearCreated=?, ArtistID=?, GalleryID=?, Value=?, Dimensions=?, Medium=?
		 WHERE ArtworkID=?`,
		title, yearCreated, artistID, galleryID, value, dimensions, medium, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an artwork row.
func (r *ArtworkRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM artwork WHERE ArtworkID=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
