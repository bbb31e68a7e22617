package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/harism06/museum-db/internal/model"
)

// ExhibitionRepo provides CRUD over the exhibition table.
type ExhibitionRepo struct{ db *sql.DB }

func NewExhibitionRepo(db *sql.DB) *ExhibitionRepo { return &ExhibitionRepo{db: db} }

// List returns every exhibition.
func (r *ExhibitionRepo) List(ctx context.Context) ([]model.Exhibition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ExhibitionID, Name, StartDate, EndDate, GalleryID, Description
		 FROM exhibition ORDER BY StartDate`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Exhibition
	for rows.Next() {
		var e model.Exhibition
		if err := rows.Scan(&e.ExhibitionID, &e.Name, &e.StartDate, &e.EndDate, &e.GalleryID, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Create inserts an exhibition and returns its ID.
func (r *ExhibitionRepo) Create(ctx context.Context, name string, startDate, endDate time.Time, galleryID uint64, description string) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO exhibition (Name, StartDate, EndDate, GalleryID, Description) VALUES (?,?,?,?,?)",
		name, startDate, endDate, galleryID, description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites an exhibition row.
func (r *ExhibitionRepo) Update(ctx context.Context, id uint64, name string, startDate, endDate time.Time, galleryID uint64, description string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE exhibition SET Name=?, StartDate=?, EndDate=?, GalleryID=?, Description=? WHERE ExhibitionID=?",
		name, startDate, endDate, galleryID, description, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an exhibition row.
func (r *ExhibitionRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM exhibition WHERE ExhibitionID=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
