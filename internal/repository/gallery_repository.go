package repository

import (
	"context"
	"database/sql"

	"github.com/harism06/museum-db/internal/model"
)

// GalleryRepo provides CRUD over the gallery table.
type GalleryRepo struct{ db *sql.DB }

func NewGalleryRepo(db *sql.DB) *GalleryRepo { return &GalleryRepo{db: db} }

// List returns every gallery.
func (r *GalleryRepo) List(ctx context.Context) ([]model.Gallery, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT GalleryID, Name, FloorNumber, Capacity FROM gallery ORDER BY FloorNumber, Name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Gallery
	for rows.Next() {
		var g model.Gallery
		if err := rows.Scan(&g.GalleryID, &g.Name, &g.FloorNumber, &g.Capacity); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Create inserts a gallery and returns its ID.
func (r *GalleryRepo) Create(ctx context.Context, name string, floorNumber, capacity int) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO gallery (Name, FloorNumber, Capacity) VALUES (?,?,?)",
		name, floorNumber, capacity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a gallery row.
func (r *GalleryRepo) Update(ctx context.Context, id uint64, name string, floorNumber, capacity int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE gallery SET Name=?, FloorNumber=?, Capacity=? WHERE GalleryID=?",
		name, floorNumber, capacity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a gallery row. Deletes are manual and order-dependent:
// artworks, exhibitions and events referencing the gallery must go first.
func (r *GalleryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM gallery WHERE GalleryID=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
