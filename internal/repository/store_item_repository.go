package repository

import (
	"context"
	"database/sql"

	"github.com/harism06/museum-db/internal/model"
)

// StoreItemRepo provides CRUD over the storeitem table.
type StoreItemRepo struct{ db *sql.DB }

func NewStoreItemRepo(db *sql.DB) *StoreItemRepo { return &StoreItemRepo{db: db} }

// List returns every store item.
func (r *StoreItemRepo) List(ctx context.Context) ([]model.StoreItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT StoreItemID, Name, Price, Category, Description FROM storeitem ORDER BY Category, Name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StoreItem
	for rows.Next() {
		var s model.StoreItem
		if err := rows.Scan(&s.StoreItemID, &s.Name, &s.Price, &s.Category, &s.Description); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a store item and returns its ID.
func (r *StoreItemRepo) Create(ctx context.Context, name string, price float64, category, description string) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO storeitem (Name, Price, Category, Description) VALUES (?,?,?,?)",
		name, price, category, description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a store item row.
func (r *StoreItemRepo) Update(ctx context.Context, id uint64, name string, price float64, category, description string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE storeitem SET Name=?, Price=?, Category=?, Description=? WHERE StoreItemID=?",
		name, price, category, description, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a store item row.
func (r *StoreItemRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM storeitem WHERE StoreItemID=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
