package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/harism06/museum-db/internal/checkout"
	"github.com/harism06/museum-db/internal/model"
)

// OrderRepo owns the transactions, transaction_items and tickets tables.
// Checkout writes go through the Tx variants so the transaction header, its
// line items, the discount decrement and the membership window all commit
// or roll back as one unit.
type OrderRepo struct{ db *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// DB exposes the handle so the checkout handler can begin the settlement
// transaction that spans this repo, DiscountRepo and VisitorRepo.
func (r *OrderRepo) DB() *sql.DB { return r.db }

// InsertTransactionTx writes the transaction header and returns its ID.
func (r *OrderRepo) InsertTransactionTx(ctx context.Context, tx *sql.Tx, visitorID uint64, total float64) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO transactions (visitorID, price, date) VALUES (?,?,NOW())",
		visitorID, total)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// InsertItemsTx bulk-inserts the denormalized line items for a transaction.
func (r *OrderRepo) InsertItemsTx(ctx context.Context, tx *sql.Tx, transactionID uint64, lines []checkout.Line) error {
	if len(lines) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("INSERT INTO transaction_items (transactionID, name, price, quantity, category) VALUES ")
	args := make([]any, 0, len(lines)*5)
	for i, l := range lines {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("(?,?,?,?,?)")
		args = append(args, transactionID, l.Name, l.Price, l.Quantity, l.Category)
	}
	_, err := tx.ExecContext(ctx, sb.String(), args...)
	return err
}

// ListByVisitor returns a visitor's transaction headers, newest first.
func (r *OrderRepo) ListByVisitor(ctx context.Context, visitorID uint64) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT TransactionID, visitorID, price, date FROM transactions WHERE visitorID=? ORDER BY date DESC",
		visitorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.TransactionID, &t.VisitorID, &t.Price, &t.Date); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TicketOrder is one ticket batch in a bulk purchase. Date stays a
// "2006-01-02" string end to end; MySQL coerces it into the DATE column.
type TicketOrder struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Status   string  `json:"status"`
}

// InsertTickets bulk-inserts ticket rows for a visitor and returns the
// number inserted. Status defaults to "Active" when blank.
func (r *OrderRepo) InsertTickets(ctx context.Context, visitorID uint64, tickets []TicketOrder) (int64, error) {
	if len(tickets) == 0 {
		return 0, nil
	}
	var sb strings.Builder
	sb.WriteString("INSERT INTO tickets (visitorID, quantity, price, date, type, status) VALUES ")
	args := make([]any, 0, len(tickets)*6)
	for i, t := range tickets {
		if i > 0 {
			sb.WriteString(",")
		}
		status := t.Status
		if status == "" {
			status = "Active"
		}
		sb.WriteString("(?,?,?,?,?,?)")
		args = append(args, visitorID, t.Quantity, t.Price, t.Date, t.Type, status)
	}
	res, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
