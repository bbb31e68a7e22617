package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// ErrBadSort is returned when a report asks to sort by a column outside the
// allow-list. Handlers translate this into an HTTP 400 response. Sort
// columns are the one piece of a query that cannot be a bound parameter, so
// they are never interpolated from client input directly.
var ErrBadSort = errors.New("unsupported sort column")

// ReportRepo builds the two read-only reports. Filters are conditionally
// appended WHERE clauses with bound arguments; ORDER BY columns come from a
// fixed allow-list.
type ReportRepo struct{ db *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

// transactionSortColumns maps client sort keys onto real columns for the
// transactions report.
var transactionSortColumns = map[string]string{
	"visitor_name":     "visitor.Name",
	"item_name":        "transaction_items.name",
	"item_price":       "transaction_items.price",
	"item_quantity":    "transaction_items.quantity",
	"transaction_date": "transactions.date",
}

// museumItemSortColumns maps client sort keys onto real columns for the
// museum items report.
var museumItemSortColumns = map[string]string{
	"artist_name":   "ar.Name",
	"artwork_title": "a.Title",
	"year_created":  "a.YearCreated",
	"artwork_value": "a.Value",
}

// orderKeyword normalizes the order parameter: anything other than "desc"
// sorts ascending.
func orderKeyword(order string) string {
	if strings.EqualFold(order, "desc") {
		return "DESC"
	}
	return "ASC"
}

// TransactionReportQuery carries the optional filters for the transactions
// report. Zero values mean "no filter".
type TransactionReportQuery struct {
	VisitorID uint64
	StartDate *time.Time
	EndDate   *time.Time
	ItemName  string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

// TransactionReportRow is one report line: a transaction item joined with
// its transaction and buyer.
type TransactionReportRow struct {
	VisitorName     string    `json:"visitor_name"`
	VisitorID       uint64    `json:"visitor_id"`
	ItemName        string    `json:"item_name"`
	ItemPrice       float64   `json:"item_price"`
	ItemQuantity    int       `json:"item_quantity"`
	TransactionDate time.Time `json:"transaction_date"`
}

// buildTransactionReport assembles the SQL and bound arguments for a
// transactions report query. Split out from the executing method so the
// clause construction is testable without a database.
func buildTransactionReport(q TransactionReportQuery) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT visitor.Name, visitor.VisitorID, transaction_items.name,
		transaction_items.price, transaction_items.quantity, transactions.date
		FROM visitor
		JOIN transactions ON visitor.VisitorID = transactions.visitorID
		JOIN transaction_items ON transactions.TransactionID = transaction_items.transactionID
		WHERE 1=1`)
	args := []any{}

	if q.VisitorID != 0 {
		sb.WriteString(" AND visitor.VisitorID = ?")
		args = append(args, q.VisitorID)
	}
	if q.StartDate != nil {
		sb.WriteString(" AND transactions.date >= ?")
		args = append(args, *q.StartDate)
	}
	if q.EndDate != nil {
		sb.WriteString(" AND transactions.date <= ?")
		args = append(args, *q.EndDate)
	}
	if q.ItemName != "" {
		sb.WriteString(" AND transaction_items.name LIKE ?")
		args = append(args, "%"+q.ItemName+"%")
	}

	if q.SortBy != "" {
		col, ok := transactionSortColumns[q.SortBy]
		if !ok {
			return "", nil, ErrBadSort
		}
		sb.WriteString(" ORDER BY " + col + " " + orderKeyword(q.Order))
	}
	if q.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
		if q.Offset > 0 {
			sb.WriteString(" OFFSET ?")
			args = append(args, q.Offset)
		}
	}
	return sb.String(), args, nil
}

// Transactions runs the transactions report.
func (r *ReportRepo) Transactions(ctx context.Context, q TransactionReportQuery) ([]TransactionReportRow, error) {
	query, args, err := buildTransactionReport(q)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransactionReportRow
	for rows.Next() {
		var t TransactionReportRow
		if err := rows.Scan(&t.VisitorName, &t.VisitorID, &t.ItemName, &t.ItemPrice, &t.ItemQuantity, &t.TransactionDate); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// MuseumItemQuery carries the optional filters for the museum items report.
type MuseumItemQuery struct {
	YearCreated int
	Medium      string
	ArtistName  string
	GalleryID   uint64
	MinValue    float64
	MaxValue    float64
	SortBy      string
	Order       string
}

// MuseumItemRow is one report line: an artwork joined with its artist.
type MuseumItemRow struct {
	ArtistName string  `json:"artist_name"`
	Title      string  `json:"artwork_title"`
	Year       int     `json:"year_created"`
	ArtistID   uint64  `json:"artist_id"`
	GalleryID  uint64  `json:"gallery_id"`
	Value      float64 `json:"artwork_value"`
	Medium     string  `json:"artwork_medium"`
	Dimensions string  `json:"artwork_dimensions"`
}

func buildMuseumItemReport(q MuseumItemQuery) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ar.Name, a.Title, a.YearCreated, a.ArtistID, a.GalleryID,
		a.Value, a.Medium, a.Dimensions
		FROM artist ar
		JOIN artwork a ON ar.ArtistID = a.ArtistID
		WHERE 1=1`)
	args := []any{}

	if q.YearCreated != 0 {
		sb.WriteString(" AND a.YearCreated = ?")
		args = append(args, q.YearCreated)
	}
	if q.Medium != "" {
		sb.WriteString(" AND a.Medium LIKE ?")
		args = append(args, "%"+q.Medium+"%")
	}
	if q.ArtistName != "" {
		sb.WriteString(" AND ar.Name LIKE ?")
		args = append(args, "%"+q.ArtistName+"%")
	}
	if q.GalleryID != 0 {
		sb.WriteString(" AND a.GalleryID = ?")
		args = append(args, q.GalleryID)
	}
	if q.MinValue > 0 {
		sb.WriteString(" AND a.Value >= ?")
		args = append(args, q.MinValue)
	}
	if q.MaxValue > 0 {
		sb.WriteString(" AND a.Value <= ?")
		args = append(args, q.MaxValue)
	}

	if q.SortBy != "" {
		col, ok := museumItemSortColumns[q.SortBy]
		if !ok {
			return "", nil, ErrBadSort
		}
		sb.WriteString(" ORDER BY " + col + " " + orderKeyword(q.Order))
	}
	return sb.String(), args, nil
}

// MuseumItems runs the museum items report.
func (r *ReportRepo) MuseumItems(ctx context.Context, q MuseumItemQuery) ([]MuseumItemRow, error) {
	query, args, err := buildMuseumItemReport(q)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MuseumItemRow
	for rows.Next() {
		var m MuseumItemRow
		if err := rows.Scan(&m.ArtistName, &m.Title, &m.Year, &m.ArtistID, &m.GalleryID, &m.Value, &m.Medium, &m.Dimensions); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
