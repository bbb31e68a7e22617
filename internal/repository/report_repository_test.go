package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactionReportNoFilters(t *testing.T) {
	query, args, err := buildTransactionReport(TransactionReportQuery{})
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.NotContains(t, query, "ORDER BY")
	assert.NotContains(t, query, "LIMIT")
}

func TestBuildTransactionReportAllFilters(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	q := TransactionReportQuery{
		VisitorID: 7,
		StartDate: &start,
		EndDate:   &end,
		ItemName:  "poster",
		SortBy:    "transaction_date",
		Order:     "desc",
		Limit:     25,
		Offset:    50,
	}
	query, args, err := buildTransactionReport(q)
	require.NoError(t, err)
	assert.Contains(t, query, "visitor.VisitorID = ?")
	assert.Contains(t, query, "transactions.date >= ?")
	assert.Contains(t, query, "transactions.date <= ?")
	assert.Contains(t, query, "transaction_items.name LIKE ?")
	assert.Contains(t, query, "ORDER BY transactions.date DESC")
	assert.Contains(t, query, "LIMIT ?")
	assert.Contains(t, query, "OFFSET ?")
	// visitorID, start, end, like pattern, limit, offset
	require.Len(t, args, 6)
	assert.Equal(t, "%poster%", args[3])
	assert.Equal(t, 25, args[4])
	assert.Equal(t, 50, args[5])
}

// Sort columns come from the allow-list only; a client-supplied column name
// must never reach the query text.
func TestBuildTransactionReportRejectsUnknownSort(t *testing.T) {
	_, _, err := buildTransactionReport(TransactionReportQuery{SortBy: "1;DROP TABLE visitor"})
	assert.ErrorIs(t, err, ErrBadSort)
}

func TestBuildTransactionReportOrderDefaultsAscending(t *testing.T) {
	query, _, err := buildTransactionReport(TransactionReportQuery{SortBy: "item_price", Order: "sideways"})
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY transaction_items.price ASC")
}

func TestBuildMuseumItemReportFilters(t *testing.T) {
	q := MuseumItemQuery{
		YearCreated: 1889,
		Medium:      "oil",
		ArtistName:  "Gogh",
		GalleryID:   3,
		MinValue:    1000,
		MaxValue:    90000,
		SortBy:      "artwork_value",
		Order:       "desc",
	}
	query, args, err := buildMuseumItemReport(q)
	require.NoError(t, err)
	assert.Contains(t, query, "a.YearCreated = ?")
	assert.Contains(t, query, "a.Medium LIKE ?")
	assert.Contains(t, query, "ar.Name LIKE ?")
	assert.Contains(t, query, "a.GalleryID = ?")
	assert.Contains(t, query, "a.Value >= ?")
	assert.Contains(t, query, "a.Value <= ?")
	assert.Contains(t, query, "ORDER BY a.Value DESC")
	assert.Len(t, args, 6)
}

func TestBuildMuseumItemReportRejectsUnknownSort(t *testing.T) {
	_, _, err := buildMuseumItemReport(MuseumItemQuery{SortBy: "a.Value); --"})
	assert.ErrorIs(t, err, ErrBadSort)
}
