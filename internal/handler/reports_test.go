package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harism06/museum-db/internal/repository"
)

func runReport(t *testing.T, target string, run func(*ReportHandler, echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	h := NewReportHandler(repository.NewReportRepo(nil))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, run(h, c))
	return rec
}

// Sort columns outside the allow-list must come back as 400, never reach
// the database as interpolated SQL.
func TestTransactionsReportRejectsUnknownSortColumn(t *testing.T) {
	rec := runReport(t, "/reports/transactions?sortBy=price;DROP+TABLE+visitor",
		(*ReportHandler).TransactionsReport)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionsReportRejectsBadDateFilter(t *testing.T) {
	rec := runReport(t, "/reports/transactions?startDate=12/31/2025",
		(*ReportHandler).TransactionsReport)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionsReportRejectsNegativeLimit(t *testing.T) {
	rec := runReport(t, "/reports/transactions?limit=-5",
		(*ReportHandler).TransactionsReport)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMuseumItemsReportRejectsUnknownSortColumn(t *testing.T) {
	rec := runReport(t, "/reports/museumItems?sortBy=a.Value--",
		(*ReportHandler).MuseumItemsReport)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMuseumItemsReportRejectsNonNumericGallery(t *testing.T) {
	rec := runReport(t, "/reports/museumItems?galleryID=west-wing",
		(*ReportHandler).MuseumItemsReport)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
