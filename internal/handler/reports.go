package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/harism06/museum-db/internal/repository"
)

// ReportHandler serves the manager-only reporting endpoints. All filter
// values are bound SQL parameters; sort columns go through the
// repository's allow-list and fall out as 400s here.
type ReportHandler struct {
	Reports *repository.ReportRepo
}

func NewReportHandler(r *repository.ReportRepo) *ReportHandler {
	if r == nil {
		panic("nil repository passed to NewReportHandler")
	}
	return &ReportHandler{Reports: r}
}

// TransactionsReport runs the transactions report. Every query parameter
// is optional; an unfiltered call returns the full join.
func (h *ReportHandler) TransactionsReport(c echo.Context) error {
	var q repository.TransactionReportQuery

	if v := c.QueryParam("visitorID"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "visitorID must be numeric"})
		}
		q.VisitorID = id
	}
	if v := c.QueryParam("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "startDate must be YYYY-MM-DD"})
		}
		q.StartDate = &t
	}
	if v := c.QueryParam("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "endDate must be YYYY-MM-DD"})
		}
		q.EndDate = &t
	}
	q.ItemName = c.QueryParam("itemName")
	q.SortBy = c.QueryParam("sortBy")
	q.Order = c.QueryParam("order")
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a non-negative integer"})
		}
		q.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "offset must be a non-negative integer"})
		}
		q.Offset = n
	}

	rows, err := h.Reports.Transactions(c.Request().Context(), q)
	switch {
	case errors.Is(err, repository.ErrBadSort):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported sort column"})
	case err != nil:
		c.Logger().Errorf("transactions report: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no transactions match the given filters"})
	}
	return c.JSON(http.StatusOK, rows)
}

// MuseumItemsReport runs the artwork inventory report.
func (h *ReportHandler) MuseumItemsReport(c echo.Context) error {
	var q repository.MuseumItemQuery

	if v := c.QueryParam("yearCreated"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "yearCreated must be numeric"})
		}
		q.YearCreated = n
	}
	q.Medium = c.QueryParam("medium")
	q.ArtistName = c.QueryParam("artistName")
	if v := c.QueryParam("galleryID"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "galleryID must be numeric"})
		}
		q.GalleryID = id
	}
	if v := c.QueryParam("minValue"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "minValue must be a non-negative number"})
		}
		q.MinValue = f
	}
	if v := c.QueryParam("maxValue"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "maxValue must be a non-negative number"})
		}
		q.MaxValue = f
	}
	q.SortBy = c.QueryParam("sortBy")
	q.Order = c.QueryParam("order")

	rows, err := h.Reports.MuseumItems(c.Request().Context(), q)
	switch {
	case errors.Is(err, repository.ErrBadSort):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported sort column"})
	case err != nil:
		c.Logger().Errorf("museum items report: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	if rows == nil {
		rows = []repository.MuseumItemRow{}
	}
	return c.JSON(http.StatusOK, rows)
}
