// Package handler implements the HTTP layer. Handlers assume JWT
// authentication and the role gate have already run; they bind the request,
// call the repository layer and translate sentinel errors onto status codes.
package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for all date-only fields.
const dateLayout = "2006-01-02"

// parseDate parses a "2006-01-02" date string in UTC.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// pathID parses a numeric path parameter; zero is treated as invalid.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id != 0
}
