package middleware

// identity.go provides helpers for reading the authenticated caller out of
// the Echo context after JWTAuth has run.

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// VisitorID extracts the authenticated visitor's ID from context and
// converts it to uint64. JWT numeric claims decode as float64, so several
// representations are accepted.
func VisitorID(c echo.Context) (uint64, error) {
	switch t := c.Get("visitor_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid visitor_id in context")
}

// rateKeyUserID renders the caller identity for rate-limit keys, falling
// back to "anon" for unauthenticated requests.
func rateKeyUserID(c echo.Context) string {
	if id, err := VisitorID(c); err == nil {
		return strconv.FormatUint(id, 10)
	}
	return "anon"
}
