package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harism06/museum-db/internal/utils"
)

const testSecret = "unit-test-secret"

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c, reached
}

func TestJWTAuthMissingTokenIs401(t *testing.T) {
	rec, _, reached := runAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthGarbageTokenIs403(t *testing.T) {
	rec, _, reached := runAuth(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthWrongSecretIs403(t *testing.T) {
	tok, err := utils.NewAccessToken("some-other-secret", 42, "a@b.c", 60)
	require.NoError(t, err)
	rec, _, reached := runAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthExpiredTokenIs403(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "a@b.c", -1)
	require.NoError(t, err)
	rec, _, reached := runAuth(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

// A token issued for a visitor decodes back to the same visitor ID.
func TestJWTAuthRoundTripsVisitorID(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "visitor@example.com", 60)
	require.NoError(t, err)

	rec, c, reached := runAuth(t, "Bearer "+tok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)

	id, err := VisitorID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Equal(t, "visitor@example.com", c.Get("email"))
}
