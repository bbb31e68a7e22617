package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRoles implements RoleSource with a fixed answer and records whether
// it was consulted.
type stubRoles struct {
	role   int
	err    error
	called bool
}

func (s *stubRoles) RoleByVisitor(ctx context.Context, visitorID uint64) (int, error) {
	s.called = true
	return s.role, s.err
}

func runGate(t *testing.T, policy Policy, roles RoleSource, method, path string, visitorID any) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	if visitorID != nil {
		c.Set("visitor_id", visitorID)
	}

	reached := false
	h := RoleGate(policy, roles)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, reached
}

func TestRoleGateBlocksInsufficientTier(t *testing.T) {
	roles := &stubRoles{role: 1}
	policy := Policy{"DELETE /api/remove-employee/:id": 2}

	rec, reached := runGate(t, policy, roles, http.MethodDelete, "/api/remove-employee/:id", float64(42))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached, "handler must not run for a rejected caller")
}

func TestRoleGateAllowsSufficientTier(t *testing.T) {
	roles := &stubRoles{role: 3}
	policy := Policy{"POST /api/artists": 3}

	rec, reached := runGate(t, policy, roles, http.MethodPost, "/api/artists", float64(7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

// Routes absent from the policy table only require authentication; the
// database is not consulted at all.
func TestRoleGateSkipsLookupForUngatedRoute(t *testing.T) {
	roles := &stubRoles{role: 0}
	policy := Policy{"GET /api/memberships": 1}

	rec, reached := runGate(t, policy, roles, http.MethodGet, "/auth/profile", float64(7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.False(t, roles.called)
}

func TestRoleGateRejectsMissingIdentity(t *testing.T) {
	roles := &stubRoles{role: 3}
	policy := Policy{"GET /reports/transactions": 3}

	rec, reached := runGate(t, policy, roles, http.MethodGet, "/reports/transactions", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
