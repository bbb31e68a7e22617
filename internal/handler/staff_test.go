package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harism06/museum-db/internal/repository"
)

// Removing your own account is refused before the delete statement runs,
// so a repository with no database behind it is enough here.
func TestRemoveEmployeeRejectsSelfRemoval(t *testing.T) {
	h := NewStaffHandler(repository.NewStaffRepo(nil))
	c, rec := newTestContext(t, http.MethodDelete, "/", "", 42)
	c.SetPath("/api/remove-employee/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.RemoveEmployee(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRemoveEmployeeRejectsBadID(t *testing.T) {
	h := NewStaffHandler(repository.NewStaffRepo(nil))
	c, rec := newTestContext(t, http.MethodDelete, "/", "", 42)
	c.SetPath("/api/remove-employee/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	require.NoError(t, h.RemoveEmployee(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateVisitorRejectsMalformedDates(t *testing.T) {
	h := NewStaffHandler(repository.NewStaffRepo(nil))
	c, rec := newTestContext(t, http.MethodPut, "/",
		`{"phoneNumber":"5550001","birthdate":"1995-01-02","membership_start_date":"soon","membership_end_date":"2026-01-01"}`, 42)
	c.SetPath("/api/update-visitor/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.UpdateVisitor(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
