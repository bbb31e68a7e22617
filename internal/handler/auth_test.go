package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harism06/museum-db/internal/config"
	"github.com/harism06/museum-db/internal/repository"
)

func newAuthHandlerForValidation() *AuthHandler {
	return NewAuthHandler(config.Config{JWTSecret: "test-secret", AccessTTLMin: 60, BcryptCost: 4},
		repository.NewVisitorRepo(nil))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	h := newAuthHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Ada","email":"ada@example.com"}`, 0)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRejectsMalformedBirthdate(t *testing.T) {
	h := newAuthHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"name":"Ada","age":30,"birthdate":"not-a-date","phoneNumber":"5550001","email":"ada@example.com","password":"hunter22"}`, 0)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterStaffRejectsUnknownRole(t *testing.T) {
	h := newAuthHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/auth/register-staff",
		`{"name":"Ada","age":30,"birthdate":"1995-01-02","phoneNumber":"5550001","email":"ada@example.com","password":"hunter22","role":"Janitor"}`, 0)

	require.NoError(t, h.RegisterStaff(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRejectsMissingPassword(t *testing.T) {
	h := newAuthHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"ada@example.com"}`, 0)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfileRequiresIdentity(t *testing.T) {
	h := newAuthHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPut, "/auth/profile",
		`{"name":"Ada","email":"ada@example.com","phoneNumber":"5550001","age":30,"birthdate":"1995-01-02"}`, 0)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
