package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/harism06/museum-db/internal/config"
	"github.com/harism06/museum-db/internal/middleware"
	"github.com/harism06/museum-db/internal/model"
	"github.com/harism06/museum-db/internal/repository"
	"github.com/harism06/museum-db/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and the
// visitor's own profile endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Visitors *repository.VisitorRepo
}

func NewAuthHandler(cfg config.Config, v *repository.VisitorRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Visitors: v}
}

// ----- DTOs -----

type registerReq struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	BirthDate   string `json:"birthdate"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type registerStaffReq struct {
	registerReq
	Role string `json:"role"` // Employee | Supervisor | Manager
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResp struct {
	VisitorID           uint64     `json:"visitorID"`
	Name                string     `json:"name"`
	Age                 int        `json:"age"`
	BirthDate           string     `json:"birthdate"`
	Email               string     `json:"email"`
	PhoneNumber         string     `json:"phoneNumber"`
	CreatedAt           time.Time  `json:"createdAt"`
	LastLoggedIn        *time.Time `json:"lastLoggedIn,omitempty"`
	MembershipStartDate *string    `json:"membershipStartDate"`
	MembershipEndDate   *string    `json:"membershipEndDate"`
	Role                int        `json:"role"`
}

// Register creates a visitor account (tier 0). The visitor row and its
// credentials row are written in one transaction by the repository.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Age == 0 || req.BirthDate == "" || req.PhoneNumber == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthdate must be YYYY-MM-DD"})
	}

	_, err = h.Visitors.Register(c.Request().Context(),
		req.Name, req.Age, birth, req.Email, req.PhoneNumber, req.Password,
		model.RoleVisitor, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		c.Logger().Errorf("register: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "registration successful"})
}

// RegisterStaff creates a staff account with an explicit role tier. The
// route sits behind the supervisor gate.
func (h *AuthHandler) RegisterStaff(c echo.Context) error {
	var req registerStaffReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Age == 0 || req.BirthDate == "" || req.PhoneNumber == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	var role int
	switch req.Role {
	case "Employee":
		role = model.RoleEmployee
	case "Supervisor":
		role = model.RoleSupervisor
	case "Manager":
		role = model.RoleManager
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role specified"})
	}
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthdate must be YYYY-MM-DD"})
	}

	_, err = h.Visitors.Register(c.Request().Context(),
		req.Name, req.Age, birth, req.Email, req.PhoneNumber, req.Password,
		role, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		c.Logger().Errorf("register staff: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "staff registration successful"})
}

// Login verifies credentials, stamps lastLoggedIn and returns a one-hour
// bearer token carrying the visitor ID and email.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx := c.Request().Context()
	cred, err := h.Visitors.CredentialByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	if !utils.VerifyPassword(cred.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
	}

	if err := h.Visitors.TouchLastLogin(ctx, cred.VisitorID); err != nil {
		c.Logger().Errorf("login: touch lastLoggedIn: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, cred.VisitorID, cred.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":   tok.Token,
		"expires": tok.Exp,
		"message": "login successful",
	})
}

// Logout acknowledges the client discarding its token. Sessions are
// stateless bearer tokens, so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "logout successful"})
}

// GetProfile returns the caller's visitor row joined with the role tier.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	p, err := h.Visitors.GetProfile(c.Request().Context(), visitorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		c.Logger().Errorf("profile: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, profileResp{
		VisitorID:           p.VisitorID,
		Name:                p.Name,
		Age:                 p.Age,
		BirthDate:           p.BirthDate.Format(dateLayout),
		Email:               p.Email,
		PhoneNumber:         p.PhoneNum,
		CreatedAt:           p.CreatedAt,
		LastLoggedIn:        p.LastLoggedIn,
		MembershipStartDate: fmtDatePtr(p.MembershipStartDate),
		MembershipEndDate:   fmtDatePtr(p.MembershipEndDate),
		Role:                p.Role,
	})
}

type updateProfileReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Age         int    `json:"age"`
	BirthDate   string `json:"birthdate"`
}

// UpdateProfile rewrites the caller's own details. The identity comes from
// the token, never from the body, so one visitor cannot edit another.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.PhoneNumber == "" || req.Age == 0 || req.BirthDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthdate must be YYYY-MM-DD"})
	}

	err = h.Visitors.UpdateProfile(c.Request().Context(), visitorID, req.Name, req.Email, req.PhoneNumber, req.Age, birth)
	switch {
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "visitor not found or no changes made"})
	case err != nil:
		c.Logger().Errorf("update profile: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated successfully"})
}

type membershipReq struct {
	StartDate string `json:"membership_start_date"`
	EndDate   string `json:"membership_end_date"`
}

// UpdateMembership persists a membership window on the caller's row.
// Checkout normally maintains the window itself; this endpoint remains for
// clients that settle the dates separately.
func (h *AuthHandler) UpdateMembership(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req membershipReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StartDate == "" || req.EndDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "membership dates are required"})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "membership_start_date must be YYYY-MM-DD"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "membership_end_date must be YYYY-MM-DD"})
	}

	err = h.Visitors.UpdateMembership(c.Request().Context(), visitorID, start, end)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "visitor not found or no changes made"})
	case err != nil:
		c.Logger().Errorf("update membership: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "membership updated successfully"})
}

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
