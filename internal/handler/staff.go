package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harism06/museum-db/internal/middleware"
	"github.com/harism06/museum-db/internal/repository"
)

// StaffHandler serves the back-office endpoints: membership listings, the
// employee roster and staff edits. Minimum tiers are enforced by the role
// gate's policy table, not here.
type StaffHandler struct {
	Staff *repository.StaffRepo
}

func NewStaffHandler(s *repository.StaffRepo) *StaffHandler {
	if s == nil {
		panic("nil repository passed to NewStaffHandler")
	}
	return &StaffHandler{Staff: s}
}

// ListMemberships returns every visitor with their membership window.
func (h *StaffHandler) ListMemberships(c echo.Context) error {
	rows, err := h.Staff.ListMemberships(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list memberships: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// ListEmployees returns every account with a staff tier.
func (h *StaffHandler) ListEmployees(c echo.Context) error {
	rows, err := h.Staff.ListEmployees(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list employees: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, rows)
}

type updateVisitorReq struct {
	PhoneNumber         string `json:"phoneNumber"`
	BirthDate           string `json:"birthdate"`
	MembershipStartDate string `json:"membership_start_date"`
	MembershipEndDate   string `json:"membership_end_date"`
}

// UpdateVisitor lets staff correct a visitor's contact details and
// membership window.
func (h *StaffHandler) UpdateVisitor(c echo.Context) error {
	visitorID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid visitor id"})
	}
	var req updateVisitorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PhoneNumber == "" || req.BirthDate == "" || req.MembershipStartDate == "" || req.MembershipEndDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthdate must be YYYY-MM-DD"})
	}
	start, err := parseDate(req.MembershipStartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "membership_start_date must be YYYY-MM-DD"})
	}
	end, err := parseDate(req.MembershipEndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "membership_end_date must be YYYY-MM-DD"})
	}

	err = h.Staff.UpdateVisitor(c.Request().Context(), visitorID, req.PhoneNumber, birth, start, end)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "visitor not found"})
	case err != nil:
		c.Logger().Errorf("update visitor: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "visitor information updated successfully"})
}

type updateEmployeeReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Age         int    `json:"age"`
	BirthDate   string `json:"birthdate"`
	Role        int    `json:"role"`
}

// UpdateEmployee rewrites an employee's details and role tier.
func (h *StaffHandler) UpdateEmployee(c echo.Context) error {
	visitorID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid visitor id"})
	}
	var req updateEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.PhoneNumber == "" || req.BirthDate == "" || req.Role == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthdate must be YYYY-MM-DD"})
	}

	err = h.Staff.UpdateEmployee(c.Request().Context(), visitorID, req.Name, req.Email, req.PhoneNumber, req.Age, birth, req.Role)
	switch {
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use by another user"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "visitor not found or no changes made"})
	case err != nil:
		c.Logger().Errorf("update employee: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "employee information updated successfully"})
}

// RemoveEmployee deletes an account's credentials and visitor rows in one
// transaction. Callers cannot remove themselves; that guard is
// server-side, not left to the UI.
func (h *StaffHandler) RemoveEmployee(c echo.Context) error {
	callerID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	visitorID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid visitor id"})
	}
	if visitorID == callerID {
		return c.JSON(http.StatusConflict, echo.Map{"error": "cannot remove your own account"})
	}

	err = h.Staff.DeleteEmployee(c.Request().Context(), visitorID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
	case err != nil:
		c.Logger().Errorf("remove employee: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "employee removed successfully"})
}
