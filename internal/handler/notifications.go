package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harism06/museum-db/internal/middleware"
	"github.com/harism06/museum-db/internal/repository"
)

// NotificationHandler serves a visitor's own notification feed.
type NotificationHandler struct {
	Notifications *repository.NotificationRepo
}

func NewNotificationHandler(n *repository.NotificationRepo) *NotificationHandler {
	if n == nil {
		panic("nil repository passed to NewNotificationHandler")
	}
	return &NotificationHandler{Notifications: n}
}

// ListUnchecked returns the caller's unread notifications, newest first.
func (h *NotificationHandler) ListUnchecked(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	rows, err := h.Notifications.ListUnchecked(c.Request().Context(), visitorID)
	if err != nil {
		c.Logger().Errorf("list notifications: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// MarkChecked flags one of the caller's notifications as read. The owner
// predicate lives in the UPDATE, so a foreign notification ID is a 404.
func (h *NotificationHandler) MarkChecked(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	notificationID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid notification id"})
	}

	err = h.Notifications.MarkChecked(c.Request().Context(), notificationID, visitorID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	case err != nil:
		c.Logger().Errorf("mark notification: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "notification marked as checked"})
}
