package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/harism06/museum-db/internal/checkout"
	"github.com/harism06/museum-db/internal/middleware"
	"github.com/harism06/museum-db/internal/model"
	"github.com/harism06/museum-db/internal/queue"
	"github.com/harism06/museum-db/internal/repository"
	queuepublisher "github.com/harism06/museum-db/internal/service"
)

// CheckoutHandler settles store carts and records ticket purchases. A
// checkout is one database transaction: the discount decrement, the
// transaction header, its line items and any membership extension commit
// or roll back together.
type CheckoutHandler struct {
	Orders    *repository.OrderRepo
	Discounts *repository.DiscountRepo
	Visitors  *repository.VisitorRepo
}

func NewCheckoutHandler(orders *repository.OrderRepo, discounts *repository.DiscountRepo, visitors *repository.VisitorRepo) *CheckoutHandler {
	if orders == nil || discounts == nil || visitors == nil {
		panic("nil repository passed to NewCheckoutHandler")
	}
	return &CheckoutHandler{Orders: orders, Discounts: discounts, Visitors: visitors}
}

type checkoutReq struct {
	Items []checkout.Line `json:"items"`
}

type checkoutResp struct {
	Message        string  `json:"message"`
	TransactionID  uint64  `json:"transactionID"`
	Subtotal       float64 `json:"subtotal"`
	MemberDiscount float64 `json:"memberDiscount"`
	CodeDiscount   float64 `json:"codeDiscount"`
	Total          float64 `json:"total"`
}

// Checkout settles the submitted cart for the caller. The server recomputes
// every amount from the line prices; client-sent totals are never trusted.
// The route is mounted twice, with and without the :discountCode parameter.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}
	for _, l := range req.Items {
		if l.Name == "" || l.Price < 0 || l.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cart item"})
		}
	}
	cart := checkout.Cart{Lines: req.Items}
	code := c.Param("discountCode")

	ctx := c.Request().Context()
	today := time.Now().UTC()

	_, currentEnd, err := h.Visitors.MembershipWindow(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "visitor not found"})
		}
		c.Logger().Errorf("checkout: membership window: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	activeMember := currentEnd != nil && !currentEnd.Before(day)

	tx, err := h.Orders.DB().BeginTx(ctx, nil)
	if err != nil {
		c.Logger().Errorf("checkout: begin tx: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var codePercent float64
	if code != "" {
		d, err := h.Discounts.RedeemTx(ctx, tx, code, visitorID)
		if err != nil {
			if errors.Is(err, repository.ErrDiscountInvalid) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "invalid or expired discount code"})
			}
			c.Logger().Errorf("checkout: redeem code: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
		}
		codePercent = d.Percent
	}

	settled := checkout.Settle(cart, activeMember, codePercent)

	transactionID, err := h.Orders.InsertTransactionTx(ctx, tx, visitorID, settled.Total)
	if err != nil {
		c.Logger().Errorf("checkout: insert transaction: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	if err := h.Orders.InsertItemsTx(ctx, tx, transactionID, cart.Lines); err != nil {
		c.Logger().Errorf("checkout: insert items: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	var membershipEnd string
	months := cart.MembershipMonths()
	if months > 0 {
		window := checkout.ExtendMembership(currentEnd, months, today)
		if err := h.Visitors.UpdateMembershipTx(ctx, tx, visitorID, window.Start, window.End); err != nil {
			c.Logger().Errorf("checkout: extend membership: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
		}
		membershipEnd = window.End.Format(dateLayout)
	}

	if err := tx.Commit(); err != nil {
		c.Logger().Errorf("checkout: commit: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	committed = true

	event := queue.OrderRecordedEvent{
		TransactionID:    transactionID,
		VisitorID:        visitorID,
		Total:            settled.Total,
		ItemCount:        len(cart.Lines),
		MembershipMonths: months,
		MembershipEnd:    membershipEnd,
		RecordedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queuepublisher.PublishOrderRecorded(pubCtx, event)
	}()

	return c.JSON(http.StatusCreated, checkoutResp{
		Message:        "transaction recorded successfully",
		TransactionID:  transactionID,
		Subtotal:       settled.Subtotal,
		MemberDiscount: settled.MemberDiscount,
		CodeDiscount:   settled.CodeDiscount,
		Total:          settled.Total,
	})
}

// ListTransactions returns the caller's transaction history, newest first.
func (h *CheckoutHandler) ListTransactions(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	rows, err := h.Orders.ListByVisitor(c.Request().Context(), visitorID)
	if err != nil {
		c.Logger().Errorf("list transactions: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	return c.JSON(http.StatusOK, rows)
}

// ValidateDiscount checks a code without consuming a use. Codes are bound
// to a visitor, so the path visitor must match the caller.
func (h *CheckoutHandler) ValidateDiscount(c echo.Context) error {
	callerID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	code := c.Param("code")
	visitorID, ok := pathID(c, "visitorID")
	if code == "" || !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code and visitor id are required"})
	}
	if visitorID != callerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "discount code does not belong to this account"})
	}

	d, err := h.Discounts.Validate(c.Request().Context(), code, visitorID)
	switch {
	case errors.Is(err, repository.ErrDiscountInvalid):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "invalid or expired discount code"})
	case err != nil:
		c.Logger().Errorf("validate discount: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"valid":      true,
		"percent":    d.Percent,
		"numOfUses":  d.NumOfUses,
		"expiration": d.Expiration.Format(dateLayout),
	})
}

type ticketsReq struct {
	Tickets []repository.TicketOrder `json:"tickets"`
}

// PurchaseTickets records one or more ticket batches for the caller.
func (h *CheckoutHandler) PurchaseTickets(c echo.Context) error {
	visitorID, err := middleware.VisitorID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req ticketsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Tickets) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no tickets submitted"})
	}
	for _, t := range req.Tickets {
		if t.Quantity <= 0 || t.Price < 0 || t.Type == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket entry"})
		}
		if _, err := parseDate(t.Date); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket date must be YYYY-MM-DD"})
		}
	}

	n, err := h.Orders.InsertTickets(c.Request().Context(), visitorID, req.Tickets)
	if err != nil {
		c.Logger().Errorf("purchase tickets: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "tickets purchased successfully", "inserted": n})
}
