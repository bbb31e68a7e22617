package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harism06/museum-db/internal/repository"
)

// newTestContext builds an echo context with a JSON body and, when
// visitorID is non-zero, the identity the JWT middleware would have set.
func newTestContext(t *testing.T, method, target, body string, visitorID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if visitorID != 0 {
		c.Set("visitor_id", visitorID)
	}
	return c, rec
}

// Validation failures must be decided before any repository call, so these
// tests run against repositories with no live database behind them.
func newCheckoutHandlerForValidation() *CheckoutHandler {
	return NewCheckoutHandler(
		repository.NewOrderRepo(nil),
		repository.NewDiscountRepo(nil),
		repository.NewVisitorRepo(nil),
	)
}

func TestCheckoutRejectsMissingIdentity(t *testing.T) {
	h := newCheckoutHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/api/transactions", `{"items":[{"name":"Mug","price":10,"quantity":1,"category":"Gift"}]}`, 0)

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	h := newCheckoutHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/api/transactions", `{"items":[]}`, 42)

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutRejectsInvalidLine(t *testing.T) {
	cases := map[string]string{
		"zero quantity":  `{"items":[{"name":"Mug","price":10,"quantity":0,"category":"Gift"}]}`,
		"negative price": `{"items":[{"name":"Mug","price":-1,"quantity":1,"category":"Gift"}]}`,
		"missing name":   `{"items":[{"price":10,"quantity":1,"category":"Gift"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			h := newCheckoutHandlerForValidation()
			c, rec := newTestContext(t, http.MethodPost, "/api/transactions", body, 42)

			require.NoError(t, h.Checkout(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// A code bound to another visitor must be rejected before the database is
// ever asked about it.
func TestValidateDiscountRejectsForeignVisitor(t *testing.T) {
	h := newCheckoutHandlerForValidation()
	c, rec := newTestContext(t, http.MethodGet, "/", "", 42)
	c.SetPath("/api/validate-discount-code/:code/:visitorID")
	c.SetParamNames("code", "visitorID")
	c.SetParamValues("SPRING10", "7")

	require.NoError(t, h.ValidateDiscount(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPurchaseTicketsRejectsBadDate(t *testing.T) {
	h := newCheckoutHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/api/tickets",
		`{"tickets":[{"quantity":2,"price":15,"date":"31-12-2025","type":"General"}]}`, 42)

	require.NoError(t, h.PurchaseTickets(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPurchaseTicketsRejectsEmptyBatch(t *testing.T) {
	h := newCheckoutHandlerForValidation()
	c, rec := newTestContext(t, http.MethodPost, "/api/tickets", `{"tickets":[]}`, 42)

	require.NoError(t, h.PurchaseTickets(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
