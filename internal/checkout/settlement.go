// Package checkout implements order settlement: cart totals, the member and
// discount-code reductions, and the membership window arithmetic. Everything
// here is pure computation; persistence lives in the repository layer.
package checkout

import (
	"math"
	"time"
)

// MembershipCategory is the cart line category that represents a membership
// purchase. The line quantity is the number of months bought.
const MembershipCategory = "Membership"

// MemberDiscountRate is the flat reduction applied to the cart total when
// the buyer holds an active membership.
const MemberDiscountRate = 0.07

// MaxMembershipMonths caps how many months a single checkout may add.
const MaxMembershipMonths = 12

// Line is one cart entry as submitted by the client. Prices are unit
// prices; the server multiplies by quantity itself.
type Line struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}

// Cart is the explicit aggregate passed by value into settlement. There is
// no server-side cart state between requests.
type Cart struct {
	Lines []Line
}

// Subtotal sums price*quantity over all lines.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.Lines {
		if l.Quantity <= 0 {
			continue
		}
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// MembershipMonths returns the number of membership months in the cart,
// capped at MaxMembershipMonths.
func (c Cart) MembershipMonths() int {
	months := 0
	for _, l := range c.Lines {
		if l.Category == MembershipCategory && l.Quantity > 0 {
			months += l.Quantity
		}
	}
	if months > MaxMembershipMonths {
		months = MaxMembershipMonths
	}
	return months
}

// Settlement is the priced breakdown of a checkout.
type Settlement struct {
	Subtotal       float64 // cart total before any reduction
	MemberDiscount float64 // amount removed by the 7% member rate
	CodeDiscount   float64 // amount removed by the discount code
	Total          float64 // final amount charged, rounded to cents
}

// Settle prices a cart. The member reduction and the code reduction are
// sequential multiplicative steps: the code percentage applies to the
// already-reduced intermediate total, never to the raw subtotal.
// codePercent is the percentage carried by the discount code (0 when no
// code was supplied).
func Settle(cart Cart, activeMember bool, codePercent float64) Settlement {
	s := Settlement{Subtotal: round2(cart.Subtotal())}
	running := s.Subtotal
	if activeMember {
		s.MemberDiscount = round2(running * MemberDiscountRate)
		running -= s.MemberDiscount
	}
	if codePercent > 0 {
		s.CodeDiscount = round2(running * codePercent / 100)
		running -= s.CodeDiscount
	}
	s.Total = round2(running)
	return s
}

// Window is a membership [start, end] date pair.
type Window struct {
	Start time.Time
	End   time.Time
}

// ExtendMembership computes the new membership window after buying the
// given number of months. When the current end date is still in the future
// (or is today) the new window extends from it; otherwise the window starts
// today. Months are calendar months.
func ExtendMembership(currentEnd *time.Time, months int, today time.Time) Window {
	day := dateOnly(today)
	start := day
	if currentEnd != nil && !dateOnly(*currentEnd).Before(day) {
		start = dateOnly(*currentEnd)
	}
	return Window{Start: start, End: start.AddDate(0, months, 0)}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
