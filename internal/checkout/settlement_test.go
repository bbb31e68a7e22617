package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSubtotalMultipliesQuantity(t *testing.T) {
	cart := Cart{Lines: []Line{
		{Name: "Poster", Price: 12.50, Quantity: 2, Category: "Merch"},
		{Name: "Mug", Price: 8, Quantity: 1, Category: "Merch"},
		{Name: "Broken", Price: 99, Quantity: 0, Category: "Merch"},
	}}
	assert.Equal(t, 33.0, cart.Subtotal())
}

func TestSettleNoDiscounts(t *testing.T) {
	cart := Cart{Lines: []Line{{Name: "Ticket", Price: 20, Quantity: 2, Category: "Ticket"}}}
	s := Settle(cart, false, 0)
	assert.Equal(t, 40.0, s.Subtotal)
	assert.Zero(t, s.MemberDiscount)
	assert.Zero(t, s.CodeDiscount)
	assert.Equal(t, 40.0, s.Total)
}

func TestSettleMemberDiscount(t *testing.T) {
	cart := Cart{Lines: []Line{{Name: "Ticket", Price: 100, Quantity: 1, Category: "Ticket"}}}
	s := Settle(cart, true, 0)
	assert.Equal(t, 7.0, s.MemberDiscount)
	assert.Equal(t, 93.0, s.Total)
}

// The code percentage applies to the member-reduced intermediate total, not
// to the raw subtotal.
func TestSettleSequentialReductions(t *testing.T) {
	cart := Cart{Lines: []Line{{Name: "Ticket", Price: 100, Quantity: 1, Category: "Ticket"}}}
	s := Settle(cart, true, 10)
	assert.Equal(t, 7.0, s.MemberDiscount)
	assert.Equal(t, 9.3, s.CodeDiscount) // 10% of 93, not of 100
	assert.Equal(t, 83.7, s.Total)
}

func TestSettleCodeOnly(t *testing.T) {
	cart := Cart{Lines: []Line{{Name: "Mug", Price: 15, Quantity: 2, Category: "Merch"}}}
	s := Settle(cart, false, 25)
	assert.Equal(t, 7.5, s.CodeDiscount)
	assert.Equal(t, 22.5, s.Total)
}

func TestMembershipMonthsCappedAtTwelve(t *testing.T) {
	cart := Cart{Lines: []Line{
		{Name: "Membership", Price: 10, Quantity: 9, Category: MembershipCategory},
		{Name: "Membership", Price: 10, Quantity: 9, Category: MembershipCategory},
	}}
	assert.Equal(t, 12, cart.MembershipMonths())
}

func TestMembershipMonthsIgnoresOtherCategories(t *testing.T) {
	cart := Cart{Lines: []Line{{Name: "Poster", Price: 10, Quantity: 3, Category: "Merch"}}}
	assert.Zero(t, cart.MembershipMonths())
}

// An unexpired window extends from its current end date, not from today.
func TestExtendMembershipFromFutureEndDate(t *testing.T) {
	end := date(2024, time.June, 1)
	w := ExtendMembership(&end, 3, date(2024, time.April, 15))
	require.Equal(t, date(2024, time.June, 1), w.Start)
	assert.Equal(t, date(2024, time.September, 1), w.End)
}

func TestExtendMembershipExpiredStartsToday(t *testing.T) {
	end := date(2023, time.January, 1)
	today := date(2024, time.April, 15)
	w := ExtendMembership(&end, 6, today)
	require.Equal(t, today, w.Start)
	assert.Equal(t, date(2024, time.October, 15), w.End)
}

func TestExtendMembershipFirstPurchase(t *testing.T) {
	today := date(2024, time.April, 15)
	w := ExtendMembership(nil, 1, today)
	require.Equal(t, today, w.Start)
	assert.Equal(t, date(2024, time.May, 15), w.End)
}

// A window ending today still counts as active and extends from today.
func TestExtendMembershipEndingToday(t *testing.T) {
	today := date(2024, time.April, 15)
	end := today
	w := ExtendMembership(&end, 2, today)
	require.Equal(t, today, w.Start)
	assert.Equal(t, date(2024, time.June, 15), w.End)
}
