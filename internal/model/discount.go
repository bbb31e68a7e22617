package model

import "time"

// DiscountCode models a row in the `discountcodes` table. Codes are issued
// per visitor, carry a percentage reduction and a remaining-uses counter,
// and expire on a fixed date. The counter is decremented on every
// successful redemption and never replenished.
type DiscountCode struct {
	DiscountID string    // discountcodes.discountID (the code itself)
	VisitorID  uint64    // discountcodes.visitorID
	Percent    float64   // discountcodes.percent
	NumOfUses  int       // discountcodes.numOfUses
	Expiration time.Time // discountcodes.expiration
}
