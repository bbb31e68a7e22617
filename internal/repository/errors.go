// Package repository implements the data access layer: one repository per
// table group, hand-written SQL, and sentinel errors that let handlers map
// failures onto HTTP status codes without inspecting driver internals.
package repository

import "errors"

// ErrNotFound is returned when a lookup, update or delete matches no row.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an insert or update would duplicate an
// email address. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrDiscountInvalid is returned when a discount code does not belong to
// the visitor, has no uses remaining, or is past its expiration date.
// Handlers translate this into an HTTP 404 response.
var ErrDiscountInvalid = errors.New("discount code invalid or expired")
