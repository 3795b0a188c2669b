// Package repository implements the data access layer: one type per
// table group, issuing parameterized SQL through database/sql.  This
// file defines sentinel errors shared across repositories so handlers
// can map failures to HTTP statuses without inspecting driver errors.
package repository

import "errors"

// ErrUsernameExists is returned when registration is attempted with a
// username that already has a login row.  Handlers translate this to
// HTTP 400.
var ErrUsernameExists = errors.New("username already exists")

// ErrEventNotFound is returned when an event lookup by ID matches no
// row.  Handlers translate this to HTTP 404.
var ErrEventNotFound = errors.New("event not found")

// ErrPerformanceNotFound is returned when a performance lookup matches
// no row, or when an event has no performances at all.
var ErrPerformanceNotFound = errors.New("performance not found")

// ErrBookingNotFound is returned when a booking lookup by ID matches
// no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrUserNotFound is returned when a user lookup by ID matches no row.
var ErrUserNotFound = errors.New("user not found")
