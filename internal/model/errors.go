// Package model contains the booking domain: calendar slots, properties,
// reservations and their invariants.  This file defines the sentinel
// errors returned by domain operations.  Higher layers such as handlers
// use these values to distinguish failure scenarios; for example
// ErrDateConflict maps to an HTTP 409 response while ErrInvalidRange maps
// to a 400.  Every rejected operation leaves its property in the prior
// valid state, so a caller can always retry with corrected input.
package model

import "errors"

// ErrInvalidRange is returned when a day range is outside the fixed
// 30-day horizon, empty, or touches the forbidden boundary days (a stay
// can neither check out on day 1 nor check in on day 30).
var ErrInvalidRange = errors.New("invalid day range")

// ErrDateConflict is returned when a requested stay overlaps an existing
// reservation's half-open [checkIn, checkOut) interval.  Back-to-back
// stays are not a conflict.
var ErrDateConflict = errors.New("dates conflict with an existing reservation")

// ErrInvalidPrice is returned when a base price is below the 100.0
// minimum.
var ErrInvalidPrice = errors.New("base price below minimum")

// ErrInvalidModifier is returned when an environmental impact modifier
// falls outside [0.80, 1.20] in an operation that validates rather than
// clamps.
var ErrInvalidModifier = errors.New("modifier outside allowed range")

// ErrHasReservations is returned when a guarded operation (base price
// update, property removal) is attempted while the property still has
// active reservations.
var ErrHasReservations = errors.New("property has active reservations")

// ErrReservationNotFound is returned when a reservation ID does not
// belong to the property.
var ErrReservationNotFound = errors.New("reservation not found")
