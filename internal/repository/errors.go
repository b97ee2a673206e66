// Package repository manages the in-memory collection of properties.
// This file defines sentinel errors reused across the repository and
// service layers.  Handlers use these values to pick HTTP status codes:
// ErrPropertyNotFound maps to 404, ErrNameTaken and the guarded-state
// errors from the model package map to 409, everything else to 400.
package repository

import "errors"

// ErrPropertyNotFound is returned when no property with the requested
// name exists in the directory.
var ErrPropertyNotFound = errors.New("property not found")

// ErrNameTaken is returned when creating or renaming a property would
// duplicate an existing name.  Names are compared case-insensitively.
var ErrNameTaken = errors.New("property name already in use")

// ErrInvalidName is returned when a property name is empty or blank.
var ErrInvalidName = errors.New("invalid property name")

// ErrInvalidType is returned when a property type selector does not name
// a known category.
var ErrInvalidType = errors.New("invalid property type")
