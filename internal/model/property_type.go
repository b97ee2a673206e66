package model

import (
	"fmt"
	"strings"
)

// PropertyType identifies the category of a property.  The category fixes
// the rate multiplier applied on top of the base price; it never changes
// over a property's lifetime, so it is a tagged value with a lookup table
// rather than a type hierarchy.
type PropertyType int

const (
	EcoApartment     PropertyType = iota + 1 // ×1.00
	SustainableHouse                         // ×1.20
	GreenResort                              // ×1.35
	EcoGlamping                              // ×1.50
)

// propertyTypeInfo pairs the display name with the fixed rate multiplier
// for one property category.
type propertyTypeInfo struct {
	name       string
	multiplier float64
}

var propertyTypes = map[PropertyType]propertyTypeInfo{
	EcoApartment:     {"Eco-Apartment", 1.00},
	SustainableHouse: {"Sustainable House", 1.20},
	GreenResort:      {"Green Resort", 1.35},
	EcoGlamping:      {"Eco-Glamping", 1.50},
}

// Valid reports whether t names a known property category.
func (t PropertyType) Valid() bool {
	_, ok := propertyTypes[t]
	return ok
}

// Multiplier returns the fixed rate multiplier for the category, or 0 for
// an unknown value.
func (t PropertyType) Multiplier() float64 { return propertyTypes[t].multiplier }

// String returns the human-readable category name.
func (t PropertyType) String() string {
	if info, ok := propertyTypes[t]; ok {
		return info.name
	}
	return "Unknown"
}

// ParsePropertyType converts a wire-level type selector into a
// PropertyType.  Both the display name (case-insensitive, with or without
// hyphens or spaces) and the numeric selector 1..4 are accepted.
func ParsePropertyType(s string) (PropertyType, error) {
	switch normalizeTypeName(s) {
	case "1", "ecoapartment":
		return EcoApartment, nil
	case "2", "sustainablehouse":
		return SustainableHouse, nil
	case "3", "greenresort":
		return GreenResort, nil
	case "4", "ecoglamping":
		return EcoGlamping, nil
	}
	return 0, fmt.Errorf("unknown property type %q", s)
}

func normalizeTypeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}
