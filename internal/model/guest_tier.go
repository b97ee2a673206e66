package model

import (
	"fmt"
	"strings"
)

// GuestTier is a guest's loyalty classification.  Each tier grants a
// fractional discount on nightly rates.
type GuestTier int

const (
	TierRegular  GuestTier = iota // no discount
	TierSilver                    // 5% discount
	TierGold                      // 10% discount
	TierPlatinum                  // 15% discount
)

// tierDiscounts maps each tier to its discount fraction.
var tierDiscounts = map[GuestTier]float64{
	TierRegular:  0.0,
	TierSilver:   0.05,
	TierGold:     0.10,
	TierPlatinum: 0.15,
}

// Discount returns the discount fraction for the tier (0.05 means 5%).
// Unknown values behave as TierRegular.
func (t GuestTier) Discount() float64 { return tierDiscounts[t] }

// String returns the lowercase tier name used on the wire and in logs.
func (t GuestTier) String() string {
	switch t {
	case TierSilver:
		return "silver"
	case TierGold:
		return "gold"
	case TierPlatinum:
		return "platinum"
	default:
		return "regular"
	}
}

// ParseGuestTier converts a wire-level tier name into a GuestTier.  The
// comparison is case-insensitive and an empty string means TierRegular.
func ParseGuestTier(s string) (GuestTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regular":
		return TierRegular, nil
	case "silver":
		return TierSilver, nil
	case "gold":
		return TierGold, nil
	case "platinum":
		return TierPlatinum, nil
	}
	return TierRegular, fmt.Errorf("unknown guest tier %q", s)
}
