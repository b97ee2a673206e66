// Package pricing implements the layered nightly rate computation: a
// property's base price is scaled by its fixed type multiplier and by the
// environmental impact modifier of each individual night, and a guest-tier
// discount is applied afterwards as an independent step.  All functions
// are pure; callers supply the per-night modifiers so a multi-night stay
// can price every night with that night's own calendar state.
package pricing

// FinalNightlyRate composes the pre-discount rate for a single night.
func FinalNightlyRate(basePrice, typeMultiplier, dayModifier float64) float64 {
	return basePrice * typeMultiplier * dayModifier
}

// NightlyRates computes the pre-discount rate for every night of a stay,
// one entry per element of dayModifiers, in stay order.
func NightlyRates(basePrice, typeMultiplier float64, dayModifiers []float64) []float64 {
	rates := make([]float64, len(dayModifiers))
	for i, m := range dayModifiers {
		rates[i] = FinalNightlyRate(basePrice, typeMultiplier, m)
	}
	return rates
}

// ApplyDiscount returns rate reduced by the given discount fraction
// (0.10 means 10% off).
func ApplyDiscount(rate, discount float64) float64 {
	return rate * (1 - discount)
}

// DiscountedRates applies the discount fraction to every rate, returning a
// new slice of the same length.  The input slice is not modified; both the
// pre- and post-discount sequences are kept on a reservation for
// auditability.
func DiscountedRates(rates []float64, discount float64) []float64 {
	out := make([]float64, len(rates))
	for i, r := range rates {
		out[i] = ApplyDiscount(r, discount)
	}
	return out
}
