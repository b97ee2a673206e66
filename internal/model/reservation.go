package model

import (
	"github.com/iliyamo/eco-rental-booking/internal/pricing"
)

// Reservation is an immutable record of a guest's stay: the guest, their
// loyalty tier, the half-open day range [CheckIn, CheckOut), and the
// nightly rates both before and after the tier discount.  The total price
// is always the sum of the post-discount rates; it is derived at
// construction time and never stored independently of the sequences.
//
// Reservations are created exclusively by Property.CommitReservation and
// never mutated afterwards.  Removal goes through
// Property.RemoveReservation, which also frees the booked slots.
type Reservation struct {
	id         uint64
	guestName  string
	tier       GuestTier
	checkIn    int       // inclusive
	checkOut   int       // exclusive
	rates      []float64 // per night, before discount
	discounted []float64 // per night, after discount
	total      float64   // sum of discounted
}

// newReservation builds a reservation from the pre-discount nightly rates
// for nights [checkIn, checkOut).  len(rates) must equal
// checkOut−checkIn; the caller (Property) guarantees this.
func newReservation(id uint64, guestName string, tier GuestTier, checkIn, checkOut int, rates []float64) *Reservation {
	discounted := pricing.DiscountedRates(rates, tier.Discount())
	total := 0.0
	for _, r := range discounted {
		total += r
	}
	return &Reservation{
		id:         id,
		guestName:  guestName,
		tier:       tier,
		checkIn:    checkIn,
		checkOut:   checkOut,
		rates:      rates,
		discounted: discounted,
		total:      total,
	}
}

// ID returns the process-unique reservation identifier.
func (r *Reservation) ID() uint64 { return r.id }

// GuestName returns the name of the guest who booked the stay.
func (r *Reservation) GuestName() string { return r.guestName }

// Tier returns the guest's loyalty tier.
func (r *Reservation) Tier() GuestTier { return r.tier }

// CheckInDay returns the first booked day (inclusive).
func (r *Reservation) CheckInDay() int { return r.checkIn }

// CheckOutDay returns the departure day (exclusive, never booked).
func (r *Reservation) CheckOutDay() int { return r.checkOut }

// Nights returns the number of booked nights.
func (r *Reservation) Nights() int { return r.checkOut - r.checkIn }

// NightlyRates returns a copy of the per-night rates before the tier
// discount, in stay order.
func (r *Reservation) NightlyRates() []float64 {
	out := make([]float64, len(r.rates))
	copy(out, r.rates)
	return out
}

// DiscountedRates returns a copy of the per-night rates after the tier
// discount, in stay order.
func (r *Reservation) DiscountedRates() []float64 {
	out := make([]float64, len(r.discounted))
	copy(out, r.discounted)
	return out
}

// TotalPrice returns the total cost of the stay (sum of the discounted
// nightly rates).
func (r *Reservation) TotalPrice() float64 { return r.total }
