package model

// Slot represents a single bookable day within a property's 30-day
// calendar.  It tracks the day number, the environmental impact modifier
// applied to that day's nightly rate, and the reservation currently
// occupying the day, if any.  Pricing is computed externally (see the
// pricing package) using this slot's modifier.
//
// A slot is created by its owning Property and lives for as long as the
// property does.  The owning reservation reference is a weak
// back-reference: the reservation itself is owned by the Property.
type Slot struct {
	day      int          // day number within the horizon (1..30)
	modifier float64      // environmental impact modifier in [0.80, 1.20]
	booked   bool         // whether the day is currently booked
	res      *Reservation // reservation occupying the day; nil when available
}

// NewSlot creates an unbooked slot for the given day with the standard
// modifier of 1.0.
func NewSlot(day int) *Slot {
	return &Slot{day: day, modifier: StandardModifier}
}

// Day returns the day number (1..30).
func (s *Slot) Day() int { return s.day }

// Modifier returns the environmental impact modifier for this day.
func (s *Slot) Modifier() float64 { return s.modifier }

// SetModifier stores the given environmental impact modifier, clamping it
// into [0.80, 1.20].  Out-of-range input is clamped rather than rejected
// so that calendar updates always succeed at this level; range validation
// with rejection happens in Property.
func (s *Slot) SetModifier(m float64) {
	if m < MinModifier {
		m = MinModifier
	}
	if m > MaxModifier {
		m = MaxModifier
	}
	s.modifier = m
}

// IsAvailable reports whether the day is free for booking.
func (s *Slot) IsAvailable() bool { return !s.booked }

// Reservation returns the reservation occupying this day, or nil when the
// day is available.
func (s *Slot) Reservation() *Reservation { return s.res }

// Book marks the day as booked by the given reservation.  It is the sole
// admission-control point for a single day: when the day is already
// booked it returns false and leaves the slot unchanged.
func (s *Slot) Book(r *Reservation) bool {
	if s.booked {
		return false
	}
	s.booked = true
	s.res = r
	return true
}

// Cancel clears the booking, making the day available again.  Calling it
// on an already-available slot is a no-op.
func (s *Slot) Cancel() {
	s.booked = false
	s.res = nil
}
