package model

import (
	"sync"

	"github.com/iliyamo/eco-rental-booking/internal/pricing"
)

// Booking horizon and pricing bounds shared across the domain.
const (
	// HorizonDays is the fixed length of every property's calendar.
	HorizonDays = 30
	// MinBasePrice is the lowest accepted base price per night.
	MinBasePrice = 100.0
	// MinModifier and MaxModifier bound the environmental impact
	// modifier applied to a single day.
	MinModifier = 0.80
	MaxModifier = 1.20
	// StandardModifier is the neutral modifier every day starts with.
	StandardModifier = 1.0
)

// Environmental impact levels derived from a day's modifier, used by the
// calendar query surface.
const (
	ImpactReduced  = "reduced"  // modifier in [0.80, 0.89]
	ImpactStandard = "standard" // neutral modifier
	ImpactElevated = "elevated" // modifier in [1.01, 1.20]
)

// ImpactLevel classifies a day's modifier into one of the impact levels.
// Values between 0.90 and 1.00 count as standard.
func ImpactLevel(modifier float64) string {
	switch {
	case modifier >= MinModifier && modifier <= 0.89:
		return ImpactReduced
	case modifier >= 1.01 && modifier <= MaxModifier:
		return ImpactElevated
	default:
		return ImpactStandard
	}
}

// Property owns a fixed 30-day calendar of slots and the set of
// reservations placed against it.  All state transitions that touch the
// slots or the reservation list go through methods on Property, which
// keep the two in lockstep: every reservation corresponds to a contiguous
// run of booked slots and every booked slot back-references a reservation
// in the list.
//
// Each property carries its own mutex so booking attempts on the same
// property serialize (the conflict check and commit must be atomic
// relative to each other) while operations on different properties
// proceed independently.
type Property struct {
	mu           sync.Mutex
	name         string
	basePrice    float64
	ptype        PropertyType
	slots        []*Slot
	reservations []*Reservation // insertion order
}

// NewProperty creates a property with an empty 30-day calendar.  The
// caller (the property directory) is responsible for validating the name,
// base price and type before construction.
func NewProperty(name string, basePrice float64, ptype PropertyType) *Property {
	slots := make([]*Slot, HorizonDays)
	for day := 1; day <= HorizonDays; day++ {
		slots[day-1] = NewSlot(day)
	}
	return &Property{
		name:         name,
		basePrice:    basePrice,
		ptype:        ptype,
		slots:        slots,
		reservations: make([]*Reservation, 0),
	}
}

// Name returns the property's current name.
func (p *Property) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// Rename sets a new name.  Uniqueness across the directory is enforced by
// the directory, not here.
func (p *Property) Rename(newName string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = newName
}

// BasePrice returns the current base price per night.
func (p *Property) BasePrice() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.basePrice
}

// Type returns the property's category.
func (p *Property) Type() PropertyType { return p.ptype }

// UpdateBasePrice replaces the base price.  It is rejected without side
// effect when the new price is below the minimum or while any reservation
// is active, since committed reservations priced against the old base
// must stay consistent.
func (p *Property) UpdateBasePrice(newPrice float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if newPrice < MinBasePrice {
		return ErrInvalidPrice
	}
	if len(p.reservations) > 0 {
		return ErrHasReservations
	}
	p.basePrice = newPrice
	return nil
}

// CommitReservation validates a stay request and, when every check
// passes, atomically records the reservation and books its slots.  The
// checks run in a fixed order and short-circuit at the first failure:
//
//  1. bounds: 1 ≤ checkIn, checkOut ≤ 30, checkIn < checkOut
//  2. boundary days: no check-out on day 1, no check-in on day 30
//  3. conflict: the half-open [checkIn, checkOut) interval must not
//     intersect any existing reservation's interval
//
// Nightly rates are evaluated per night with that night's own modifier,
// then the tier discount is applied.  On any failure nothing is mutated.
func (p *Property) CommitReservation(id uint64, guestName string, tier GuestTier, checkIn, checkOut int) (*Reservation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if checkIn < 1 || checkOut > HorizonDays || checkIn >= checkOut {
		return nil, ErrInvalidRange
	}
	// No check-out on day 1, no check-in on day 30.
	if checkOut == 1 || checkIn == HorizonDays {
		return nil, ErrInvalidRange
	}
	for _, r := range p.reservations {
		if checkIn < r.checkOut && checkOut > r.checkIn {
			return nil, ErrDateConflict
		}
	}

	modifiers := make([]float64, 0, checkOut-checkIn)
	for d := checkIn; d < checkOut; d++ {
		modifiers = append(modifiers, p.slots[d-1].Modifier())
	}
	rates := pricing.NightlyRates(p.basePrice, p.ptype.Multiplier(), modifiers)
	res := newReservation(id, guestName, tier, checkIn, checkOut, rates)

	// The conflict check above, together with the slot/reservation
	// lockstep invariant, guarantees every slot in range is available,
	// so booking cannot fail partway.
	for d := checkIn; d < checkOut; d++ {
		p.slots[d-1].Book(res)
	}
	p.reservations = append(p.reservations, res)
	return res, nil
}

// RemoveReservation cancels the reservation with the given ID, freeing
// every slot in its [checkIn, checkOut) range.  It returns
// ErrReservationNotFound, with no side effect, when the ID is unknown.
func (p *Property) RemoveReservation(id uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, r := range p.reservations {
		if r.id != id {
			continue
		}
		for d := r.checkIn; d < r.checkOut; d++ {
			p.slots[d-1].Cancel()
		}
		p.reservations = append(p.reservations[:i], p.reservations[i+1:]...)
		return nil
	}
	return ErrReservationNotFound
}

// Reservations returns the reservations in insertion order.  The slice is
// a copy; the reservations themselves are immutable.
func (p *Property) Reservations() []*Reservation {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Reservation, len(p.reservations))
	copy(out, p.reservations)
	return out
}

// ReservationCount returns the number of active reservations.
func (p *Property) ReservationCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.reservations)
}

// CanBeRemoved reports whether the property may be removed from the
// directory, which requires an empty reservation set.
func (p *Property) CanBeRemoved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.reservations) == 0
}

// TotalEarnings returns the sum of the total price of every active
// reservation.
func (p *Property) TotalEarnings() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0.0
	for _, r := range p.reservations {
		total += r.total
	}
	return total
}

// CountAvailableDates returns the number of unbooked days in the whole
// calendar.
func (p *Property) CountAvailableDates() int {
	return p.countInRange(1, HorizonDays, true)
}

// CountAvailableDatesInRange counts unbooked days in the inclusive range
// [startDay, endDay].  Out-of-horizon bounds are clamped; an empty range
// counts zero.
func (p *Property) CountAvailableDatesInRange(startDay, endDay int) int {
	return p.countInRange(startDay, endDay, true)
}

// CountBookedDatesInRange counts booked days in the inclusive range
// [startDay, endDay] with the same clamping rules.
func (p *Property) CountBookedDatesInRange(startDay, endDay int) int {
	return p.countInRange(startDay, endDay, false)
}

func (p *Property) countInRange(startDay, endDay int, available bool) int {
	if startDay < 1 {
		startDay = 1
	}
	if endDay > HorizonDays {
		endDay = HorizonDays
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for d := startDay; d <= endDay; d++ {
		if p.slots[d-1].IsAvailable() == available {
			count++
		}
	}
	return count
}

// IsDateRangeAvailable reports whether every day in the half-open
// [checkIn, checkOut) range is unbooked.  The horizon bound applies here
// too: checkOut may not exceed 30.
func (p *Property) IsDateRangeAvailable(checkIn, checkOut int) bool {
	if checkIn < 1 || checkOut > HorizonDays || checkIn >= checkOut {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for d := checkIn; d < checkOut; d++ {
		if !p.slots[d-1].IsAvailable() {
			return false
		}
	}
	return true
}

// SetEnvironmentalImpact sets the modifier for a single day.  Unlike
// Slot.SetModifier, this validates and rejects out-of-range input.
func (p *Property) SetEnvironmentalImpact(day int, modifier float64) error {
	return p.SetEnvironmentalImpactRange(day, day, modifier)
}

// SetEnvironmentalImpactRange sets the modifier for every day in the
// inclusive range [startDay, endDay].  An invalid range or an
// out-of-range modifier is rejected without touching any slot.
func (p *Property) SetEnvironmentalImpactRange(startDay, endDay int, modifier float64) error {
	if startDay < 1 || endDay > HorizonDays || startDay > endDay {
		return ErrInvalidRange
	}
	if modifier < MinModifier || modifier > MaxModifier {
		return ErrInvalidModifier
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for d := startDay; d <= endDay; d++ {
		p.slots[d-1].SetModifier(modifier)
	}
	return nil
}

// ResetEnvironmentalImpact restores a day's modifier to the standard 1.0.
func (p *Property) ResetEnvironmentalImpact(day int) error {
	if day < 1 || day > HorizonDays {
		return ErrInvalidRange
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[day-1].SetModifier(StandardModifier)
	return nil
}

// SlotView is a read-only snapshot of one calendar day, safe to hand to
// other layers: mutating it has no effect on the property.
type SlotView struct {
	Day         int     `json:"day"`
	Booked      bool    `json:"booked"`
	Modifier    float64 `json:"modifier"`
	ImpactLevel string  `json:"impact_level"`
	GuestName   string  `json:"guest_name,omitempty"`
}

// Slot returns a snapshot of a single day.
func (p *Property) Slot(day int) (SlotView, error) {
	if day < 1 || day > HorizonDays {
		return SlotView{}, ErrInvalidRange
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slotView(p.slots[day-1]), nil
}

// Calendar returns a snapshot of all 30 days in day order.
func (p *Property) Calendar() []SlotView {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]SlotView, 0, HorizonDays)
	for _, s := range p.slots {
		out = append(out, p.slotView(s))
	}
	return out
}

func (p *Property) slotView(s *Slot) SlotView {
	view := SlotView{
		Day:         s.Day(),
		Booked:      !s.IsAvailable(),
		Modifier:    s.Modifier(),
		ImpactLevel: ImpactLevel(s.Modifier()),
	}
	if r := s.Reservation(); r != nil {
		view.GuestName = r.guestName
	}
	return view
}
