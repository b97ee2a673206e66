// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Queue names used on the broker.  Both queues are declared durable.
const (
	BookingConfirmedQueue = "booking.confirmed"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingConfirmedEvent is published when a reservation is successfully
// committed.  It carries enough information for downstream consumers to
// log or notify without reaching back into the booking engine.
type BookingConfirmedEvent struct {
	ReservationID uint64  `json:"reservation_id"`
	PropertyName  string  `json:"property_name"`
	PropertyType  string  `json:"property_type"`
	GuestName     string  `json:"guest_name"`
	GuestTier     string  `json:"guest_tier"`
	CheckInDay    int     `json:"check_in_day"`
	CheckOutDay   int     `json:"check_out_day"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"total_price"`
	ConfirmedAt   string  `json:"confirmed_at"`
}

// BookingCancelledEvent is published when a reservation is removed and
// its calendar days freed.
type BookingCancelledEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	PropertyName  string `json:"property_name"`
	GuestName     string `json:"guest_name"`
	CheckInDay    int    `json:"check_in_day"`
	CheckOutDay   int    `json:"check_out_day"`
	CancelledAt   string `json:"cancelled_at"`
}
