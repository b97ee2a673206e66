// Package service contains the booking engine that orchestrates
// reservation placement and removal, plus the broker publisher for the
// resulting domain events.
package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/eco-rental-booking/internal/model"
	"github.com/iliyamo/eco-rental-booking/internal/queue"
	"github.com/iliyamo/eco-rental-booking/internal/repository"
)

// EventPublisher sends booking domain events to the broker.  Publish
// failures never fail the booking itself; the engine logs and moves on.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
	PublishBookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent) error
}

// BookingService validates booking requests end-to-end and commits them
// into properties.  It is the only supported path that constructs
// reservations, which keeps guest-tier pricing centralized: nothing else
// needs to know how nightly rates compose.
type BookingService struct {
	directory *repository.PropertyDirectory
	publisher EventPublisher // nil disables event publishing
	log       *logrus.Logger
	nextID    atomic.Uint64
}

// NewBookingService builds a booking engine over the given directory.
// publisher may be nil when no broker is configured.
func NewBookingService(directory *repository.PropertyDirectory, publisher EventPublisher, log *logrus.Logger) *BookingService {
	return &BookingService{directory: directory, publisher: publisher, log: log}
}

// Book places a reservation for the guest on the named property in the
// half-open day range [checkIn, checkOut).  The property commit performs
// bounds, boundary-day and conflict validation atomically; Book adds the
// directory lookup in front and event publication behind.
func (s *BookingService) Book(propertyName, guestName string, tier model.GuestTier, checkIn, checkOut int) (*model.Reservation, error) {
	p, err := s.directory.Get(propertyName)
	if err != nil {
		return nil, err
	}
	res, err := p.CommitReservation(s.nextID.Add(1), guestName, tier, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	s.publishConfirmed(p, res)
	return res, nil
}

// CancelReservation removes the reservation with the given ID from the
// named property, freeing its calendar days.
func (s *BookingService) CancelReservation(propertyName string, reservationID uint64) error {
	p, err := s.directory.Get(propertyName)
	if err != nil {
		return err
	}
	var cancelled *model.Reservation
	for _, r := range p.Reservations() {
		if r.ID() == reservationID {
			cancelled = r
			break
		}
	}
	if err := p.RemoveReservation(reservationID); err != nil {
		return err
	}
	s.publishCancelled(p, cancelled)
	return nil
}

// Reservations returns the named property's reservations in insertion
// order.  An unknown property yields an empty slice, not an error.
func (s *BookingService) Reservations(propertyName string) []*model.Reservation {
	p, err := s.directory.Get(propertyName)
	if err != nil {
		return []*model.Reservation{}
	}
	return p.Reservations()
}

func (s *BookingService) publishConfirmed(p *model.Property, res *model.Reservation) {
	if s.publisher == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		ReservationID: res.ID(),
		PropertyName:  p.Name(),
		PropertyType:  p.Type().String(),
		GuestName:     res.GuestName(),
		GuestTier:     res.Tier().String(),
		CheckInDay:    res.CheckInDay(),
		CheckOutDay:   res.CheckOutDay(),
		Nights:        res.Nights(),
		TotalPrice:    res.TotalPrice(),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.PublishBookingConfirmed(ctx, ev); err != nil {
			s.log.WithError(err).Warn("publish booking.confirmed failed")
		}
	}()
}

func (s *BookingService) publishCancelled(p *model.Property, res *model.Reservation) {
	if s.publisher == nil || res == nil {
		return
	}
	ev := queue.BookingCancelledEvent{
		ReservationID: res.ID(),
		PropertyName:  p.Name(),
		GuestName:     res.GuestName(),
		CheckInDay:    res.CheckInDay(),
		CheckOutDay:   res.CheckOutDay(),
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.PublishBookingCancelled(ctx, ev); err != nil {
			s.log.WithError(err).Warn("publish booking.cancelled failed")
		}
	}()
}
