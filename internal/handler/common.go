// Package handler contains the HTTP handlers exposing the booking
// engine's query and mutation surfaces.  Handlers bind and validate
// input, delegate to the repository and service layers, and translate
// sentinel errors into HTTP status codes.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eco-rental-booking/internal/model"
	"github.com/iliyamo/eco-rental-booking/internal/repository"
)

// errorJSON maps a domain error onto an HTTP response: unknown resources
// become 404, state conflicts 409 and everything else 400.  The body is
// always {"error": message}.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, repository.ErrPropertyNotFound),
		errors.Is(err, model.ErrReservationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrNameTaken),
		errors.Is(err, model.ErrDateConflict),
		errors.Is(err, model.ErrHasReservations):
		status = http.StatusConflict
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

// propertySummary is the JSON shape returned for a property on the query
// surface.  All values are copies; nothing here references live internal
// state.
type propertySummary struct {
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	TypeMultiplier   float64 `json:"type_multiplier"`
	BasePrice        float64 `json:"base_price"`
	ReservationCount int     `json:"reservation_count"`
	AvailableDays    int     `json:"available_days"`
	TotalEarnings    float64 `json:"total_earnings"`
}

func summarize(p *model.Property) propertySummary {
	return propertySummary{
		Name:             p.Name(),
		Type:             p.Type().String(),
		TypeMultiplier:   p.Type().Multiplier(),
		BasePrice:        p.BasePrice(),
		ReservationCount: p.ReservationCount(),
		AvailableDays:    p.CountAvailableDates(),
		TotalEarnings:    p.TotalEarnings(),
	}
}

// reservationJSON is the JSON shape of a reservation, including both rate
// sequences so callers can audit the discount that was applied.
type reservationJSON struct {
	ID              uint64    `json:"id"`
	GuestName       string    `json:"guest_name"`
	GuestTier       string    `json:"guest_tier"`
	CheckInDay      int       `json:"check_in_day"`
	CheckOutDay     int       `json:"check_out_day"`
	Nights          int       `json:"nights"`
	NightlyRates    []float64 `json:"nightly_rates"`
	DiscountedRates []float64 `json:"discounted_rates"`
	TotalPrice      float64   `json:"total_price"`
}

func reservationView(r *model.Reservation) reservationJSON {
	return reservationJSON{
		ID:              r.ID(),
		GuestName:       r.GuestName(),
		GuestTier:       r.Tier().String(),
		CheckInDay:      r.CheckInDay(),
		CheckOutDay:     r.CheckOutDay(),
		Nights:          r.Nights(),
		NightlyRates:    r.NightlyRates(),
		DiscountedRates: r.DiscountedRates(),
		TotalPrice:      r.TotalPrice(),
	}
}
