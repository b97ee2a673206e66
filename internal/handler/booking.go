package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eco-rental-booking/internal/model"
	"github.com/iliyamo/eco-rental-booking/internal/service"
)

// BookingHandler serves the reservation endpoints.  All booking and
// cancellation traffic goes through the booking engine so that pricing
// and conflict rules stay in one place.
type BookingHandler struct {
	Service *service.BookingService
}

// NewBookingHandler constructs a BookingHandler over the booking engine.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc}
}

// List handles GET /v1/properties/:name/reservations.  An unknown
// property yields an empty list rather than an error.
func (h *BookingHandler) List(c echo.Context) error {
	reservations := h.Service.Reservations(c.Param("name"))
	out := make([]reservationJSON, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, reservationView(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/properties/:name/reservations.  The body
// carries the guest name, an optional loyalty tier (defaulting to
// regular) and the half-open [check_in, check_out) day range.
func (h *BookingHandler) Create(c echo.Context) error {
	var body struct {
		GuestName string `json:"guest_name"`
		Tier      string `json:"tier"`
		CheckIn   int    `json:"check_in"`
		CheckOut  int    `json:"check_out"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.GuestName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_name is required"})
	}
	tier, err := model.ParseGuestTier(body.Tier)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	res, err := h.Service.Book(c.Param("name"), body.GuestName, tier, body.CheckIn, body.CheckOut)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, reservationView(res))
}

// Cancel handles DELETE /v1/properties/:name/reservations/:id, freeing
// every calendar day the reservation occupied.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	if err := h.Service.CancelReservation(c.Param("name"), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
