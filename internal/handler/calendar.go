package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eco-rental-booking/internal/model"
	"github.com/iliyamo/eco-rental-booking/internal/repository"
)

// CalendarHandler serves a property's 30-day calendar: slot state,
// availability queries and environmental impact modifier updates.
type CalendarHandler struct {
	Directory *repository.PropertyDirectory
}

// NewCalendarHandler constructs a CalendarHandler over the directory.
func NewCalendarHandler(directory *repository.PropertyDirectory) *CalendarHandler {
	if directory == nil {
		panic("nil directory passed to NewCalendarHandler")
	}
	return &CalendarHandler{Directory: directory}
}

// GetCalendar handles GET /v1/properties/:name/calendar and returns all
// 30 days with booked state, modifier, impact level and occupying guest.
func (h *CalendarHandler) GetCalendar(c echo.Context) error {
	p, err := h.Directory.Get(c.Param("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"property": p.Name(),
		"days":     p.Calendar(),
	})
}

// GetAvailability handles GET /v1/properties/:name/availability.
//
// With check_in and check_out query parameters it reports whether the
// whole half-open range is free.  Otherwise it counts available and
// booked days over the inclusive [from, to] range, defaulting to the
// full calendar; out-of-horizon bounds are clamped.
func (h *CalendarHandler) GetAvailability(c echo.Context) error {
	p, err := h.Directory.Get(c.Param("name"))
	if err != nil {
		return errorJSON(c, err)
	}

	if c.QueryParam("check_in") != "" || c.QueryParam("check_out") != "" {
		checkIn, err1 := strconv.Atoi(c.QueryParam("check_in"))
		checkOut, err2 := strconv.Atoi(c.QueryParam("check_out"))
		if err1 != nil || err2 != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in and check_out must be day numbers"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"check_in":  checkIn,
			"check_out": checkOut,
			"available": p.IsDateRangeAvailable(checkIn, checkOut),
		})
	}

	from, to := 1, model.HorizonDays
	if v := c.QueryParam("from"); v != "" {
		if from, err = strconv.Atoi(v); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "from must be a day number"})
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if to, err = strconv.Atoi(v); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be a day number"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"from":           from,
		"to":             to,
		"available_days": p.CountAvailableDatesInRange(from, to),
		"booked_days":    p.CountBookedDatesInRange(from, to),
	})
}

// SetImpact handles PUT /v1/properties/:name/calendar/impact.  The body
// carries a start day, an optional end day (defaulting to the start day)
// and a modifier in [0.80, 1.20]; the whole request is rejected when the
// range or modifier is invalid.
func (h *CalendarHandler) SetImpact(c echo.Context) error {
	var body struct {
		StartDay int     `json:"start_day"`
		EndDay   *int    `json:"end_day"`
		Modifier float64 `json:"modifier"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, err := h.Directory.Get(c.Param("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	endDay := body.StartDay
	if body.EndDay != nil {
		endDay = *body.EndDay
	}
	if err := p.SetEnvironmentalImpactRange(body.StartDay, endDay, body.Modifier); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"start_day": body.StartDay,
		"end_day":   endDay,
		"modifier":  body.Modifier,
	})
}

// ResetImpact handles DELETE /v1/properties/:name/calendar/impact/:day,
// restoring the day's modifier to the standard 1.0.
func (h *CalendarHandler) ResetImpact(c echo.Context) error {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid day"})
	}
	p, err := h.Directory.Get(c.Param("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	if err := p.ResetEnvironmentalImpact(day); err != nil {
		return errorJSON(c, err)
	}
	view, err := p.Slot(day)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
