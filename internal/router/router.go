// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eco-rental-booking/internal/handler"
)

// RegisterRoutes registers every endpoint on the provided Echo instance.
// cacheMW, when non-nil, is applied to the read-only query endpoints so
// calendar and listing traffic can be served from Redis.
func RegisterRoutes(e *echo.Echo, ph *handler.PropertyHandler, ch *handler.CalendarHandler, bh *handler.BookingHandler, cacheMW echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	// Query surface.  Cached when a cache middleware is configured.
	read := v1.Group("")
	if cacheMW != nil {
		read.Use(cacheMW)
	}
	read.GET("/properties", ph.List)
	read.GET("/properties/:name", ph.Get)
	read.GET("/properties/:name/calendar", ch.GetCalendar)
	read.GET("/properties/:name/availability", ch.GetAvailability)
	read.GET("/properties/:name/reservations", bh.List)

	// Mutation surface.
	v1.POST("/properties", ph.Create)
	v1.PATCH("/properties/:name/name", ph.Rename)
	v1.PATCH("/properties/:name/price", ph.UpdatePrice)
	v1.DELETE("/properties/:name", ph.Delete)
	v1.PUT("/properties/:name/calendar/impact", ch.SetImpact)
	v1.DELETE("/properties/:name/calendar/impact/:day", ch.ResetImpact)
	v1.POST("/properties/:name/reservations", bh.Create)
	v1.DELETE("/properties/:name/reservations/:id", bh.Cancel)
}
