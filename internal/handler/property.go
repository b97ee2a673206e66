package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/eco-rental-booking/internal/model"
	"github.com/iliyamo/eco-rental-booking/internal/repository"
)

// PropertyHandler serves the property listing and mutation endpoints.
type PropertyHandler struct {
	Directory *repository.PropertyDirectory
}

// NewPropertyHandler constructs a PropertyHandler over the directory.
func NewPropertyHandler(directory *repository.PropertyDirectory) *PropertyHandler {
	if directory == nil {
		panic("nil directory passed to NewPropertyHandler")
	}
	return &PropertyHandler{Directory: directory}
}

// List handles GET /v1/properties.  Properties appear in creation order.
func (h *PropertyHandler) List(c echo.Context) error {
	props := h.Directory.List()
	out := make([]propertySummary, 0, len(props))
	for _, p := range props {
		out = append(out, summarize(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/properties.  The body carries the name, the
// base price (at least 100.0) and a type selector, either a category name
// such as "eco-glamping" or the numeric selector 1..4.
func (h *PropertyHandler) Create(c echo.Context) error {
	var body struct {
		Name      string  `json:"name"`
		BasePrice float64 `json:"base_price"`
		Type      string  `json:"type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ptype, err := model.ParsePropertyType(body.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	p, err := h.Directory.Create(body.Name, body.BasePrice, ptype)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, summarize(p))
}

// Get handles GET /v1/properties/:name.
func (h *PropertyHandler) Get(c echo.Context) error {
	p, err := h.Directory.Get(c.Param("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, summarize(p))
}

// Rename handles PATCH /v1/properties/:name/name.  The new name must be
// unique across the directory.
func (h *PropertyHandler) Rename(c echo.Context) error {
	var body struct {
		NewName string `json:"new_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Directory.Rename(c.Param("name"), body.NewName); err != nil {
		return errorJSON(c, err)
	}
	p, err := h.Directory.Get(body.NewName)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, summarize(p))
}

// UpdatePrice handles PATCH /v1/properties/:name/price.  The update is
// rejected while the property has active reservations or when the price
// is below the minimum.
func (h *PropertyHandler) UpdatePrice(c echo.Context) error {
	var body struct {
		BasePrice float64 `json:"base_price"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, err := h.Directory.Get(c.Param("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	if err := p.UpdateBasePrice(body.BasePrice); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, summarize(p))
}

// Delete handles DELETE /v1/properties/:name.  Removal is permitted only
// while the property has no active reservations.
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.Directory.Remove(c.Param("name")); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
