package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/eco-rental-booking/internal/handler"
	"github.com/iliyamo/eco-rental-booking/internal/repository"
	"github.com/iliyamo/eco-rental-booking/internal/router"
	"github.com/iliyamo/eco-rental-booking/internal/service"
)

// newTestServer wires the full HTTP surface with no broker and no Redis,
// the same shape cmd/server uses.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	directory := repository.NewPropertyDirectory()
	bookings := service.NewBookingService(directory, nil, logrus.New())

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewPropertyHandler(directory),
		handler.NewCalendarHandler(directory),
		handler.NewBookingHandler(bookings),
		nil,
	)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createProperty(t *testing.T, e *echo.Echo, name, ptype string, basePrice float64) {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"base_price":%v,"type":%q}`, name, basePrice, ptype)
	rec := doJSON(e, http.MethodPost, "/v1/properties", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCreateProperty(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/v1/properties", `{"name":"EcoApt101","base_price":1000,"type":"eco-apartment"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "EcoApt101", got["name"])
	assert.Equal(t, "Eco-Apartment", got["type"])
	assert.EqualValues(t, 1000, got["base_price"])
	assert.EqualValues(t, 30, got["available_days"])

	// Duplicate names conflict, case-insensitively.
	rec = doJSON(e, http.MethodPost, "/v1/properties", `{"name":"ECOAPT101","base_price":1000,"type":"2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/properties", `{"name":"Cheap Hut","base_price":50,"type":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/properties", `{"name":"Castle","base_price":1000,"type":"castle"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProperties(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "EcoApt101", "eco-apartment", 1000)
	createProperty(t, e, "GreenHaven", "green-resort", 2000)

	rec := doJSON(e, http.MethodGet, "/v1/properties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "EcoApt101", list[0]["name"])
	assert.Equal(t, "GreenHaven", list[1]["name"])
}

func TestBookingFlow(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "SustainableHome", "sustainable-house", 1000)

	// Price a single night at modifier 0.85 for a gold guest: 918.0.
	rec := doJSON(e, http.MethodPut, "/v1/properties/SustainableHome/calendar/impact", `{"start_day":5,"modifier":0.85}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/v1/properties/SustainableHome/reservations",
		`{"guest_name":"Carol","tier":"gold","check_in":5,"check_out":6}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Carol", res["guest_name"])
	assert.Equal(t, "gold", res["guest_tier"])
	assert.EqualValues(t, 1, res["nights"])
	assert.InDelta(t, 1020.0, res["nightly_rates"].([]any)[0].(float64), 1e-9)
	assert.InDelta(t, 918.0, res["discounted_rates"].([]any)[0].(float64), 1e-9)
	assert.InDelta(t, 918.0, res["total_price"].(float64), 1e-9)

	// Overlap rejected; back-to-back allowed.
	rec = doJSON(e, http.MethodPost, "/v1/properties/SustainableHome/reservations",
		`{"guest_name":"Mallory","check_in":5,"check_out":7}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = doJSON(e, http.MethodPost, "/v1/properties/SustainableHome/reservations",
		`{"guest_name":"Bob","check_in":6,"check_out":8}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Boundary and bounds failures.
	for _, body := range []string{
		`{"guest_name":"Eve","check_in":30,"check_out":30}`,
		`{"guest_name":"Eve","check_in":0,"check_out":3}`,
		`{"guest_name":"Eve","check_in":10,"check_out":31}`,
		`{"check_in":10,"check_out":12}`,
	} {
		rec = doJSON(e, http.MethodPost, "/v1/properties/SustainableHome/reservations", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	// Unknown property: booking 404s, listing stays empty.
	rec = doJSON(e, http.MethodPost, "/v1/properties/Nowhere/reservations",
		`{"guest_name":"Eve","check_in":1,"check_out":2}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(e, http.MethodGet, "/v1/properties/Nowhere/reservations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCancelReservation(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "EcoApt101", "1", 1000)

	rec := doJSON(e, http.MethodPost, "/v1/properties/EcoApt101/reservations",
		`{"guest_name":"Alice","check_in":5,"check_out":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	id := uint64(res["id"].(float64))

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/v1/properties/EcoApt101/reservations/%d", id), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Calendar restored.
	rec = doJSON(e, http.MethodGet, "/v1/properties/EcoApt101", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.EqualValues(t, 30, summary["available_days"])
	assert.EqualValues(t, 0, summary["reservation_count"])

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/v1/properties/EcoApt101/reservations/%d", id), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/properties/EcoApt101/reservations/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPriceUpdateGuard(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "EcoApt101", "1", 1000)

	rec := doJSON(e, http.MethodPost, "/v1/properties/EcoApt101/reservations",
		`{"guest_name":"Alice","check_in":5,"check_out":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	rec = doJSON(e, http.MethodPatch, "/v1/properties/EcoApt101/price", `{"base_price":1500}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	id := uint64(res["id"].(float64))
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/v1/properties/EcoApt101/reservations/%d", id), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/v1/properties/EcoApt101/price", `{"base_price":1500}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.EqualValues(t, 1500, summary["base_price"])

	rec = doJSON(e, http.MethodPatch, "/v1/properties/EcoApt101/price", `{"base_price":99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenameProperty(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "OldName", "1", 1000)
	createProperty(t, e, "Taken", "1", 1000)

	rec := doJSON(e, http.MethodPatch, "/v1/properties/OldName/name", `{"new_name":"taken"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/v1/properties/OldName/name", `{"new_name":"NewName"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "NewName", summary["name"])

	rec = doJSON(e, http.MethodGet, "/v1/properties/OldName", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePropertyGuarded(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "EcoApt101", "1", 1000)

	rec := doJSON(e, http.MethodPost, "/v1/properties/EcoApt101/reservations",
		`{"guest_name":"Alice","check_in":5,"check_out":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	id := uint64(res["id"].(float64))

	rec = doJSON(e, http.MethodDelete, "/v1/properties/EcoApt101", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/v1/properties/EcoApt101/reservations/%d", id), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/properties/EcoApt101", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodDelete, "/v1/properties/EcoApt101", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalendarAndImpact(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "EcoApt101", "1", 1000)

	rec := doJSON(e, http.MethodPut, "/v1/properties/EcoApt101/calendar/impact",
		`{"start_day":3,"end_day":5,"modifier":0.85}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Out-of-range modifier and bad ranges reject.
	rec = doJSON(e, http.MethodPut, "/v1/properties/EcoApt101/calendar/impact",
		`{"start_day":3,"modifier":1.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(e, http.MethodPut, "/v1/properties/EcoApt101/calendar/impact",
		`{"start_day":10,"end_day":5,"modifier":1.0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/properties/EcoApt101/calendar", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cal struct {
		Property string `json:"property"`
		Days     []struct {
			Day         int     `json:"day"`
			Booked      bool    `json:"booked"`
			Modifier    float64 `json:"modifier"`
			ImpactLevel string  `json:"impact_level"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cal))
	require.Len(t, cal.Days, 30)
	assert.InDelta(t, 0.85, cal.Days[2].Modifier, 1e-9)
	assert.Equal(t, "reduced", cal.Days[2].ImpactLevel)
	assert.Equal(t, "standard", cal.Days[0].ImpactLevel)

	rec = doJSON(e, http.MethodDelete, "/v1/properties/EcoApt101/calendar/impact/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.EqualValues(t, 1.0, view["modifier"])
}

func TestAvailabilityQueries(t *testing.T) {
	e := newTestServer(t)
	createProperty(t, e, "EcoApt101", "1", 1000)
	rec := doJSON(e, http.MethodPost, "/v1/properties/EcoApt101/reservations",
		`{"guest_name":"Alice","check_in":5,"check_out":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/properties/EcoApt101/availability?from=1&to=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var counts map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.EqualValues(t, 7, counts["available_days"])
	assert.EqualValues(t, 3, counts["booked_days"])

	rec = doJSON(e, http.MethodGet, "/v1/properties/EcoApt101/availability?check_in=8&check_out=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var check map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	assert.Equal(t, true, check["available"])

	rec = doJSON(e, http.MethodGet, "/v1/properties/EcoApt101/availability?check_in=4&check_out=6", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	assert.Equal(t, false, check["available"])
}
