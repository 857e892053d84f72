package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/service"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// SearchHandler answers public activity searches.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /v1/activities. All query parameters are optional:
// category, min_age, max_age, max_price, lat, lng, max_distance_km.
// Supplying lat, lng and max_distance_km together switches to the
// geo-distance plan. Malformed numeric parameters are rejected with 400
// rather than silently dropped.
func (h *SearchHandler) Search(c echo.Context) error {
	filters := service.SearchFilters{
		Category: strings.TrimSpace(c.QueryParam("category")),
	}

	var err error
	if filters.MinAge, err = intParam(c, "min_age"); err != nil {
		return respondError(c, err)
	}
	if filters.MaxAge, err = intParam(c, "max_age"); err != nil {
		return respondError(c, err)
	}
	if filters.MaxPrice, err = floatParam(c, "max_price"); err != nil {
		return respondError(c, err)
	}
	if filters.UserLat, err = floatParam(c, "lat"); err != nil {
		return respondError(c, err)
	}
	if filters.UserLng, err = floatParam(c, "lng"); err != nil {
		return respondError(c, err)
	}
	if filters.MaxDistanceKM, err = floatParam(c, "max_distance_km"); err != nil {
		return respondError(c, err)
	}

	activities, err := h.search.Search(c.Request().Context(), filters)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, activities)
}

// intParam reads an optional integer query parameter; nil when absent.
func intParam(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, supabase.Invalid("%s must be an integer", name)
	}
	return &n, nil
}

// floatParam reads an optional numeric query parameter; nil when absent.
func floatParam(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, supabase.Invalid("%s must be a number", name)
	}
	return &f, nil
}
