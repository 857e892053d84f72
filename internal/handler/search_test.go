package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSearchRejectsMalformedParams(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{"non-integer min_age", "/v1/activities?min_age=five"},
		{"non-integer max_age", "/v1/activities?max_age=ten"},
		{"non-numeric max_price", "/v1/activities?max_price=cheap"},
		{"non-numeric lat", "/v1/activities?lat=north"},
		{"non-numeric lng", "/v1/activities?lng=west"},
		{"non-numeric distance", "/v1/activities?max_distance_km=near"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			// The malformed parameter is rejected before the service is
			// consulted, so no service is wired.
			h := NewSearchHandler(nil)
			if err := h.Search(c); err != nil {
				t.Fatalf("Search: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body["success"] != false {
				t.Errorf("body = %v, want a failure envelope", body)
			}
		})
	}
}
