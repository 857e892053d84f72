package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/famtivity/famtivity-api/internal/repository"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestSearchLocalPlan(t *testing.T) {
	sb, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"id": 9, "name": "Swim Squad", "category": "sports", "is_active": true}
		]`)
	})
	svc := NewSearchService(repository.NewActivityRepo(sb))

	activities, err := svc.Search(context.Background(), SearchFilters{
		Category: "sports",
		MinAge:   intPtr(5),
		MaxAge:   intPtr(10),
		MaxPrice: floatPtr(80),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(activities) != 1 || activities[0].Name != "Swim Squad" {
		t.Errorf("activities = %+v", activities)
	}

	req, ok := rec.find(http.MethodGet, "/rest/v1/activities")
	if !ok {
		t.Fatal("no activities read recorded")
	}
	checks := map[string]string{
		"is_active":       "eq.true",
		"category":        "eq.sports",
		"min_age":         "lte.10",
		"max_age":         "gte.5",
		"price_per_month": "lte.80",
	}
	for param, want := range checks {
		if v := req.Query.Get(param); v != want {
			t.Errorf("param %s = %q, want %q", param, v, want)
		}
	}
}

func TestSearchLocalPlanSkipsPartialAgeRange(t *testing.T) {
	sb, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	svc := NewSearchService(repository.NewActivityRepo(sb))

	activities, err := svc.Search(context.Background(), SearchFilters{MinAge: intPtr(5)})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if activities == nil || len(activities) != 0 {
		t.Errorf("activities = %#v, want empty non-nil slice", activities)
	}

	req, _ := rec.find(http.MethodGet, "/rest/v1/activities")
	if req.Query.Has("min_age") || req.Query.Has("max_age") {
		t.Errorf("age filters = %v, want none when only one bound is set", req.Query)
	}
}

func TestSearchGeoPlan(t *testing.T) {
	sb, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/rpc/get_activities_within_distance" {
			writeJSON(w, http.StatusNotFound, `{"message":"unexpected request"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[
			{"id": 1, "name": "Swim Squad", "category": "sports", "min_age": 5, "max_age": 12, "price_per_month": 60, "is_active": true},
			{"id": 2, "name": "Closed Gym",  "category": "sports", "min_age": 5, "max_age": 12, "price_per_month": 60, "is_active": false},
			{"id": 3, "name": "Art Club",    "category": "arts",   "min_age": 5, "max_age": 12, "price_per_month": 60, "is_active": true},
			{"id": 4, "name": "Elite Tennis","category": "sports", "min_age": 5, "max_age": 12, "price_per_month": 200, "is_active": true}
		]`)
	})
	svc := NewSearchService(repository.NewActivityRepo(sb))

	activities, err := svc.Search(context.Background(), SearchFilters{
		Category:      "sports",
		MaxPrice:      floatPtr(100),
		UserLat:       floatPtr(40.7),
		UserLng:       floatPtr(-74.0),
		MaxDistanceKM: floatPtr(10),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(activities) != 1 || activities[0].ID != 1 {
		t.Errorf("activities = %+v, want only the active in-budget sports activity", activities)
	}

	rpcReq, ok := rec.find(http.MethodPost, "/rest/v1/rpc/get_activities_within_distance")
	if !ok {
		t.Fatal("no distance procedure call recorded")
	}
	var params map[string]float64
	if err := json.Unmarshal(rpcReq.Body, &params); err != nil {
		t.Fatalf("unmarshal rpc params: %v", err)
	}
	if params["user_lat"] != 40.7 || params["user_lng"] != -74.0 || params["max_distance_km"] != 10 {
		t.Errorf("rpc params = %v", params)
	}
	if rec.count(http.MethodGet, "/rest/v1/activities") != 0 {
		t.Error("the geo plan must not also query the activities table")
	}
}

func TestSearchGeoPlanRequiresAllLocationFields(t *testing.T) {
	sb, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	svc := NewSearchService(repository.NewActivityRepo(sb))

	// Latitude without the rest falls back to the local plan.
	if _, err := svc.Search(context.Background(), SearchFilters{UserLat: floatPtr(40.7)}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if rec.count(http.MethodGet, "/rest/v1/activities") != 1 {
		t.Error("expected a local plan query")
	}
	if rec.count(http.MethodPost, "/rest/v1/rpc/get_activities_within_distance") != 0 {
		t.Error("partial location input must not trigger the distance procedure")
	}
}

func TestSearchGeoPlanAgeOverlap(t *testing.T) {
	sb, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"id": 1, "min_age": 3, "max_age": 6,  "is_active": true},
			{"id": 2, "min_age": 8, "max_age": 12, "is_active": true},
			{"id": 3, "min_age": 6, "max_age": 9,  "is_active": true}
		]`)
	})
	svc := NewSearchService(repository.NewActivityRepo(sb))

	out, err := svc.Search(context.Background(), SearchFilters{
		MinAge:        intPtr(5),
		MaxAge:        intPtr(7),
		UserLat:       floatPtr(40.7),
		UserLng:       floatPtr(-74.0),
		MaxDistanceKM: floatPtr(10),
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// 1 overlaps (3-6 vs 5-7), 2 does not (8-12), 3 overlaps (6-9).
	ids := make([]int64, 0, len(out))
	for _, a := range out {
		ids = append(ids, a.ID)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("ids = %v, want [1 3]", ids)
	}
}
