package repository

import (
	"context"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// ActivityRepo provides read access to activities, either through a locally
// built filter query or through the backend's geo-distance procedure.
type ActivityRepo struct {
	sb *supabase.Client
}

// NewActivityRepo returns an ActivityRepo bound to the given backend client.
func NewActivityRepo(sb *supabase.Client) *ActivityRepo { return &ActivityRepo{sb: sb} }

// ActivityFilter narrows a Search call. Zero values mean "no filter"; the
// age range is applied only when both bounds are present, matching the
// overlap predicate (activity min_age <= MaxAge AND max_age >= MinAge).
type ActivityFilter struct {
	Category string
	MinAge   *int
	MaxAge   *int
	MaxPrice *float64
}

// Search returns active activities matching the filter.
func (r *ActivityRepo) Search(ctx context.Context, f ActivityFilter) ([]model.Activity, error) {
	q := r.sb.From("activities").
		Select("*").
		Eq("is_active", true)
	if f.Category != "" {
		q = q.Eq("category", f.Category)
	}
	if f.MinAge != nil && f.MaxAge != nil {
		q = q.Lte("min_age", *f.MaxAge).Gte("max_age", *f.MinAge)
	}
	if f.MaxPrice != nil {
		q = q.Lte("price_per_month", *f.MaxPrice)
	}
	var out []model.Activity
	if err := q.Execute(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WithinDistance calls the get_activities_within_distance procedure. The
// distance formula and boundary semantics are backend-defined; the client
// only forwards the three numeric parameters.
func (r *ActivityRepo) WithinDistance(ctx context.Context, lat, lng, maxKM float64) ([]model.Activity, error) {
	params := map[string]float64{
		"user_lat":        lat,
		"user_lng":        lng,
		"max_distance_km": maxKM,
	}
	var out []model.Activity
	if err := r.sb.RPC(ctx, "get_activities_within_distance", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
