package service

import (
	"context"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/repository"
)

// SearchFilters are the optional activity search criteria. Pointer fields
// distinguish "not supplied" from zero. The three location fields form one
// unit: the geo plan is selected only when all of them are present.
type SearchFilters struct {
	Category      string
	MinAge        *int
	MaxAge        *int
	MaxPrice      *float64
	UserLat       *float64
	UserLng       *float64
	MaxDistanceKM *float64
}

// searchPlan names the two mutually exclusive query-construction
// strategies, selected by the shape of the filters.
type searchPlan int

const (
	// planLocal filters on the backend via a locally built query.
	planLocal searchPlan = iota
	// planGeo delegates distance filtering to the remote procedure and
	// applies the remaining filters to its result.
	planGeo
)

// planFor selects the query plan: geo when latitude, longitude and max
// distance are all supplied, local otherwise.
func planFor(f SearchFilters) searchPlan {
	if f.UserLat != nil && f.UserLng != nil && f.MaxDistanceKM != nil {
		return planGeo
	}
	return planLocal
}

// SearchService answers activity searches over active activities.
type SearchService struct {
	activityRepo *repository.ActivityRepo
}

// NewSearchService constructs a SearchService.
func NewSearchService(activityRepo *repository.ActivityRepo) *SearchService {
	return &SearchService{activityRepo: activityRepo}
}

// Search runs the plan selected by the filters. On the geo plan the
// category, age and price filters are applied to the procedure's result
// here, so both plans honor the same criteria; only the distance predicate
// differs in where it is evaluated.
func (s *SearchService) Search(ctx context.Context, f SearchFilters) ([]model.Activity, error) {
	switch planFor(f) {
	case planGeo:
		activities, err := s.activityRepo.WithinDistance(ctx, *f.UserLat, *f.UserLng, *f.MaxDistanceKM)
		if err != nil {
			return nil, err
		}
		return applyLocalFilters(activities, f), nil
	default:
		activities, err := s.activityRepo.Search(ctx, repository.ActivityFilter{
			Category: f.Category,
			MinAge:   f.MinAge,
			MaxAge:   f.MaxAge,
			MaxPrice: f.MaxPrice,
		})
		if err != nil {
			return nil, err
		}
		if activities == nil {
			activities = []model.Activity{}
		}
		return activities, nil
	}
}

// applyLocalFilters evaluates the non-distance predicates in memory. The
// age range, as in the query plan, only applies when both bounds are set.
func applyLocalFilters(activities []model.Activity, f SearchFilters) []model.Activity {
	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if !a.IsActive {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.MinAge != nil && f.MaxAge != nil {
			if a.MinAge > *f.MaxAge || a.MaxAge < *f.MinAge {
				continue
			}
		}
		if f.MaxPrice != nil && a.PricePerMonth > *f.MaxPrice {
			continue
		}
		out = append(out, a)
	}
	return out
}
