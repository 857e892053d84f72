package repository

import (
	"context"
	"strconv"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// RecommendationRepo reads the activity_recommendations table produced by
// the backend's matching job. This service never writes to it.
type RecommendationRepo struct {
	sb *supabase.Client
}

// NewRecommendationRepo returns a RecommendationRepo bound to the given
// backend client.
func NewRecommendationRepo(sb *supabase.Client) *RecommendationRepo {
	return &RecommendationRepo{sb: sb}
}

// TopForChildren returns up to limit recommendations for the given set of
// children, best match first, with the activity embedded. An empty id set
// yields an empty result without a backend call.
func (r *RecommendationRepo) TopForChildren(ctx context.Context, childIDs []int64, limit int) ([]model.Recommendation, error) {
	if len(childIDs) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(childIDs))
	for _, id := range childIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	var out []model.Recommendation
	err := r.sb.From("activity_recommendations").
		Select("*,activities(*)").
		In("child_id", ids).
		Order("match_score", false).
		Limit(limit).
		Execute(ctx, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
