package repository

import (
	"context"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// FeedbackRepo writes activity feedback rows. No local eligibility check
// is performed; whether a booking may be reviewed is a backend concern.
type FeedbackRepo struct {
	sb *supabase.Client
}

// NewFeedbackRepo returns a FeedbackRepo bound to the given backend client.
func NewFeedbackRepo(sb *supabase.Client) *FeedbackRepo { return &FeedbackRepo{sb: sb} }

// FeedbackRecord mirrors the insertable columns of activity_feedback.
type FeedbackRecord struct {
	BookingID      int64  `json:"booking_id"`
	FamilyID       int64  `json:"family_id"`
	ChildID        int64  `json:"child_id"`
	ActivityID     int64  `json:"activity_id"`
	OverallRating  int    `json:"overall_rating"`
	ChildEnjoyment int    `json:"child_enjoyment"`
	ValueForMoney  int    `json:"value_for_money"`
	Comments       string `json:"comments"`
}

// Create inserts one feedback row and returns the stored row.
func (r *FeedbackRepo) Create(ctx context.Context, rec FeedbackRecord) (*model.ActivityFeedback, error) {
	var out model.ActivityFeedback
	err := r.sb.From("activity_feedback").
		Insert(rec).
		Select("*").
		Single().
		Execute(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
