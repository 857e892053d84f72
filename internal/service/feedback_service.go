package service

import (
	"context"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/repository"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// FeedbackInput carries the ids and ratings for one booking review.
// Ratings use a 1-5 scale.
type FeedbackInput struct {
	FamilyID       int64  `json:"family_id"`
	ChildID        int64  `json:"child_id"`
	ActivityID     int64  `json:"activity_id"`
	OverallRating  int    `json:"overall_rating"`
	ChildEnjoyment int    `json:"child_enjoyment"`
	ValueForMoney  int    `json:"value_for_money"`
	Comments       string `json:"comments"`
}

// FeedbackService writes booking reviews. Whether the booking is eligible
// for feedback (completed, owned by the family) is a backend concern.
type FeedbackService struct {
	repo *repository.FeedbackRepo
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(repo *repository.FeedbackRepo) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// Submit validates ratings and inserts one feedback row for the booking.
func (s *FeedbackService) Submit(ctx context.Context, bookingID int64, input FeedbackInput) (*model.ActivityFeedback, error) {
	if bookingID < 1 {
		return nil, supabase.Invalid("booking id must be a positive integer")
	}
	if input.FamilyID < 1 || input.ChildID < 1 || input.ActivityID < 1 {
		return nil, supabase.Invalid("family, child and activity ids must be positive integers")
	}
	for _, rating := range []int{input.OverallRating, input.ChildEnjoyment, input.ValueForMoney} {
		if rating < 1 || rating > 5 {
			return nil, supabase.Invalid("ratings must be between 1 and 5")
		}
	}

	return s.repo.Create(ctx, repository.FeedbackRecord{
		BookingID:      bookingID,
		FamilyID:       input.FamilyID,
		ChildID:        input.ChildID,
		ActivityID:     input.ActivityID,
		OverallRating:  input.OverallRating,
		ChildEnjoyment: input.ChildEnjoyment,
		ValueForMoney:  input.ValueForMoney,
		Comments:       input.Comments,
	})
}
