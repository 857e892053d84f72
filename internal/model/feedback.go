package model

import "time"

// ActivityFeedback is a family's review of one booking. Ratings are on a
// 1-5 scale. Feedback references the booking plus the family, child and
// activity so downstream reporting does not need joins.
type ActivityFeedback struct {
	ID             int64     `json:"id"`              // activity_feedback.id
	BookingID      int64     `json:"booking_id"`      // activity_feedback.booking_id
	FamilyID       int64     `json:"family_id"`       // activity_feedback.family_id
	ChildID        int64     `json:"child_id"`        // activity_feedback.child_id
	ActivityID     int64     `json:"activity_id"`     // activity_feedback.activity_id
	OverallRating  int       `json:"overall_rating"`  // activity_feedback.overall_rating
	ChildEnjoyment int       `json:"child_enjoyment"` // activity_feedback.child_enjoyment
	ValueForMoney  int       `json:"value_for_money"` // activity_feedback.value_for_money
	Comments       string    `json:"comments"`        // activity_feedback.comments
	CreatedAt      time.Time `json:"created_at"`      // activity_feedback.created_at
}
