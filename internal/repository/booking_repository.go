package repository

import (
	"context"
	"time"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// BookingRepo provides access to the bookings table. Referential integrity
// of the family, activity and child ids is enforced by the backend schema;
// a dangling reference comes back as a validation error.
type BookingRepo struct {
	sb *supabase.Client
}

// NewBookingRepo returns a BookingRepo bound to the given backend client.
func NewBookingRepo(sb *supabase.Client) *BookingRepo { return &BookingRepo{sb: sb} }

// BookingRecord mirrors the insertable columns of bookings.
type BookingRecord struct {
	FamilyID   int64     `json:"family_id"`
	ActivityID int64     `json:"activity_id"`
	ChildID    int64     `json:"child_id"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"start_date"`
}

// Create inserts one booking and returns the stored row.
func (r *BookingRepo) Create(ctx context.Context, rec BookingRecord) (*model.Booking, error) {
	var out model.Booking
	err := r.sb.From("bookings").
		Insert(rec).
		Select("*").
		Single().
		Execute(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpcomingConfirmed returns up to limit confirmed bookings for a family
// starting at or after from, soonest first, with the activity and child
// embedded.
func (r *BookingRepo) UpcomingConfirmed(ctx context.Context, familyID int64, from time.Time, limit int) ([]model.Booking, error) {
	var out []model.Booking
	err := r.sb.From("bookings").
		Select("*,activities(*),children(*)").
		Eq("family_id", familyID).
		Eq("status", model.BookingStatusConfirmed).
		Gte("start_date", from.UTC().Format(time.RFC3339)).
		Order("start_date", true).
		Limit(limit).
		Execute(ctx, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
