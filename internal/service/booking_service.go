package service

import (
	"context"
	"log"
	"time"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/queue"
	"github.com/famtivity/famtivity-api/internal/repository"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// BookingService creates bookings. Status is always forced to pending
// regardless of caller intent; confirmation is a backend workflow. No
// availability or capacity check happens locally.
type BookingService struct {
	repo *repository.BookingRepo
}

// NewBookingService constructs a BookingService.
func NewBookingService(repo *repository.BookingRepo) *BookingService {
	return &BookingService{repo: repo}
}

// Book inserts one pending booking and announces it on the message queue.
// Publishing is best effort and never fails the booking.
func (s *BookingService) Book(ctx context.Context, familyID, activityID, childID int64, startDate time.Time) (*model.Booking, error) {
	if familyID < 1 || activityID < 1 || childID < 1 {
		return nil, supabase.Invalid("family, activity and child ids must be positive integers")
	}
	if startDate.IsZero() {
		return nil, supabase.Invalid("start date is required")
	}

	booking, err := s.repo.Create(ctx, repository.BookingRecord{
		FamilyID:   familyID,
		ActivityID: activityID,
		ChildID:    childID,
		Status:     model.BookingStatusPending,
		StartDate:  startDate,
	})
	if err != nil {
		return nil, err
	}

	event := queue.BookingCreatedEvent{
		BookingID:  booking.ID,
		FamilyID:   booking.FamilyID,
		ActivityID: booking.ActivityID,
		ChildID:    booking.ChildID,
		Status:     booking.Status,
		StartDate:  booking.StartDate.UTC().Format(time.RFC3339),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue.PublishBookingCreated(ctx, event); err != nil {
		log.Printf("booking: event publish for booking %d failed: %v", booking.ID, err)
	}

	return booking, nil
}
