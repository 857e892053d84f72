package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/repository"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

const (
	dashboardRecommendationLimit = 10
	dashboardBookingLimit        = 5
)

// Dashboard is the merged response shape for a family's landing page.
type Dashboard struct {
	Family           *model.FamilyProfile   `json:"family"`
	Recommendations  []model.Recommendation `json:"recommendations"`
	UpcomingBookings []model.Booking        `json:"upcomingBookings"`
}

// DashboardService aggregates the three dashboard reads: the family
// profile (with waitlist email and children embedded), the top ranked
// recommendations for the family's children, and the next confirmed
// bookings. Partial dashboards are never returned; the first failed read
// aborts the aggregation.
type DashboardService struct {
	familyRepo  *repository.FamilyRepo
	recRepo     *repository.RecommendationRepo
	bookingRepo *repository.BookingRepo
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(familyRepo *repository.FamilyRepo, recRepo *repository.RecommendationRepo, bookingRepo *repository.BookingRepo) *DashboardService {
	return &DashboardService{familyRepo: familyRepo, recRepo: recRepo, bookingRepo: bookingRepo}
}

// ForEmail builds the dashboard for the family owned by the waitlist entry
// with the given email. The profile read comes first because the other two
// depend on its output; those two have no ordering dependency on each
// other and are issued concurrently.
func (s *DashboardService) ForEmail(ctx context.Context, email string) (*Dashboard, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, supabase.Invalid("email is required")
	}

	profile, err := s.familyRepo.GetDashboardProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	childIDs := make([]int64, 0, len(profile.Children))
	for _, child := range profile.Children {
		childIDs = append(childIDs, child.ID)
	}

	var (
		wg       sync.WaitGroup
		recs     []model.Recommendation
		bookings []model.Booking
		recErr   error
		bookErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		recs, recErr = s.recRepo.TopForChildren(ctx, childIDs, dashboardRecommendationLimit)
	}()
	go func() {
		defer wg.Done()
		bookings, bookErr = s.bookingRepo.UpcomingConfirmed(ctx, profile.ID, time.Now(), dashboardBookingLimit)
	}()
	wg.Wait()

	if recErr != nil {
		return nil, recErr
	}
	if bookErr != nil {
		return nil, bookErr
	}

	if recs == nil {
		recs = []model.Recommendation{}
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return &Dashboard{
		Family:           profile,
		Recommendations:  recs,
		UpcomingBookings: bookings,
	}, nil
}
