package service

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/repository"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// FamilyInput is the onboarding form's family section. MaxTravel arrives
// as a string and must parse to a non-negative integer.
type FamilyInput struct {
	MonthlyBudget  float64  `json:"monthly_budget"`
	MaxTravel      string   `json:"max_travel"`
	PreferredTimes []string `json:"preferred_times"`
}

// ChildInput is one child in the onboarding form. Age arrives as a string
// and must parse to a non-negative integer; the name may be empty.
type ChildInput struct {
	Name        string   `json:"name"`
	Age         string   `json:"age"`
	Interests   []string `json:"interests"`
	EnergyLevel string   `json:"energy_level"`
}

// OnboardingResult is returned on success and carries the id of the newly
// created family profile.
type OnboardingResult struct {
	FamilyID int64 `json:"familyId"`
}

// OnboardingService converts a waitlist entry into an active family
// account: profile insert, children batch insert, waitlist promotion. The
// backend offers no client-side transaction across these writes, so the
// sequence compensates on failure: when a later step fails, the children
// and the profile written so far are deleted before the error is reported.
// The caller therefore observes all-or-nothing behavior.
type OnboardingService struct {
	familyRepo   *repository.FamilyRepo
	waitlistRepo *repository.WaitlistRepo
}

// NewOnboardingService constructs an OnboardingService.
func NewOnboardingService(familyRepo *repository.FamilyRepo, waitlistRepo *repository.WaitlistRepo) *OnboardingService {
	return &OnboardingService{familyRepo: familyRepo, waitlistRepo: waitlistRepo}
}

// Complete runs the three-step onboarding sequence for the given waitlist
// entry. Exactly one child row is written per entry in children, each
// referencing the profile created in step one. The waitlist entry's role
// and completion flag are only set when every earlier step succeeded.
func (s *OnboardingService) Complete(ctx context.Context, waitlistID int64, family FamilyInput, children []ChildInput) (*OnboardingResult, error) {
	if waitlistID < 1 {
		return nil, supabase.Invalid("waitlist id must be a positive integer")
	}
	maxTravel, err := strconv.Atoi(strings.TrimSpace(family.MaxTravel))
	if err != nil || maxTravel < 0 {
		return nil, supabase.Invalid("max travel distance must be a non-negative integer")
	}
	childRecords := make([]repository.ChildRecord, 0, len(children))
	for i, child := range children {
		age, err := strconv.Atoi(strings.TrimSpace(child.Age))
		if err != nil || age < 0 {
			return nil, supabase.Invalid("child %d: age must be a non-negative integer", i+1)
		}
		rec := repository.ChildRecord{
			Age:         age,
			Interests:   child.Interests,
			EnergyLevel: child.EnergyLevel,
		}
		if name := strings.TrimSpace(child.Name); name != "" {
			rec.Name = &name
		}
		childRecords = append(childRecords, rec)
	}

	// Step 1: family profile.
	profile, err := s.familyRepo.CreateProfile(ctx, repository.FamilyProfileRecord{
		WaitlistID:        waitlistID,
		MonthlyBudget:     family.MonthlyBudget,
		MaxTravelDistance: maxTravel,
		PreferredTimes:    family.PreferredTimes,
	})
	if err != nil {
		return nil, err
	}

	// Step 2: children, each referencing the profile from step 1.
	for i := range childRecords {
		childRecords[i].FamilyID = profile.ID
	}
	if err := s.familyRepo.CreateChildren(ctx, childRecords); err != nil {
		s.compensate(ctx, profile.ID)
		return nil, err
	}

	// Step 3: promote the waitlist entry.
	if err := s.waitlistRepo.MarkOnboarded(ctx, waitlistID, model.UserRoleFamily); err != nil {
		s.compensate(ctx, profile.ID)
		return nil, err
	}

	return &OnboardingResult{FamilyID: profile.ID}, nil
}

// compensate deletes the rows written by earlier steps of a failed
// sequence, children first to respect the foreign key. Compensation
// failures are logged, not returned: the original step error is what the
// caller needs, and a leftover profile is exactly the state the sequence
// exists to avoid, so it is at least made visible.
func (s *OnboardingService) compensate(ctx context.Context, familyID int64) {
	if err := s.familyRepo.DeleteChildrenByFamily(ctx, familyID); err != nil {
		log.Printf("onboarding: compensation failed deleting children of family %d: %v", familyID, err)
	}
	if err := s.familyRepo.DeleteProfile(ctx, familyID); err != nil {
		log.Printf("onboarding: compensation failed deleting family profile %d: %v", familyID, err)
	}
}
