package repository

import (
	"context"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// FamilyRepo provides access to family profiles and their children. The
// profile must exist before any child referencing it is inserted; the
// onboarding service owns that sequencing and uses the delete methods to
// compensate when a later step fails.
type FamilyRepo struct {
	sb *supabase.Client
}

// NewFamilyRepo returns a FamilyRepo bound to the given backend client.
func NewFamilyRepo(sb *supabase.Client) *FamilyRepo { return &FamilyRepo{sb: sb} }

// FamilyProfileRecord mirrors the insertable columns of family_profiles.
type FamilyProfileRecord struct {
	WaitlistID        int64    `json:"waitlist_id"`
	MonthlyBudget     float64  `json:"monthly_budget"`
	MaxTravelDistance int      `json:"max_travel_distance"`
	PreferredTimes    []string `json:"preferred_times"`
}

// ChildRecord mirrors the insertable columns of children. Name is a
// pointer so an absent name is stored as NULL rather than an empty string.
type ChildRecord struct {
	FamilyID    int64    `json:"family_id"`
	Name        *string  `json:"name"`
	Age         int      `json:"age"`
	Interests   []string `json:"interests"`
	EnergyLevel string   `json:"energy_level"`
}

// CreateProfile inserts one family profile and returns the stored row,
// including the generated id the children inserts depend on.
func (r *FamilyRepo) CreateProfile(ctx context.Context, rec FamilyProfileRecord) (*model.FamilyProfile, error) {
	var out model.FamilyProfile
	err := r.sb.From("family_profiles").
		Insert(rec).
		Select("*").
		Single().
		Execute(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateChildren inserts one row per record in a single batch. Passing an
// empty slice has no effect and returns nil.
func (r *FamilyRepo) CreateChildren(ctx context.Context, children []ChildRecord) error {
	if len(children) == 0 {
		return nil
	}
	return r.sb.From("children").
		Insert(children).
		Execute(ctx, nil)
}

// DeleteProfile removes a family profile. Used only to compensate a failed
// onboarding sequence.
func (r *FamilyRepo) DeleteProfile(ctx context.Context, id int64) error {
	return r.sb.From("family_profiles").
		Delete().
		Eq("id", id).
		Execute(ctx, nil)
}

// DeleteChildrenByFamily removes every child of a family profile. Used only
// to compensate a failed onboarding sequence.
func (r *FamilyRepo) DeleteChildrenByFamily(ctx context.Context, familyID int64) error {
	return r.sb.From("children").
		Delete().
		Eq("family_id", familyID).
		Execute(ctx, nil)
}

// GetDashboardProfile fetches the profile owned by the waitlist entry with
// the given email, with the waitlist email and all children embedded. The
// inner join means a missing profile surfaces as a not-found error.
func (r *FamilyRepo) GetDashboardProfile(ctx context.Context, email string) (*model.FamilyProfile, error) {
	var out model.FamilyProfile
	err := r.sb.From("family_profiles").
		Select("*,waitlist!inner(email),children(*)").
		Eq("waitlist.email", email).
		Single().
		Execute(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
