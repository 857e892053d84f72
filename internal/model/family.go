package model

import "time"

// FamilyProfile holds the preferences captured during onboarding for one
// family. It references the waitlist entry it was created from and owns
// the family's children. Profiles are created exactly once by the
// onboarding sequence and read back by the dashboard with its waitlist
// email and children embedded.
//
// Fields:
//  ID                – primary key identifier.
//  WaitlistID        – waitlist entry this profile was onboarded from.
//  MonthlyBudget     – activity budget per month.
//  MaxTravelDistance – how far the family will travel, in kilometres.
//  PreferredTimes    – preferred time windows, e.g. "weekend_morning".
//  Waitlist          – embedded waitlist columns (dashboard read only).
//  Children          – embedded child records (dashboard read only).
//  CreatedAt         – creation timestamp.
type FamilyProfile struct {
	ID                int64          `json:"id"`                  // family_profiles.id
	WaitlistID        int64          `json:"waitlist_id"`         // family_profiles.waitlist_id
	MonthlyBudget     float64        `json:"monthly_budget"`      // family_profiles.monthly_budget
	MaxTravelDistance int            `json:"max_travel_distance"` // family_profiles.max_travel_distance
	PreferredTimes    []string       `json:"preferred_times"`     // family_profiles.preferred_times
	Waitlist          *WaitlistEmail `json:"waitlist,omitempty"`  // embedded waitlist!inner(email)
	Children          []Child        `json:"children,omitempty"`  // embedded children(*)
	CreatedAt         time.Time      `json:"created_at"`          // family_profiles.created_at
}

// WaitlistEmail is the slice of waitlist columns embedded into a dashboard
// profile read.
type WaitlistEmail struct {
	Email string `json:"email"` // waitlist.email
}

// Child is one child belonging to a family profile. The name is optional;
// families may register children anonymously.
//
// Fields:
//  ID          – primary key identifier.
//  FamilyID    – owning family profile.
//  Name        – child's name, nullable.
//  Age         – age in years.
//  Interests   – interest tags used for matching.
//  EnergyLevel – "low", "medium" or "high".
//  CreatedAt   – creation timestamp.
type Child struct {
	ID          int64     `json:"id"`           // children.id
	FamilyID    int64     `json:"family_id"`    // children.family_id
	Name        *string   `json:"name"`         // children.name (nullable)
	Age         int       `json:"age"`          // children.age
	Interests   []string  `json:"interests"`    // children.interests
	EnergyLevel string    `json:"energy_level"` // children.energy_level
	CreatedAt   time.Time `json:"created_at"`   // children.created_at
}
