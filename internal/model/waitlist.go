package model

import "time"

// UserRoleFamily is the role written to a waitlist entry once its
// onboarding sequence completes.
const UserRoleFamily = "family"

// WaitlistEntry is a prospective user's signup record prior to full
// onboarding. Entries are created by the public waitlist form and later
// promoted by the onboarding sequence, which sets the role and the
// completion flag. Entries are never deleted by this service.
//
// Fields:
//  ID                  – primary key identifier.
//  Email               – signup email, unique on the backend.
//  FirstName           – first name as typed into the form.
//  ZipCode             – home zip code used for matching.
//  FamilySize          – number of people in the household.
//  Source              – acquisition tag, always "website" for this service.
//  UserRole            – role granted after onboarding ("family").
//  CompletedOnboarding – true once the onboarding sequence has finished.
//  CreatedAt           – creation timestamp.
type WaitlistEntry struct {
	ID                  int64     `json:"id"`                   // waitlist.id
	Email               string    `json:"email"`                // waitlist.email
	FirstName           string    `json:"first_name"`           // waitlist.first_name
	ZipCode             string    `json:"zip_code"`             // waitlist.zip_code
	FamilySize          int       `json:"family_size"`          // waitlist.family_size
	Source              string    `json:"source"`               // waitlist.source
	UserRole            string    `json:"user_role"`            // waitlist.user_role (nullable)
	CompletedOnboarding bool      `json:"completed_onboarding"` // waitlist.completed_onboarding
	CreatedAt           time.Time `json:"created_at"`           // waitlist.created_at
}
