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

// waitlistSource tags every signup created through this service.
const waitlistSource = "website"

// WaitlistForm is the raw signup form. FamilySize arrives as a string and
// must parse to a positive integer; a malformed value is rejected instead
// of being passed through.
type WaitlistForm struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	ZipCode    string `json:"zip_code"`
	FamilySize string `json:"family_size"`
}

// WaitlistService handles public waitlist signups. A successful insert
// triggers a best-effort welcome email that never fails the signup.
type WaitlistService struct {
	repo  *repository.WaitlistRepo
	email *EmailService
}

// NewWaitlistService constructs a WaitlistService. The email service may
// be a disabled instance but must not be nil.
func NewWaitlistService(repo *repository.WaitlistRepo, email *EmailService) *WaitlistService {
	return &WaitlistService{repo: repo, email: email}
}

// Submit validates the form and inserts one waitlist entry. Duplicate
// emails surface as whatever the backend schema dictates: a second row, or
// a conflict error when a uniqueness constraint exists.
func (s *WaitlistService) Submit(ctx context.Context, form WaitlistForm) (*model.WaitlistEntry, error) {
	email := strings.ToLower(strings.TrimSpace(form.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, supabase.Invalid("a valid email is required")
	}
	size, err := strconv.Atoi(strings.TrimSpace(form.FamilySize))
	if err != nil || size < 1 {
		return nil, supabase.Invalid("family size must be a positive integer")
	}

	rec := repository.WaitlistRecord{
		Email:      email,
		FirstName:  strings.TrimSpace(form.FirstName),
		ZipCode:    strings.TrimSpace(form.ZipCode),
		FamilySize: size,
		Source:     waitlistSource,
	}
	entry, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	if err := s.email.SendWaitlistWelcome(ctx, entry.Email, entry.FirstName); err != nil {
		log.Printf("waitlist: welcome email to %s failed: %v", entry.Email, err)
	}
	return entry, nil
}
