package repository

import (
	"context"

	"github.com/famtivity/famtivity-api/internal/model"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// WaitlistRepo provides access to the waitlist table. Signups are inserted
// by the public form; the onboarding sequence later promotes an entry by
// setting its role and completion flag. Uniqueness of the email column is
// a backend schema concern, not enforced here.
type WaitlistRepo struct {
	sb *supabase.Client
}

// NewWaitlistRepo returns a WaitlistRepo bound to the given backend client.
func NewWaitlistRepo(sb *supabase.Client) *WaitlistRepo { return &WaitlistRepo{sb: sb} }

// WaitlistRecord mirrors the insertable columns of the waitlist table.
// Server-generated columns (id, created_at, defaults) are left out so the
// backend fills them in.
type WaitlistRecord struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	ZipCode    string `json:"zip_code"`
	FamilySize int    `json:"family_size"`
	Source     string `json:"source"`
}

// Create inserts one waitlist entry and returns the stored row.
func (r *WaitlistRepo) Create(ctx context.Context, rec WaitlistRecord) (*model.WaitlistEntry, error) {
	var out model.WaitlistEntry
	err := r.sb.From("waitlist").
		Insert(rec).
		Select("*").
		Single().
		Execute(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkOnboarded sets the entry's role and flips its completion flag. It is
// the final step of the onboarding sequence.
func (r *WaitlistRepo) MarkOnboarded(ctx context.Context, id int64, role string) error {
	patch := map[string]any{
		"user_role":            role,
		"completed_onboarding": true,
	}
	return r.sb.From("waitlist").
		Update(patch).
		Eq("id", id).
		Execute(ctx, nil)
}
