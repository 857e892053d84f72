package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/famtivity/famtivity-api/internal/repository"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

func TestWaitlistSubmit(t *testing.T) {
	sb, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/v1/waitlist" {
			writeJSON(w, http.StatusNotFound, `{"message":"unexpected request"}`)
			return
		}
		writeJSON(w, http.StatusCreated, `{
			"id": 7,
			"email": "jane@example.com",
			"first_name": "Jane",
			"zip_code": "10001",
			"family_size": 4,
			"source": "website",
			"completed_onboarding": false
		}`)
	})
	svc := NewWaitlistService(repository.NewWaitlistRepo(sb), disabledEmail(t))

	entry, err := svc.Submit(context.Background(), WaitlistForm{
		Email:      "  Jane@Example.com ",
		FirstName:  "Jane",
		ZipCode:    "10001",
		FamilySize: "4",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if entry.ID != 7 || entry.Email != "jane@example.com" {
		t.Errorf("entry = %+v", entry)
	}

	req, ok := rec.find(http.MethodPost, "/rest/v1/waitlist")
	if !ok {
		t.Fatal("no insert request recorded")
	}
	var sent map[string]any
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("unmarshal sent body: %v", err)
	}
	if sent["email"] != "jane@example.com" {
		t.Errorf("sent email = %v, want lowercased and trimmed", sent["email"])
	}
	if sent["family_size"] != float64(4) {
		t.Errorf("sent family_size = %v, want 4", sent["family_size"])
	}
	if sent["source"] != "website" {
		t.Errorf("sent source = %v, want website", sent["source"])
	}
}

func TestWaitlistSubmitRejectsBadInput(t *testing.T) {
	sb, rec := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":1}`)
	})
	svc := NewWaitlistService(repository.NewWaitlistRepo(sb), disabledEmail(t))

	cases := []struct {
		name string
		form WaitlistForm
	}{
		{"missing email", WaitlistForm{Email: "", FamilySize: "2"}},
		{"email without at sign", WaitlistForm{Email: "jane.example.com", FamilySize: "2"}},
		{"non-numeric family size", WaitlistForm{Email: "jane@example.com", FamilySize: "four"}},
		{"zero family size", WaitlistForm{Email: "jane@example.com", FamilySize: "0"}},
		{"negative family size", WaitlistForm{Email: "jane@example.com", FamilySize: "-3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.form)
			if !supabase.IsKind(err, supabase.KindValidation) {
				t.Errorf("err = %v, want a validation error", err)
			}
		})
	}

	if got := len(rec.all()); got != 0 {
		t.Errorf("backend saw %d requests, want 0: rejected forms must not reach it", got)
	}
}

func TestWaitlistSubmitDuplicateEmail(t *testing.T) {
	sb, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"code":"23505","message":"duplicate key value violates unique constraint \"waitlist_email_key\""}`)
	})
	svc := NewWaitlistService(repository.NewWaitlistRepo(sb), disabledEmail(t))

	_, err := svc.Submit(context.Background(), WaitlistForm{Email: "jane@example.com", FamilySize: "4"})
	if !supabase.IsKind(err, supabase.KindConflict) {
		t.Errorf("err = %v, want a conflict error", err)
	}
}
