package supabase

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   string
		want   Kind
	}{
		{"unique violation", http.StatusConflict, "23505", KindConflict},
		{"foreign key violation", http.StatusConflict, "23503", KindValidation},
		{"not null violation", http.StatusBadRequest, "23502", KindValidation},
		{"check violation", http.StatusBadRequest, "23514", KindValidation},
		{"invalid text representation", http.StatusBadRequest, "22P02", KindValidation},
		{"singular mismatch", http.StatusNotAcceptable, "PGRST116", KindNotFound},
		{"bare unauthorized", http.StatusUnauthorized, "", KindUnauthorized},
		{"bare forbidden", http.StatusForbidden, "", KindUnauthorized},
		{"bare not found", http.StatusNotFound, "", KindNotFound},
		{"bare conflict", http.StatusConflict, "", KindConflict},
		{"bare bad request", http.StatusBadRequest, "", KindValidation},
		{"server error", http.StatusInternalServerError, "", KindUnavailable},
		{"bad gateway", http.StatusBadGateway, "", KindUnavailable},
		{"teapot", http.StatusTeapot, "", KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.status, tc.code); got != tc.want {
				t.Errorf("classify(%d, %q) = %v, want %v", tc.status, tc.code, got, tc.want)
			}
		})
	}
}

func TestDecodeErrorStructuredBody(t *testing.T) {
	body := []byte(`{"code":"23505","message":"duplicate key value violates unique constraint","details":"Key (email) already exists.","hint":""}`)
	e := decodeError(http.StatusConflict, body)
	if e.Kind != KindConflict {
		t.Errorf("Kind = %v, want KindConflict", e.Kind)
	}
	if e.Code != "23505" {
		t.Errorf("Code = %q", e.Code)
	}
	if e.Details != "Key (email) already exists." {
		t.Errorf("Details = %q", e.Details)
	}
	if e.Status != http.StatusConflict {
		t.Errorf("Status = %d", e.Status)
	}
}

func TestDecodeErrorPlainBody(t *testing.T) {
	e := decodeError(http.StatusBadGateway, []byte("upstream unavailable\n"))
	if e.Kind != KindUnavailable {
		t.Errorf("Kind = %v, want KindUnavailable", e.Kind)
	}
	if e.Message != "upstream unavailable" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestDecodeErrorEmptyBody(t *testing.T) {
	e := decodeError(http.StatusNotFound, nil)
	if e.Message != http.StatusText(http.StatusNotFound) {
		t.Errorf("Message = %q", e.Message)
	}
	if e.Kind != KindNotFound {
		t.Errorf("Kind = %v, want KindNotFound", e.Kind)
	}
}

func TestIsKind(t *testing.T) {
	err := Invalid("family_size must be at least 1")
	if !IsKind(err, KindValidation) {
		t.Error("Invalid() should classify as KindValidation")
	}
	if IsKind(err, KindConflict) {
		t.Error("Invalid() should not match KindConflict")
	}
	if IsKind(errors.New("plain"), KindValidation) {
		t.Error("plain errors should not match any kind")
	}
}
