package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a backend failure into a closed set the rest of the
// application can act on. Handlers translate kinds to HTTP statuses.
type Kind int

const (
	// KindUnknown covers failures the client could not classify.
	KindUnknown Kind = iota
	// KindValidation marks malformed input, including rows rejected by
	// check or foreign-key constraints.
	KindValidation
	// KindConflict marks uniqueness violations and conflicting state.
	KindConflict
	// KindNotFound marks single-row reads that matched no row.
	KindNotFound
	// KindUnauthorized marks rejected credentials.
	KindUnauthorized
	// KindUnavailable marks transport failures and backend 5xx responses.
	KindUnavailable
)

// Error carries the structured failure context returned by the backend:
// the classified kind, the HTTP status, the backend's own error code
// (Postgres SQLSTATE or a PostgREST code) and its human-readable message.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Details string
	Hint    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend error %s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Invalid returns a validation error raised locally, before any backend
// call is made.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a backend *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == kind
}

// decodeError builds an *Error from a non-2xx backend response. The data
// API answers with a JSON object carrying message/code/details/hint; if the
// body is not in that shape the raw text becomes the message.
func decodeError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Details string `json:"details"`
		Hint    string `json:"hint"`
	}
	e := &Error{Status: status}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		e.Code = payload.Code
		e.Message = payload.Message
		e.Details = payload.Details
		e.Hint = payload.Hint
	} else {
		e.Message = strings.TrimSpace(string(body))
		if e.Message == "" {
			e.Message = http.StatusText(status)
		}
	}
	e.Kind = classify(status, e.Code)
	return e
}

// classify maps a status and backend error code to a Kind. Codes take
// precedence over the bare status because PostgREST reuses 4xx statuses
// across very different failures.
func classify(status int, code string) Kind {
	switch code {
	case "23505": // unique_violation
		return KindConflict
	case "23503", "23502", "23514", "22P02": // constraint and type violations
		return KindValidation
	case "PGRST116": // singular response with zero (or many) rows
		return KindNotFound
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindUnavailable
	}
	return KindUnknown
}
