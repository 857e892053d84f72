package service

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/famtivity/famtivity-api/internal/supabase"
)

// backendRequest is one request the fake backend observed.
type backendRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// backendRecorder collects requests from the fake backend. The dashboard
// service issues reads concurrently, so recording is mutex-guarded.
type backendRecorder struct {
	mu       sync.Mutex
	requests []backendRequest
}

func (rec *backendRecorder) add(r backendRequest) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.requests = append(rec.requests, r)
}

func (rec *backendRecorder) all() []backendRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]backendRequest, len(rec.requests))
	copy(out, rec.requests)
	return out
}

// find returns the first recorded request with the given method and path.
func (rec *backendRecorder) find(method, path string) (backendRequest, bool) {
	for _, r := range rec.all() {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return backendRequest{}, false
}

func (rec *backendRecorder) count(method, path string) int {
	n := 0
	for _, r := range rec.all() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// newBackend starts a fake data backend that records every request before
// delegating to h, and returns a client pointed at it.
func newBackend(t *testing.T, h http.HandlerFunc) (*supabase.Client, *backendRecorder) {
	t.Helper()
	rec := &backendRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.add(backendRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   body,
		})
		r.Body = io.NopCloser(bytes.NewReader(body))
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return supabase.New(srv.URL, "test-key"), rec
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// disabledEmail returns an EmailService that never talks to SES.
func disabledEmail(t *testing.T) *EmailService {
	t.Helper()
	email, err := NewEmailService("us-east-1", "", "")
	if err != nil {
		t.Fatalf("NewEmailService: %v", err)
	}
	return email
}
