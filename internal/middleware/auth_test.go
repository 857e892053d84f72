package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signSession(t *testing.T, secret, sub, email string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
	})
	raw, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func runSessionAuth(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}
	if err := SessionAuth(secret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c, nextCalled
}

func TestSessionAuthValidToken(t *testing.T) {
	token := signSession(t, "project-secret", "user-1", "jane@example.com")
	rec, c, nextCalled := runSessionAuth(t, "project-secret", "Bearer "+token)

	if !nextCalled {
		t.Fatal("next handler not called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got := SessionEmail(c); got != "jane@example.com" {
		t.Errorf("SessionEmail = %q", got)
	}
	if got := c.Get(ContextUserID); got != "user-1" {
		t.Errorf("user id = %v", got)
	}
}

func TestSessionAuthMissingToken(t *testing.T) {
	rec, _, nextCalled := runSessionAuth(t, "project-secret", "")

	if nextCalled {
		t.Fatal("next handler called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["success"] != false {
		t.Errorf("body = %v, want a failure envelope", body)
	}
}

func TestSessionAuthWrongSecret(t *testing.T) {
	token := signSession(t, "other-secret", "user-1", "jane@example.com")
	rec, _, nextCalled := runSessionAuth(t, "project-secret", "Bearer "+token)

	if nextCalled {
		t.Fatal("next handler called for a token signed with the wrong secret")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthPassThroughWithoutSecret(t *testing.T) {
	rec, c, nextCalled := runSessionAuth(t, "", "")

	if !nextCalled {
		t.Fatal("next handler not called in pass-through mode")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got := SessionEmail(c); got != "" {
		t.Errorf("SessionEmail = %q, want empty in pass-through mode", got)
	}
}
