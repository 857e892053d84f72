package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/supabase"
)

// Post-sign-in destinations, selected by deployment environment.
const (
	prodRedirectURL  = "https://famtivity.com/dashboard"
	localRedirectURL = "http://localhost:3000/dashboard"
)

// AuthHandler starts the hosted third-party sign-in flow.
type AuthHandler struct {
	sb  *supabase.Client
	env string
}

// NewAuthHandler constructs an AuthHandler for the given deployment
// environment.
func NewAuthHandler(sb *supabase.Client, env string) *AuthHandler {
	return &AuthHandler{sb: sb, env: env}
}

// GoogleSignIn handles GET /v1/auth/google. It builds the backend's
// Google authorize URL, with the callback chosen by deployment
// environment, and redirects the browser there. With ?redirect=false
// the URL is returned as JSON instead, for clients that drive the
// navigation themselves.
// Errors propagate to Echo's error handler rather than the envelope; this
// endpoint's contract is the redirect, not a data payload.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	authURL, err := h.sb.SignInWithGoogle(h.redirectTo())
	if err != nil {
		return err
	}
	if c.QueryParam("redirect") == "false" {
		return c.JSON(http.StatusOK, echo.Map{"provider": "google", "url": authURL})
	}
	return c.Redirect(http.StatusFound, authURL)
}

func (h *AuthHandler) redirectTo() string {
	if h.env == "production" {
		return prodRedirectURL
	}
	return localRedirectURL
}
