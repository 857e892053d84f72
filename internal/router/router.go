// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/famtivity/famtivity-api/internal/config"
	"github.com/famtivity/famtivity-api/internal/handler"
	"github.com/famtivity/famtivity-api/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Waitlist   *handler.WaitlistHandler
	Onboarding *handler.OnboardingHandler
	Dashboard  *handler.DashboardHandler
	Search     *handler.SearchHandler
	Booking    *handler.BookingHandler
	Feedback   *handler.FeedbackHandler
}

// Register mounts all routes. Public routes: health, the sign-in
// redirect, the rate-limited waitlist form and the cached activity
// search. Everything touching a family's data sits behind session
// authentication, which is a pass-through when no JWT secret is
// configured.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.GET("/auth/google", h.Auth.GoogleSignIn)
	v1.POST("/waitlist", h.Waitlist.Submit, middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	v1.GET("/activities", h.Search.Search, middleware.ResponseCache(config.LoadCacheConfig(), rdb))

	session := v1.Group("", middleware.SessionAuth(cfg.SupabaseJWTSecret))
	session.GET("/dashboard", h.Dashboard.Get)
	session.POST("/onboarding", h.Onboarding.Complete)
	session.POST("/bookings", h.Booking.Book)
	session.POST("/bookings/:id/feedback", h.Feedback.Submit)
}
