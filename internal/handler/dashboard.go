package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/middleware"
	"github.com/famtivity/famtivity-api/internal/service"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// DashboardHandler serves the aggregated family dashboard.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get handles GET /v1/dashboard. The family is identified by the
// authenticated session's email claim; deployments running without
// session verification fall back to the email query parameter. Partial
// dashboards are never returned; any failed read yields the error
// envelope.
func (h *DashboardHandler) Get(c echo.Context) error {
	email := middleware.SessionEmail(c)
	if email == "" {
		email = c.QueryParam("email")
	}
	if email == "" {
		return respondError(c, supabase.Invalid("email is required"))
	}
	dashboard, err := h.dashboard.ForEmail(c.Request().Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, dashboard)
}
