package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/service"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// OnboardingHandler runs the waitlist-to-family onboarding sequence.
type OnboardingHandler struct {
	onboarding *service.OnboardingService
}

// NewOnboardingHandler constructs an OnboardingHandler.
func NewOnboardingHandler(onboarding *service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding}
}

// Complete handles POST /v1/onboarding. The body names the waitlist entry
// to promote, the family preferences and the children to register. The
// response carries the id of the created family profile. A failure leaves
// no partial writes behind; the sequence compensates internally.
func (h *OnboardingHandler) Complete(c echo.Context) error {
	var body struct {
		WaitlistID int64                `json:"waitlist_id"`
		Family     service.FamilyInput  `json:"family"`
		Children   []service.ChildInput `json:"children"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, supabase.Invalid("invalid request body"))
	}
	result, err := h.onboarding.Complete(c.Request().Context(), body.WaitlistID, body.Family, body.Children)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, result)
}
