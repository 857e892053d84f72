package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/service"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// FeedbackHandler records booking reviews.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit handles POST /v1/bookings/:id/feedback. The path names the
// booking; the body carries the associated ids, the three 1-5 ratings and
// free-text comments.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID < 1 {
		return respondError(c, supabase.Invalid("invalid booking id"))
	}
	var input service.FeedbackInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, supabase.Invalid("invalid request body"))
	}

	feedback, err := h.feedback.Submit(c.Request().Context(), bookingID, input)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, feedback)
}
