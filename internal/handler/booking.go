package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/service"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// BookingHandler creates bookings.
type BookingHandler struct {
	booking *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(booking *service.BookingService) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// Book handles POST /v1/bookings. The body names the family, activity and
// child plus an RFC 3339 start date. The stored booking always comes back
// in pending status; any status in the request is ignored.
func (h *BookingHandler) Book(c echo.Context) error {
	var body struct {
		FamilyID   int64  `json:"family_id"`
		ActivityID int64  `json:"activity_id"`
		ChildID    int64  `json:"child_id"`
		StartDate  string `json:"start_date"`
	}
	if err := c.Bind(&body); err != nil {
		return respondError(c, supabase.Invalid("invalid request body"))
	}
	startDate, err := time.Parse(time.RFC3339, body.StartDate)
	if err != nil {
		return respondError(c, supabase.Invalid("start_date must be an RFC 3339 timestamp"))
	}

	booking, err := h.booking.Book(c.Request().Context(), body.FamilyID, body.ActivityID, body.ChildID, startDate)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, booking)
}
