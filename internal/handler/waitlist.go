package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/service"
	"github.com/famtivity/famtivity-api/internal/supabase"
)

// WaitlistHandler accepts public waitlist signups.
type WaitlistHandler struct {
	waitlist *service.WaitlistService
}

// NewWaitlistHandler constructs a WaitlistHandler.
func NewWaitlistHandler(waitlist *service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlist: waitlist}
}

// Submit handles POST /v1/waitlist. The body carries the signup form;
// family_size is a string field and must parse to a positive integer.
// Returns 201 with the stored entry, 400 on validation failure, 409 when
// the backend schema rejects a duplicate email.
func (h *WaitlistHandler) Submit(c echo.Context) error {
	var form service.WaitlistForm
	if err := c.Bind(&form); err != nil {
		return respondError(c, supabase.Invalid("invalid request body"))
	}
	entry, err := h.waitlist.Submit(c.Request().Context(), form)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, entry)
}
