// Package handler exposes the data-access operations over HTTP. Every
// endpoint answers with the same two-shape envelope: {"success":true,
// "data":...} or {"success":false,"error":"..."}. The auth redirect is
// the one exception; it propagates instead of enveloping.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famtivity/famtivity-api/internal/supabase"
)

// respondData writes the success envelope.
func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// respondError converts an error into the failure envelope, translating
// backend error kinds to HTTP statuses. Unclassified errors become 500s.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	var be *supabase.Error
	if errors.As(err, &be) {
		switch be.Kind {
		case supabase.KindValidation:
			status = http.StatusBadRequest
		case supabase.KindConflict:
			status = http.StatusConflict
		case supabase.KindNotFound:
			status = http.StatusNotFound
		case supabase.KindUnauthorized:
			status = http.StatusUnauthorized
		case supabase.KindUnavailable:
			status = http.StatusBadGateway
		}
	}
	return c.JSON(status, echo.Map{"success": false, "error": err.Error()})
}
