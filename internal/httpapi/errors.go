package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/goliatone/go-tenant-api/resource"
)

// writeError maps service errors onto the HTTP surface: validation failures
// answer 400 with the ordered violation list, conflicts answer 409, and both
// absence and authorization denial answer 404. Anything else bubbles up to
// echo's error handler as a 500.
func writeError(c echo.Context, err error) error {
	var verr *resource.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, verr.Violations)
	}

	var cerr *resource.ConflictError
	if errors.As(err, &cerr) {
		return c.JSON(http.StatusConflict, map[string]string{"message": cerr.Message})
	}

	if errors.Is(err, resource.ErrNotFound) {
		return c.JSON(http.StatusNotFound, "Resource not found.")
	}

	return err
}
