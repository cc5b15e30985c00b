package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/goliatone/go-tenant-api/model"
	"github.com/goliatone/go-tenant-api/resource"
	"github.com/goliatone/go-tenant-api/storage"
)

const identityContextKey = "identity"

// identityMiddleware authenticates the caller via HTTP basic auth against the
// client store and attaches the resolved Identity to the request context.
// Everything past this middleware consumes the identity explicitly; no
// handler re-reads credentials.
func identityMiddleware(clients *storage.BunStore[model.Client]) echo.MiddlewareFunc {
	return middleware.BasicAuth(func(email, password string, c echo.Context) (bool, error) {
		client, err := clients.FindOne(c.Request().Context(), "email", email)
		if errors.Is(err, resource.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
			return false, nil
		}

		c.Set(identityContextKey, resource.Identity{ID: client.ID, Roles: client.Roles})
		return true, nil
	})
}

// identityFrom returns the Identity attached by identityMiddleware.
func identityFrom(c echo.Context) resource.Identity {
	ident, _ := c.Get(identityContextKey).(resource.Identity)
	return ident
}

// requireAdmin gates a route to admin callers. Unlike the tenant-scoped user
// rules, this is a coarse route guard and answers 403.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !identityFrom(c).IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "you don't have the right to access this resource")
		}
		return next(c)
	}
}
