package httpapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/goliatone/go-tenant-api/model"
	"github.com/goliatone/go-tenant-api/pkg/di"
	"github.com/goliatone/go-tenant-api/resource"
)

// Server exposes the resource services over HTTP.
type Server struct {
	echo *echo.Echo
}

// New builds the HTTP server and its route table. Products are readable by
// everyone authenticated but mutable only by admins; clients are admin-only
// throughout; users are open to any authenticated client and tenant-scoped
// by the service itself.
func New(container *di.Container, log *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	api := e.Group("/api", identityMiddleware(container.ClientStore()))

	products := newResourceHandler(container.Products())
	api.GET("/products", products.list)
	api.GET("/products/:id", products.detail)
	api.POST("/products", products.create, requireAdmin)
	api.PUT("/products/:id", products.update, requireAdmin)
	api.DELETE("/products/:id", products.delete, requireAdmin)

	clients := newClientHandler(container.Clients())
	api.GET("/clients", clients.list, requireAdmin)
	api.GET("/clients/:id", clients.detail, requireAdmin)
	api.POST("/clients", clients.create, requireAdmin)
	api.PUT("/clients/:id", clients.update, requireAdmin)
	api.DELETE("/clients/:id", clients.delete, requireAdmin)

	users := newResourceHandler(container.Users())
	api.GET("/users", users.list)
	api.GET("/users/:id", users.detail)
	api.POST("/users", users.create)
	api.PUT("/users/:id", users.update)
	api.DELETE("/users/:id", users.delete)

	return &Server{echo: e}
}

// newClientHandler wraps the generic handler with a bind step that hashes the
// supplied password and forces the standard role. Hashes never come from
// payloads and never appear in responses.
func newClientHandler(svc *resource.Service[model.Client]) *resourceHandler[model.Client] {
	h := newResourceHandler(svc)
	h.bind = func(c echo.Context) (model.Client, error) {
		var payload struct {
			model.Client
			Password string `json:"password"`
		}
		if err := c.Bind(&payload); err != nil {
			return model.Client{}, err
		}

		client := payload.Client
		client.PasswordHash = ""
		if payload.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
			if err != nil {
				return model.Client{}, err
			}
			client.PasswordHash = string(hash)
		}
		client.Roles = model.RoleList{resource.RoleStandard}
		return client, nil
	}
	return h
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info("request",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Response().Status),
				slog.String("caller", identityFrom(c).ID),
				slog.Duration("duration", time.Since(start)),
			)
			return nil
		}
	}
}

// Start begins serving on addr.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler, mainly for tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}
