package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/goliatone/go-tenant-api/resource"
)

// resourceHandler adapts one resource service to the HTTP route table. The
// bind function is replaceable for kinds whose payloads need extra handling
// (client passwords).
type resourceHandler[T any] struct {
	svc  *resource.Service[T]
	bind func(c echo.Context) (T, error)
}

func newResourceHandler[T any](svc *resource.Service[T]) *resourceHandler[T] {
	return &resourceHandler[T]{
		svc: svc,
		bind: func(c echo.Context) (T, error) {
			var payload T
			err := c.Bind(&payload)
			return payload, err
		},
	}
}

func (h *resourceHandler[T]) list(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	body, err := h.svc.List(c.Request().Context(), identityFrom(c), resource.Pagination{Page: page, Limit: limit})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *resourceHandler[T]) detail(c echo.Context) error {
	body, err := h.svc.Detail(c.Request().Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *resourceHandler[T]) create(c echo.Context) error {
	payload, err := h.bind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	record, err := h.svc.Create(c.Request().Context(), identityFrom(c), payload)
	if err != nil {
		return writeError(c, err)
	}

	body, err := h.svc.Encode(record)
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/"+h.svc.Name()+"/"+h.svc.ID(record))
	return c.JSONBlob(http.StatusCreated, body)
}

func (h *resourceHandler[T]) update(c echo.Context) error {
	payload, err := h.bind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if _, err := h.svc.Update(c.Request().Context(), identityFrom(c), c.Param("id"), payload); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *resourceHandler[T]) delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), identityFrom(c), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
