package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	appDomain "edulend-backend/internal/domain/application"
	docDomain "edulend-backend/internal/domain/document"

	"github.com/labstack/echo/v4"
)

// ---- response envelopes ----

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type pagination struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type listEnvelope struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination pagination `json:"pagination"`
}

func ok(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, envelope{Success: true, Data: data, Message: message})
}

func okList(c echo.Context, data any, total int64, limit, offset int) error {
	if limit <= 0 {
		limit = 20
	}
	return c.JSON(http.StatusOK, listEnvelope{
		Success:    true,
		Data:       data,
		Pagination: pagination{Total: total, Limit: limit, Offset: offset},
	})
}

// fail maps domain errors to HTTP statuses. Unexpected errors are logged and
// surfaced as a generic failure rather than swallowed.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrNotFound), errors.Is(err, docDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrInvalidInput), errors.Is(err, appDomain.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("unexpected error on %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// ---- query parsing ----

func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func queryDate(c echo.Context, name string) *time.Time {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	return nil
}
