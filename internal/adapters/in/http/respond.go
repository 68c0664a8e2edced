package http

import (
	"errors"
	"net/http"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// envelope wraps every response of the /api/v1 routes.
type envelope struct {
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Data        any               `json:"data,omitempty"`
}

func ok(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

// errorClass maps a use case error to its HTTP status and the result label
// used in metrics.
func errorClass(err error) (int, string) {
	switch {
	case errors.Is(err, kernel.ErrActorIsNotAuthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrStateIsInvalid), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, "conflict"
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity, "invalid"
	default:
		return http.StatusInternalServerError, "error"
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, _ := errorClass(err)
	body := envelope{Error: err.Error()}

	switch status {
	case http.StatusUnprocessableEntity:
		body.Error = "validation failed"
		body.FieldErrors = errs.Fields(err)
	case http.StatusInternalServerError:
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("route", ctx.Path()),
			zap.Error(err),
		)
		body.Error = internalErrorMessage
	}

	return ctx.JSON(status, body)
}
