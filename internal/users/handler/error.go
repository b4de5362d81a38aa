package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"usersvc/internal/users/model"
	"usersvc/internal/users/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, interface{}) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, model.ValidationFailedResponse{
			Success: false,
			Message: "Please correct the following fields:",
			Errors:  verr.Fields,
		}
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, model.MessageResponse{Message: "User not found"}
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, model.MessageResponse{Message: "User with this email already exists"}
	case errors.Is(err, service.ErrEmailInUse):
		return http.StatusBadRequest, model.MessageResponse{Message: "Email already exists with another user"}
	}

	return http.StatusInternalServerError, model.InternalErrorResponse{
		Success: false,
		Message: "Something went wrong, please check error message",
		Error:   err.Error(),
	}
}

// NewHTTPErrorHandler is the top-level boundary: anything not handled
// by a route gets a per-occurrence trace id, a log line carrying it,
// and a {traceId, code, message} body.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := uuid.NewString()
		status := http.StatusInternalServerError
		msg := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			msg = fmt.Sprintf("%v", he.Message)
		}

		logger.Error("unhandled error",
			"traceId", traceID,
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"status", status,
			"error", err,
		)

		_ = c.JSON(status, model.ErrorResponse{TraceID: traceID, Code: status, Message: msg})
	}
}
