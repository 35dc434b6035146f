package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"courier/api/servers"
	"courier/internal/metrics"
	"courier/internal/pkg/errs"
)

// StatusCode maps an error kind to the HTTP status returned to the caller.
func StatusCode(kind errs.Kind) int {
	switch kind {
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindNoChange, errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidStatus:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope for a use case error. Internal errors are
// logged and reported without details.
func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	kind := errs.KindOf(err)
	metrics.OperationErrorsTotal.WithLabelValues(operation, kind.String()).Inc()

	message := err.Error()
	if kind == errs.KindInternal {
		s.logger.ErrorContext(ctx.Request().Context(), "operation failed",
			"operation", operation,
			"error", err,
		)
		message = "Internal server error"
	}

	return ctx.JSON(StatusCode(kind), servers.ErrorEnvelope{Message: message})
}

// ErrorHandler renders errors that escape the handlers (routing, auth,
// contract validation, panics) in the response envelope.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.ErrorEnvelope{Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
