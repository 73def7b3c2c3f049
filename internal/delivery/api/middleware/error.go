package middleware

import (
	"log/slog"
	"net/http"

	"brandhub/internal/delivery/api/response"
	deliverycontext "brandhub/internal/delivery/context"
	domainerrors "brandhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnexpected(c, err)
		}
		// Only the predefined message reaches the client
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Routing errors: unknown path, wrong method, oversized body
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnexpected(c, err)
			_ = response.InternalServerError(c, domainerrors.ErrInternalError.Message())

			return
		}

		if httpErr.Code == http.StatusNotFound {
			_ = response.NotFound(c, domainerrors.ErrNotFound.Message())

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logUnexpected(c, err)
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logUnexpected(c echo.Context, err error) {
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
