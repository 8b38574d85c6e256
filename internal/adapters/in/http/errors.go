package http

import (
	"errors"
	"net/http"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error onto a status and an envelope category.
// businessStatus is the status a BusinessLogic error gets on the endpoint.
func statusFor(err error, businessStatus int) (int, string) {
	switch {
	case errs.KindOf(err) == errs.KindValidation,
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, errValidation
	case errs.KindOf(err) == errs.KindNotFound:
		return http.StatusNotFound, errNotFound
	case errs.KindOf(err) == errs.KindBusinessLogic:
		if businessStatus == http.StatusInternalServerError {
			return businessStatus, errInternal
		}
		return businessStatus, errBusinessLogic
	default:
		return http.StatusInternalServerError, errInternal
	}
}

func (s *Server) respondError(c echo.Context, err error, businessStatus int) error {
	status, category := statusFor(err, businessStatus)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(status, failure(category, err.Error()))
}

// HTTPErrorHandler renders errors raised by echo itself, such as unknown
// routes or unsupported methods, in the service envelope.
func (s *Server) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	details := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		details = http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok && msg != "" {
			details = msg
		}
	}

	category := errInternal
	switch {
	case status == http.StatusNotFound:
		category = errNotFound
	case status < http.StatusInternalServerError:
		category = errValidation
	default:
		s.logger.ErrorContext(c.Request().Context(), "unhandled error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, failure(category, details))
	}
	if err != nil {
		s.logger.Error("failed to write error response", "error", err)
	}
}
