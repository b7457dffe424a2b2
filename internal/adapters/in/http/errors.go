package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// nonFieldErrors keys validation messages that carry no field name.
const nonFieldErrors = "non_field_errors"

type detailBody struct {
	Detail string `json:"detail"`
}

// NewErrorHandler renders errors returned by handlers and middleware.
// Validation errors become a 400 with one message list per field; unknown
// errors are logged and hidden behind a 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := translate(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("route", c.Path()),
				slog.Any("error", err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.WarnContext(c.Request().Context(), "write error response", slog.Any("error", writeErr))
		}
	}
}

func translate(err error) (int, any) {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, detailBody{Detail: fmt.Sprint(httpErr.Message)}
	case errors.Is(err, errs.ErrAuthenticationRequired):
		return http.StatusUnauthorized, detailBody{Detail: "Authentication credentials were not provided or are invalid."}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, detailBody{Detail: "You do not have permission to perform this action."}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, detailBody{Detail: "Not found."}
	case errs.IsValidation(err):
		return http.StatusBadRequest, fieldErrors(err)
	default:
		return http.StatusInternalServerError, detailBody{Detail: "Internal server error."}
	}
}

// fieldErrors flattens joined and wrapped validation errors into
// {"field": ["message", ...]}.
func fieldErrors(err error) map[string][]string {
	out := make(map[string][]string)
	collectFieldErrors(err, out)
	if len(out) == 0 {
		out[nonFieldErrors] = []string{err.Error()}
	}
	return out
}

func collectFieldErrors(err error, out map[string][]string) {
	switch e := err.(type) {
	case *errs.ValueIsRequiredError:
		addFieldError(out, e.ParamName, "This field is required.")
	case *errs.ValueIsInvalidError:
		msg := "This field is invalid."
		if e.Cause != nil {
			msg = e.Cause.Error()
		}
		addFieldError(out, e.ParamName, msg)
	case *errs.ValueIsOutOfRangeError:
		addFieldError(out, e.ParamName, rangeMessage(e))
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectFieldErrors(inner, out)
		}
	case interface{ Unwrap() error }:
		collectFieldErrors(e.Unwrap(), out)
	}
}

func rangeMessage(e *errs.ValueIsOutOfRangeError) string {
	if e.Max == nil {
		return fmt.Sprintf("Ensure this value is greater than or equal to %v.", e.Min)
	}
	return fmt.Sprintf("Ensure this value is between %v and %v.", e.Min, e.Max)
}

func addFieldError(out map[string][]string, field, msg string) {
	if field == "" {
		field = nonFieldErrors
	}
	out[field] = append(out[field], msg)
}
