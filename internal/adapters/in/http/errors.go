package http

import (
	"errors"
	"net/http"

	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/generated/servers"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// statusOf maps the error taxonomy of the core to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrMissingReference),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, task.ErrAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a servers.Error. Internal failures are logged and
// reported without detail.
func writeError(c echo.Context, err error) error {
	code := statusOf(err)

	body := servers.Error{Code: code, Message: err.Error()}
	if code == http.StatusInternalServerError {
		ctx := c.Request().Context()
		logging.FromContext(ctx).ErrorContext(ctx, "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		body.Message = http.StatusText(code)
	}

	if details := validationDetails(err); len(details) > 0 {
		body.Message = "validation failed"
		body.Details = &details
	}

	return c.JSON(code, body)
}

// validationDetails flattens joined validation errors into one line per field.
func validationDetails(err error) []string {
	var details []string

	var walk func(error)
	walk = func(e error) {
		var ve *errs.ValidationError
		if errors.As(e, &ve) && e == error(ve) {
			details = append(details, ve.Error())
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		if inner := errors.Unwrap(e); inner != nil {
			walk(inner)
		}
	}
	walk(err)

	return details
}

// httpErrorHandler renders errors that reach echo, such as binding failures
// from the generated wrapper or unknown routes, in the same shape.
func httpErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok {
				msg = s
			}
			_ = c.JSON(he.Code, servers.Error{Code: he.Code, Message: msg})
			return
		}

		_ = writeError(c, err)
	}
}
