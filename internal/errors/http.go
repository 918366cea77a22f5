package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// MapHTTPError maps a transport-level failure or non-2xx response to an
// AppError. It handles common patterns:
//   - context deadline → Timeout
//   - context cancellation → Canceled
//   - 401 → Unauthorized
//   - 403 → Forbidden
//   - 404 → NotFound
//   - 400/422 → Validation
//   - anything else → Internal
//
// The status parameter is ignored when err is a context error, so callers can
// pass the zero value for failures that never produced a response.
func MapHTTPError(status int, body string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}
	if err != nil {
		return &AppError{
			Code:    ErrCodeInternal,
			Message: "Request failed",
			Cause:   err,
		}
	}

	msg := body
	switch status {
	case http.StatusUnauthorized:
		if msg == "" {
			msg = "unauthorized"
		}
		return &AppError{Code: ErrCodeUnauthorized, Message: msg}
	case http.StatusForbidden:
		if msg == "" {
			msg = "forbidden"
		}
		return &AppError{Code: ErrCodeForbidden, Message: msg}
	case http.StatusNotFound:
		if msg == "" {
			msg = "resource not found"
		}
		return &AppError{Code: ErrCodeNotFound, Message: msg}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "invalid request"
		}
		return &AppError{Code: ErrCodeValidation, Message: msg}
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		if msg == "" {
			msg = "upstream timeout"
		}
		return &AppError{Code: ErrCodeTimeout, Message: msg}
	default:
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", status)
		}
		return &AppError{Code: ErrCodeInternal, Message: msg}
	}
}
