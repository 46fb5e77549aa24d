// Package response writes the uniform success and error envelopes.
package response

import (
	"net/http"

	deliverycontext "vidtube/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Code       string `json:"code,omitempty"` // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Message    string `json:"message"`
	Errors     any    `json:"errors"` // Per-field violations for 4xx errors; always an array
	RequestID  string `json:"requestId,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		StatusCode: statusCode,
		Success:    statusCode < http.StatusBadRequest,
		Data:       data,
		Message:    message,
	})
}

// OK is Success with 200.
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created is Success with 201.
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are not echoed for 5xx or authentication errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || details == nil {
		details = []any{}
	}

	return c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Success:    false,
		Code:       errorCode,
		Message:    message,
		Errors:     details,
		RequestID:  deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}
