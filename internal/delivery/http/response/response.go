// Package response holds the wire shapes shared by handlers and middleware.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error response: an error message and, where
// available, underlying failure detail.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error writes an error response with the given status code.
func Error(c echo.Context, statusCode int, message, details string) error {
	return c.JSON(statusCode, ErrorBody{
		Error:   message,
		Details: details,
	})
}

// Created is the acknowledgement returned by write endpoints.
type Created struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

// List wraps collection payloads.
type List struct {
	Data any `json:"data"`
}

// Message is a bare confirmation message.
type Message struct {
	Message string `json:"message"`
}
