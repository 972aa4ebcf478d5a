// Package apperr defines the error taxonomy shared by services and
// handlers. Every failure a client can observe maps to one of these
// codes; handlers serialize them as {"error": code, "message": text}.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func Unauthenticated(msg string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Code: "unauthenticated", Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: fiber.StatusForbidden, Code: "forbidden", Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: fiber.StatusNotFound, Code: "not_found", Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Code: "validation_error", Message: msg}
}

func RateLimited(msg string) *Error {
	return &Error{Status: fiber.StatusTooManyRequests, Code: "rate_limited", Message: msg}
}

func Storage(msg string) *Error {
	return &Error{Status: fiber.StatusBadGateway, Code: "storage_error", Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: fiber.StatusConflict, Code: "conflict", Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Code: "internal_error", Message: msg}
}

// Respond writes err as a JSON error response. Errors that are not an
// *Error are reported as internal_error without leaking their text.
func Respond(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(appErr)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "something went wrong",
	})
}
