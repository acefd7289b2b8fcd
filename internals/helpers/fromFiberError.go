package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError turns a *fiber.Error (validation/not-found raised by a
// service) into the standard {"error": ...} body. Anything else becomes a 500
// carrying fallback, so store internals never leak to the client.
func FromFiberError(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, fallback)
}

// ErrorHandler is installed as fiber.Config.ErrorHandler so framework errors
// (unknown route, bad body, recovered panic) keep the same body shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "An error occurred processing your request"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < 500 {
			msg = fe.Message
		}
	}
	return JsonError(c, code, msg)
}
