// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

// ErrorResponse is the body of every failed request: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JsonError writes {"error": message} with the given status.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
		if status < 500 {
			message = fiber.NewError(status).Message
		}
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonOK writes data as-is with 200 (records and arrays are not wrapped).
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated writes data as-is with 201.
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonDeleted: {"message": ..., "id": ...}
func JsonDeleted(c *fiber.Ctx, message string, id string) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
		"id":      id,
	})
}
