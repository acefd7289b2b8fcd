// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	corsMaxAge       = "86400" // preflight cache 24h
)

// CorsMiddleware applies the origin allow-list to every request it wraps.
//
// An origin outside the list is not rejected: the response carries the first
// configured origin instead, so the browser blocks the call client-side.
// "*" in the list allows any origin. OPTIONS preflights end here with 204.
func CorsMiddleware(allowedOrigins []string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	wildcard := false
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = struct{}{}
	}
	fallback := ""
	if len(allowedOrigins) > 0 {
		fallback = allowedOrigins[0]
	}

	return func(c *fiber.Ctx) error {
		origin := strings.TrimSpace(c.Get(fiber.HeaderOrigin))
		_, ok := allowed[origin]
		allowOrigin := fallback
		if ok || wildcard {
			allowOrigin = origin
		}

		c.Set(fiber.HeaderAccessControlAllowOrigin, allowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		c.Vary(fiber.HeaderOrigin)

		if c.Method() == fiber.MethodOptions {
			c.Set(fiber.HeaderAccessControlMaxAge, corsMaxAge)
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
