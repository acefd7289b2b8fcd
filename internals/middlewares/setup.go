package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"holiday_backend/internals/middlewares/logger"
)

type Options struct {
	AllowedOrigins []string
	RateLimitMax   int
	// AccessLog toggles the fiber access logger (off in tests).
	AccessLog bool
}

// SetupMiddlewares installs the app-wide chain and returns the /api group,
// which carries CORS and the rate limiter.
func SetupMiddlewares(app *fiber.App, opts Options) fiber.Router {
	app.Use(RecoveryMiddleware())
	if opts.AccessLog {
		app.Use(logger.LoggerMiddleware())
	}
	app.Use(RequestContext(5 * time.Second))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	return app.Group("/api",
		CorsMiddleware(opts.AllowedOrigins),
		GlobalRateLimiter(opts.RateLimitMax),
	)
}
