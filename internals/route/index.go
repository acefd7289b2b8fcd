// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"holiday_backend/internals/features/holidays/holidays/controller"
	"holiday_backend/internals/features/holidays/holidays/dto"
	"holiday_backend/internals/features/holidays/holidays/repository"
	"holiday_backend/internals/features/holidays/holidays/service"
	helper "holiday_backend/internals/helpers"
	middlewares "holiday_backend/internals/middlewares"
	routeDetails "holiday_backend/internals/route/details"
	"holiday_backend/internals/web"
)

// Deps is everything the HTTP layer needs from main (or a test).
type Deps struct {
	Repo           repository.HolidayRepository
	Seeds          controller.SeedSource
	UpcomingMonths int
	// Now overrides the clock of the upcoming query; nil means time.Now.
	Now func() time.Time

	AllowedOrigins []string
	RateLimitMax   int
	AccessLog      bool
}

// NewApp builds the fiber app: JSON codec, error shape, middleware chain,
// routes and the admin UI.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	api := middlewares.SetupMiddlewares(app, middlewares.Options{
		AllowedOrigins: deps.AllowedOrigins,
		RateLimitMax:   deps.RateLimitMax,
		AccessLog:      deps.AccessLog,
	})
	SetupRoutes(app, api, deps)
	return app
}

func SetupRoutes(app *fiber.App, api fiber.Router, deps Deps) {
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, deps.Repo)

	svc := service.NewHolidayService(deps.Repo, dto.NewValidator())
	q := service.NewHolidayQueryService(deps.Repo, deps.UpcomingMonths)
	if deps.Now != nil {
		q.Now = deps.Now
	}

	log.Println("[INFO] Mounting Holiday routes...")
	routeDetails.HolidayRoutes(api, svc, q, deps.Seeds)

	log.Println("[INFO] Mounting admin UI...")
	web.Register(app)
}
