// file: internals/features/holidays/holidays/route/holiday_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"holiday_backend/internals/features/holidays/holidays/controller"
)

// HolidayRoutes mounts /holidays on api. Fixed paths go before /:id.
func HolidayRoutes(api fiber.Router, ctl *controller.HolidayController) {
	grp := api.Group("/holidays")

	grp.Get("/", ctl.List)
	grp.Get("/upcoming", ctl.Upcoming)
	grp.Get("/in-range", ctl.InRange)
	grp.Post("/", ctl.Create)
	grp.Post("/import-static", ctl.ImportStatic)

	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
