package details

import (
	"github.com/gofiber/fiber/v2"

	"holiday_backend/internals/features/holidays/holidays/controller"
	holidayRoute "holiday_backend/internals/features/holidays/holidays/route"
	"holiday_backend/internals/features/holidays/holidays/service"
)

// HolidayRoutes wires services → controller → /api/holidays.
func HolidayRoutes(api fiber.Router, svc *service.HolidayService, q *service.HolidayQueryService, seeds controller.SeedSource) {
	ctl := controller.NewHolidayController(svc, q, seeds)
	holidayRoute.HolidayRoutes(api, ctl)
}
