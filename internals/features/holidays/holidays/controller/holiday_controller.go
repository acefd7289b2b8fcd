// file: internals/features/holidays/holidays/controller/holiday_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	d "holiday_backend/internals/features/holidays/holidays/dto"
	"holiday_backend/internals/features/holidays/holidays/repository"
	"holiday_backend/internals/features/holidays/holidays/service"
	helper "holiday_backend/internals/helpers"
)

const MsgHolidayNotFound = "Holiday not found"

// SeedSource supplies the static seed set at import time.
type SeedSource func() ([]d.HolidayCreateRequest, error)

/* =========================
   Controller & Constructor
   ========================= */

type HolidayController struct {
	Svc   *service.HolidayService
	Query *service.HolidayQueryService
	Seeds SeedSource
}

func NewHolidayController(svc *service.HolidayService, q *service.HolidayQueryService, seeds SeedSource) *HolidayController {
	return &HolidayController{Svc: svc, Query: q, Seeds: seeds}
}

/* =========================
   Small helpers
   ========================= */

// writeError: 400/404 pass through, everything else is logged and becomes a
// 500 with the operation's message.
func writeError(c *fiber.Ctx, err error, op string) error {
	if errors.Is(err, repository.ErrHolidayNotFound) {
		return helper.JsonError(c, http.StatusNotFound, MsgHolidayNotFound)
	}
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		log.Printf("[ERROR] %s: %s", op, repository.DescribeStoreError(err))
	}
	return helper.FromFiberError(c, err, op)
}

// parseJSON decodes the body as JSON whatever the Content-Type header says.
func parseJSON(c *fiber.Ctx, out any) error {
	return c.App().Config().JSONDecoder(c.Body(), out)
}

/* =========================
   List (GET /holidays[?year=])
   ========================= */

func (ctl *HolidayController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	raw := c.Query("year")

	if raw == "" {
		rows, err := ctl.Query.ListAll(ctx)
		if err != nil {
			return writeError(c, err, "Failed to fetch holidays")
		}
		return helper.JsonOK(c, d.FromModelHolidays(rows))
	}

	year, err := service.ParseYear(raw)
	if err != nil {
		return writeError(c, err, "Failed to fetch holidays")
	}
	rows, err := ctl.Query.ListForYear(ctx, year)
	if err != nil {
		return writeError(c, err, "Failed to fetch holidays")
	}
	return helper.JsonOK(c, d.FromModelHolidays(rows))
}

/* =========================
   Upcoming (GET /holidays/upcoming[?months=])
   ========================= */

func (ctl *HolidayController) Upcoming(c *fiber.Ctx) error {
	months, err := ctl.Query.ParseUpcomingMonths(c.Query("months"))
	if err != nil {
		return writeError(c, err, "Failed to fetch upcoming holidays")
	}
	rows, err := ctl.Query.ListUpcoming(c.UserContext(), months)
	if err != nil {
		return writeError(c, err, "Failed to fetch upcoming holidays")
	}
	return helper.JsonOK(c, d.FromModelHolidays(rows))
}

/* =========================
   In range (GET /holidays/in-range?start=&end=)
   ========================= */

func (ctl *HolidayController) InRange(c *fiber.Ctx) error {
	start, end, err := service.ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		return writeError(c, err, "Failed to fetch holidays in range")
	}
	rows, err := ctl.Query.ListInRange(c.UserContext(), start, end)
	if err != nil {
		return writeError(c, err, "Failed to fetch holidays in range")
	}
	return helper.JsonOK(c, d.FromModelHolidays(rows))
}

/* =========================
   Create (POST /holidays)
   ========================= */

func (ctl *HolidayController) Create(c *fiber.Ctx) error {
	var req d.HolidayCreateRequest
	if err := parseJSON(c, &req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, d.MsgInvalidBody)
	}

	h, err := ctl.Svc.Create(c.UserContext(), req)
	if err != nil {
		return writeError(c, err, "Failed to create holiday")
	}
	return helper.JsonCreated(c, d.FromModelHoliday(h))
}

/* =========================
   Import static (POST /holidays/import-static)
   ========================= */

func (ctl *HolidayController) ImportStatic(c *fiber.Ctx) error {
	seeds, err := ctl.Seeds()
	if err != nil {
		return writeError(c, err, "Failed to import static holidays")
	}
	resp, err := ctl.Svc.ImportStatic(c.UserContext(), seeds)
	if err != nil {
		return writeError(c, err, "Failed to import static holidays")
	}
	log.Printf("[INFO] static import: added=%d skipped=%d", resp.TotalAdded, resp.TotalSkipped)
	return helper.JsonOK(c, resp)
}

/* =========================
   Get By ID (GET /holidays/:id)
   ========================= */

func (ctl *HolidayController) GetByID(c *fiber.Ctx) error {
	id, err := service.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err, "Failed to fetch holiday")
	}
	h, err := ctl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "Failed to fetch holiday")
	}
	return helper.JsonOK(c, d.FromModelHoliday(h))
}

/* =========================
   Update (PUT /holidays/:id)
   ========================= */

func (ctl *HolidayController) Update(c *fiber.Ctx) error {
	id, err := service.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err, "Failed to update holiday")
	}

	var req d.HolidayUpdateRequest
	if err := parseJSON(c, &req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, d.MsgInvalidBody)
	}

	h, err := ctl.Svc.Update(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, err, "Failed to update holiday")
	}
	return helper.JsonOK(c, d.FromModelHoliday(h))
}

/* =========================
   Delete (DELETE /holidays/:id), hard delete
   ========================= */

func (ctl *HolidayController) Delete(c *fiber.Ctx) error {
	id, err := service.ParseID(c.Params("id"))
	if err != nil {
		return writeError(c, err, "Failed to delete holiday")
	}
	if err := ctl.Svc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, "Failed to delete holiday")
	}
	return helper.JsonDeleted(c, "Holiday deleted successfully", id.String())
}
