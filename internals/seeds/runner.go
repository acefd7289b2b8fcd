package seeds

import (
	"context"
	"log"

	"holiday_backend/internals/features/holidays/holidays/service"
	holidaySeeds "holiday_backend/internals/seeds/holidays"
)

// RunAllSeeds imports the static holiday set. Safe to run repeatedly.
func RunAllSeeds(ctx context.Context, svc *service.HolidayService, staticHolidaysFile string) error {
	//* Holidays
	seeds, err := holidaySeeds.LoadStaticHolidays(staticHolidaysFile)
	if err != nil {
		return err
	}
	resp, err := svc.ImportStatic(ctx, seeds)
	if err != nil {
		return err
	}
	for _, r := range resp.Results {
		log.Printf("🌱 %-16s %s (%s)", r.Status, r.Name, r.ID)
	}
	log.Printf("✅ Seed selesai: %d added, %d skipped", resp.TotalAdded, resp.TotalSkipped)
	return nil
}
