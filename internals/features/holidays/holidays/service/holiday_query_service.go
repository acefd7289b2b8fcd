// file: internals/features/holidays/holidays/service/holiday_query_service.go
package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	m "holiday_backend/internals/features/holidays/holidays/model"
	"holiday_backend/internals/features/holidays/holidays/repository"
	helper "holiday_backend/internals/helpers"
)

const (
	MinYear                = 1900
	MaxYear                = 2100
	DefaultUpcomingMonths  = 3
	MaxUpcomingMonths      = 24
	MsgInvalidYear         = "Invalid year format or out of range (1900-2100)"
	MsgRangeParamsRequired = "Both start and end parameters are required"
	MsgInvalidRangeDate    = "Invalid date format. Use YYYY-MM-DD format"
	MsgInvalidMonths       = "Invalid months parameter (1-24)"
)

// HolidayQueryService reads the full record set and applies the recurrence
// resolver. There is no store-side date filtering: every recurring rule has to
// be looked at against the query context.
type HolidayQueryService struct {
	Repo repository.HolidayRepository
	// Now is the reference clock for upcoming queries.
	Now func() time.Time
	// UpcomingMonths is the default horizon for ListUpcoming.
	UpcomingMonths int
}

func NewHolidayQueryService(repo repository.HolidayRepository, upcomingMonths int) *HolidayQueryService {
	if upcomingMonths <= 0 {
		upcomingMonths = DefaultUpcomingMonths
	}
	return &HolidayQueryService{
		Repo:           repo,
		Now:            time.Now,
		UpcomingMonths: upcomingMonths,
	}
}

// ListAll returns every record unresolved, ordered by template start date.
func (s *HolidayQueryService) ListAll(ctx context.Context) ([]m.HolidayModel, error) {
	rows, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByStart(rows)
	return rows, nil
}

// ParseYear validates the ?year= value.
func ParseYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year < MinYear || year > MaxYear {
		return 0, fiber.NewError(fiber.StatusBadRequest, MsgInvalidYear)
	}
	return year, nil
}

// ListForYear resolves every record onto year; non-recurring records outside
// year are dropped. Inactive records are kept.
func (s *HolidayQueryService) ListForYear(ctx context.Context, year int) ([]m.HolidayModel, error) {
	if year < MinYear || year > MaxYear {
		return nil, fiber.NewError(fiber.StatusBadRequest, MsgInvalidYear)
	}
	rows, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]m.HolidayModel, 0, len(rows))
	for _, h := range rows {
		if occ, ok := ResolveForYear(h, year); ok {
			out = append(out, occ)
		}
	}
	sortByStart(out)
	return out, nil
}

// ParseUpcomingMonths validates the optional ?months= override; "" means default.
func (s *HolidayQueryService) ParseUpcomingMonths(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.UpcomingMonths, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxUpcomingMonths {
		return 0, fiber.NewError(fiber.StatusBadRequest, MsgInvalidMonths)
	}
	return n, nil
}

// ListUpcoming returns active holidays whose next occurrence starts within
// [now, now+months], carrying that occurrence's dates, soonest first.
func (s *HolidayQueryService) ListUpcoming(ctx context.Context, months int) ([]m.HolidayModel, error) {
	if months <= 0 {
		months = s.UpcomingMonths
	}
	return s.ListUpcomingAt(ctx, s.Now().UTC(), months)
}

// ListUpcomingAt is ListUpcoming with an explicit reference instant.
func (s *HolidayQueryService) ListUpcomingAt(ctx context.Context, ref time.Time, months int) ([]m.HolidayModel, error) {
	rows, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]m.HolidayModel, 0)
	for _, h := range rows {
		if IsUpcomingMonths(h, ref, months) {
			out = append(out, NextOccurrence(h, ref))
		}
	}
	sortByStart(out)
	return out, nil
}

// ParseRange validates ?start=&end= (YYYY-MM-DD, UTC midnight). start > end is
// not rejected.
func ParseRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	if rawStart == "" || rawEnd == "" {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, MsgRangeParamsRequired)
	}
	start, okStart := helper.ParseDateYYYYMMDD(rawStart)
	end, okEnd := helper.ParseDateYYYYMMDD(rawEnd)
	if !okStart || !okEnd {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, MsgInvalidRangeDate)
	}
	return start, end, nil
}

// ListInRange returns active holidays with an occurrence intersecting
// [start, end], carrying the matching occurrence's dates.
func (s *HolidayQueryService) ListInRange(ctx context.Context, start, end time.Time) ([]m.HolidayModel, error) {
	rows, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]m.HolidayModel, 0)
	for _, h := range rows {
		if occ, ok := OccurrenceInRange(h, start, end); ok {
			out = append(out, occ)
		}
	}
	sortByStart(out)
	return out, nil
}

// stable so equal start dates keep store order
func sortByStart(rows []m.HolidayModel) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].HolidayStartDate.Before(rows[j].HolidayStartDate)
	})
}
