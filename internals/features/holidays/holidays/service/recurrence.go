// file: internals/features/holidays/holidays/service/recurrence.go
package service

import (
	"time"

	m "holiday_backend/internals/features/holidays/holidays/model"
)

/* =========================================================
   Recurrence resolver

   Pure functions: a stored holiday (possibly yearly-recurring) is
   projected onto a concrete year or date range. Inputs are never
   mutated; every result is a fresh value.
   ========================================================= */

// projectYear moves t onto year, keeping month/day/time (UTC).
// Feb 29 lands on Feb 28 in non-leap years instead of rolling into March.
func projectYear(t time.Time, year int) time.Time {
	t = t.UTC()
	month, day := t.Month(), t.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ResolveForYear returns the occurrence of h in year, or false when a
// non-recurring holiday does not start in that year. Recurring holidays always
// resolve; both start and end are projected onto year.
func ResolveForYear(h m.HolidayModel, year int) (m.HolidayModel, bool) {
	out := h.Clone()
	if !h.HolidayIsRecurring {
		if h.HolidayStartDate.UTC().Year() != year {
			return m.HolidayModel{}, false
		}
		return out, true
	}

	out.HolidayStartDate = projectYear(h.HolidayStartDate, year)
	if h.HolidayEndDate != nil {
		end := projectYear(*h.HolidayEndDate, year)
		out.HolidayEndDate = &end
	}
	return out, true
}

// NextOccurrence is the occurrence used for "upcoming": recurring holidays
// resolve onto ref's year, or the following year when that date is already
// before ref. Non-recurring holidays keep their own dates.
func NextOccurrence(h m.HolidayModel, ref time.Time) m.HolidayModel {
	if !h.HolidayIsRecurring {
		return h.Clone()
	}
	year := ref.UTC().Year()
	occ, _ := ResolveForYear(h, year)
	if occ.HolidayStartDate.Before(ref) {
		occ, _ = ResolveForYear(h, year+1)
	}
	return occ
}

// IsUpcoming reports whether an active h starts within [ref, ref+horizon].
func IsUpcoming(h m.HolidayModel, ref time.Time, horizon time.Duration) bool {
	return isUpcomingUntil(h, ref, ref.Add(horizon))
}

// IsUpcomingMonths is IsUpcoming with a calendar-month horizon (ref + n months).
func IsUpcomingMonths(h m.HolidayModel, ref time.Time, months int) bool {
	return isUpcomingUntil(h, ref, ref.AddDate(0, months, 0))
}

func isUpcomingUntil(h m.HolidayModel, ref, until time.Time) bool {
	if !h.HolidayIsActive {
		return false
	}
	start := NextOccurrence(h, ref).HolidayStartDate
	return !start.Before(ref) && !start.After(until)
}

// OccurrenceInRange returns the occurrence of an active h that intersects
// [rangeStart, rangeEnd] (both inclusive).
//
// Recurring holidays are tested in rangeStart's year and, when the range
// crosses a year boundary, in rangeEnd's year. Years strictly between the two
// are not checked, so a range spanning three or more calendar years can miss
// occurrences.
func OccurrenceInRange(h m.HolidayModel, rangeStart, rangeEnd time.Time) (m.HolidayModel, bool) {
	if !h.HolidayIsActive {
		return m.HolidayModel{}, false
	}
	if !h.HolidayIsRecurring {
		if intersects(h, rangeStart, rangeEnd) {
			return h.Clone(), true
		}
		return m.HolidayModel{}, false
	}

	startYear, endYear := rangeStart.UTC().Year(), rangeEnd.UTC().Year()
	occ, _ := ResolveForYear(h, startYear)
	if intersects(occ, rangeStart, rangeEnd) {
		return occ, true
	}
	if startYear != endYear {
		occ, _ = ResolveForYear(h, endYear)
		if intersects(occ, rangeStart, rangeEnd) {
			return occ, true
		}
	}
	return m.HolidayModel{}, false
}

// OverlapsRange reports whether OccurrenceInRange finds an occurrence.
func OverlapsRange(h m.HolidayModel, rangeStart, rangeEnd time.Time) bool {
	_, ok := OccurrenceInRange(h, rangeStart, rangeEnd)
	return ok
}

func intersects(h m.HolidayModel, rangeStart, rangeEnd time.Time) bool {
	return !h.EffectiveEnd().Before(rangeStart) && !h.HolidayStartDate.After(rangeEnd)
}
