// file: internals/features/holidays/holidays/dto/holiday_response_dto.go
package dto

import (
	m "holiday_backend/internals/features/holidays/holidays/model"
	helper "holiday_backend/internals/helpers"
)

/* =========================================================
   RESPONSES
   ========================================================= */

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsRecurring bool    `json:"isRecurring"`
	Type        string  `json:"type"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

const (
	ImportStatusAdded         = "added"
	ImportStatusAlreadyExists = "already_exists"
)

type ImportResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type ImportStaticResponse struct {
	Message      string         `json:"message"`
	Results      []ImportResult `json:"results"`
	TotalAdded   int            `json:"totalAdded"`
	TotalSkipped int            `json:"totalSkipped"`
}

/* =========================================================
   MAPPERS
   ========================================================= */

func FromModelHoliday(h m.HolidayModel) HolidayResponse {
	return HolidayResponse{
		ID:          h.HolidayID.String(),
		Name:        h.HolidayName,
		Slug:        h.HolidaySlug,
		Description: h.HolidayDescription,
		StartDate:   helper.FormatISO(h.HolidayStartDate),
		EndDate:     helper.FormatISOPtr(h.HolidayEndDate),
		IsRecurring: h.HolidayIsRecurring,
		Type:        h.HolidayType,
		IsActive:    h.HolidayIsActive,
		CreatedAt:   helper.FormatISO(h.HolidayCreatedAt),
		UpdatedAt:   helper.FormatISO(h.HolidayUpdatedAt),
	}
}

func FromModelHolidays(list []m.HolidayModel) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelHoliday(list[i]))
	}
	return out
}
