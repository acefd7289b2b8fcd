// file: internals/features/holidays/holidays/dto/holiday_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	m "holiday_backend/internals/features/holidays/holidays/model"
	helper "holiday_backend/internals/helpers"
)

/* =========================================================
   Messages
   ========================================================= */

const (
	MsgRequiredFields   = "Start date and name are required fields"
	MsgInvalidStartDate = "Invalid start date format. Use ISO 8601 format (YYYY-MM-DDT00:00:00.000Z)"
	MsgInvalidEndDate   = "Invalid end date format. Use ISO 8601 format (YYYY-MM-DDT00:00:00.000Z)"
	MsgInvalidType      = "Invalid type. Use 'static' or 'dynamic'"
	MsgNameTooLong      = "Name must be at most 200 characters"
	MsgInvalidBody      = "Invalid JSON body"
)

// NewValidator returns a validator with the "timestamp" rule (any RFC 3339
// timestamp) registered next to the built-in ones.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, ok := helper.ParseTimestamp(fl.Field().String())
		return ok
	})
	return v
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

// ---------- CREATE ----------
type HolidayCreateRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty"`

	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02T15:04:05.000Z"`
	EndDate   *string `json:"endDate"   validate:"omitempty,datetime=2006-01-02T15:04:05.000Z"`

	IsRecurring *bool   `json:"isRecurring" validate:"omitempty"`
	Type        *string `json:"type"        validate:"omitempty,oneof=static dynamic"`
	IsActive    *bool   `json:"isActive"    validate:"omitempty"`
}

// Validate trims the name, then checks the struct tags. The first failure is
// returned as a 400 *fiber.Error; a missing field wins over a bad format.
func (r *HolidayCreateRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = trimOrNil(r.EndDate)
	return translate(v.Struct(r))
}

// ToModel assumes Validate passed.
func (r HolidayCreateRequest) ToModel() m.HolidayModel {
	start, _ := helper.ParseISOStrict(r.StartDate)

	h := m.HolidayModel{
		HolidayName:        r.Name,
		HolidayDescription: derefOr(r.Description, ""),
		HolidayStartDate:   start,
		HolidayIsRecurring: derefBoolOr(r.IsRecurring, false),
		HolidayType:        derefOr(r.Type, m.HolidayTypeDynamic),
		HolidayIsActive:    derefBoolOr(r.IsActive, true),
	}
	if r.EndDate != nil {
		if end, ok := helper.ParseISOStrict(*r.EndDate); ok {
			h.HolidayEndDate = &end
		}
	}
	h.Normalize()
	return h
}

// ---------- UPDATE (PUT) ----------
// name and startDate are required; anything else left out (or null) keeps the
// stored value. "endDate": "" clears the end date.
type HolidayUpdateRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty"`

	StartDate string  `json:"startDate" validate:"required,timestamp"`
	EndDate   *string `json:"endDate"   validate:"omitempty,timestamp"`

	IsRecurring *bool   `json:"isRecurring" validate:"omitempty"`
	Type        *string `json:"type"        validate:"omitempty,oneof=static dynamic"`
	IsActive    *bool   `json:"isActive"    validate:"omitempty"`

	clearEndDate bool
}

func (r *HolidayUpdateRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	r.StartDate = strings.TrimSpace(r.StartDate)
	if r.EndDate != nil && strings.TrimSpace(*r.EndDate) == "" {
		r.clearEndDate = true
	}
	r.EndDate = trimOrNil(r.EndDate)
	return translate(v.Struct(r))
}

// Apply copies the request onto the stored row (controller: fetch → Apply → Update).
func (r HolidayUpdateRequest) Apply(h *m.HolidayModel) {
	h.HolidayName = r.Name
	if start, ok := helper.ParseTimestamp(r.StartDate); ok {
		h.HolidayStartDate = start
	}
	if r.Description != nil {
		h.HolidayDescription = *r.Description
	}
	switch {
	case r.clearEndDate || (r.EndDate != nil && strings.TrimSpace(*r.EndDate) == ""):
		h.HolidayEndDate = nil
	case r.EndDate != nil:
		if end, ok := helper.ParseTimestamp(*r.EndDate); ok {
			h.HolidayEndDate = &end
		}
	}
	if r.IsRecurring != nil {
		h.HolidayIsRecurring = *r.IsRecurring
	}
	if r.Type != nil {
		h.HolidayType = *r.Type
	}
	if r.IsActive != nil {
		h.HolidayIsActive = *r.IsActive
	}
	h.Normalize()
}

/* =========================================================
   2) VALIDATION → 400
   ========================================================= */

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return fiber.NewError(fiber.StatusBadRequest, MsgRequiredFields)
		}
	}

	fe := verrs[0]
	switch fe.Field() {
	case "StartDate":
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidStartDate)
	case "EndDate":
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidEndDate)
	case "Type":
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidType)
	case "Name":
		return fiber.NewError(fiber.StatusBadRequest, MsgNameTooLong)
	}
	return fiber.NewError(fiber.StatusBadRequest, fe.Error())
}

// trimOrNil trims p; a blank value counts as absent.
func trimOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func derefOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func derefBoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
