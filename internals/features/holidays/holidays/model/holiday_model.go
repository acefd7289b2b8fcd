// file: internals/features/holidays/holidays/model/holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "holiday_backend/internals/helpers"
)

const (
	HolidayTypeStatic  = "static"
	HolidayTypeDynamic = "dynamic"
)

type HolidayModel struct {
	// PK
	HolidayID uuid.UUID `gorm:"type:uuid;primaryKey;column:holiday_id" json:"id"`

	// Informasi
	HolidayName        string `gorm:"type:varchar(200);not null;column:holiday_name"        json:"name"`
	HolidaySlug        string `gorm:"type:varchar(160);not null;index;column:holiday_slug"  json:"slug"`
	HolidayDescription string `gorm:"type:text;not null;column:holiday_description"         json:"description"`

	// Tanggal (satu hari = end nil) atau rentang; untuk recurring, tahun diabaikan
	HolidayStartDate time.Time  `gorm:"not null;index;column:holiday_start_date" json:"startDate"`
	HolidayEndDate   *time.Time `gorm:"column:holiday_end_date"                  json:"endDate"`

	// Flags (no DB default on bools: GORM would drop an explicit false)
	HolidayIsRecurring bool   `gorm:"not null;column:holiday_is_recurring"              json:"isRecurring"`
	HolidayType        string `gorm:"type:varchar(16);not null;column:holiday_type"     json:"type"`
	HolidayIsActive    bool   `gorm:"not null;column:holiday_is_active"                 json:"isActive"`

	// Audit
	HolidayCreatedAt time.Time `gorm:"not null;autoCreateTime;column:holiday_created_at" json:"createdAt"`
	HolidayUpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:holiday_updated_at" json:"updatedAt"`
}

func (HolidayModel) TableName() string { return "holidays" }

// BeforeCreate fills the id client-side so the same model works on Postgres
// and SQLite (no gen_random_uuid()).
func (h *HolidayModel) BeforeCreate(tx *gorm.DB) error {
	if h.HolidayID == uuid.Nil {
		h.HolidayID = uuid.New()
	}
	h.Normalize()
	return nil
}

// Normalize derives the slug and fills the type default. Every store calls it
// before writing.
func (h *HolidayModel) Normalize() {
	h.HolidaySlug = helper.Slugify(h.HolidayName, 160)
	if h.HolidayType == "" {
		h.HolidayType = HolidayTypeDynamic
	}
	h.HolidayStartDate = h.HolidayStartDate.UTC()
	if h.HolidayEndDate != nil {
		end := h.HolidayEndDate.UTC()
		h.HolidayEndDate = &end
	}
}

// Clone returns a copy that shares no pointers with h.
func (h HolidayModel) Clone() HolidayModel {
	out := h
	if h.HolidayEndDate != nil {
		end := *h.HolidayEndDate
		out.HolidayEndDate = &end
	}
	return out
}

// EffectiveEnd is the end of the holiday interval: endDate, or startDate for
// single-day holidays.
func (h HolidayModel) EffectiveEnd() time.Time {
	if h.HolidayEndDate != nil {
		return *h.HolidayEndDate
	}
	return h.HolidayStartDate
}
