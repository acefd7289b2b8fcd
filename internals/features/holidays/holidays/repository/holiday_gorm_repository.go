// file: internals/features/holidays/holidays/repository/holiday_gorm_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "holiday_backend/internals/features/holidays/holidays/model"
)

// GormHolidayRepository serves Postgres (production) and SQLite (local/tests).
type GormHolidayRepository struct {
	DB *gorm.DB
}

func NewGormHolidayRepository(db *gorm.DB) *GormHolidayRepository {
	return &GormHolidayRepository{DB: db}
}

// AutoMigrate creates/updates the holidays table.
func (r *GormHolidayRepository) AutoMigrate() error {
	return r.DB.AutoMigrate(&m.HolidayModel{})
}

func (r *GormHolidayRepository) GetByID(ctx context.Context, id uuid.UUID) (m.HolidayModel, error) {
	var row m.HolidayModel
	if err := r.DB.WithContext(ctx).
		Where("holiday_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m.HolidayModel{}, ErrHolidayNotFound
		}
		return m.HolidayModel{}, err
	}
	return row, nil
}

func (r *GormHolidayRepository) ListAll(ctx context.Context) ([]m.HolidayModel, error) {
	var rows []m.HolidayModel
	err := r.DB.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "holiday_start_date"}}).
		Find(&rows).Error
	return rows, err
}

func (r *GormHolidayRepository) Insert(ctx context.Context, h *m.HolidayModel) error {
	return r.DB.WithContext(ctx).Create(h).Error
}

func (r *GormHolidayRepository) Update(ctx context.Context, h *m.HolidayModel) error {
	h.Normalize()
	now := time.Now().UTC()

	// map so false/empty values are written too
	res := r.DB.WithContext(ctx).
		Model(&m.HolidayModel{}).
		Where("holiday_id = ?", h.HolidayID).
		Updates(map[string]any{
			"holiday_name":         h.HolidayName,
			"holiday_slug":         h.HolidaySlug,
			"holiday_description":  h.HolidayDescription,
			"holiday_start_date":   h.HolidayStartDate,
			"holiday_end_date":     h.HolidayEndDate,
			"holiday_is_recurring": h.HolidayIsRecurring,
			"holiday_type":         h.HolidayType,
			"holiday_is_active":    h.HolidayIsActive,
			"holiday_updated_at":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHolidayNotFound
	}
	h.HolidayUpdatedAt = now
	return nil
}

func (r *GormHolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("holiday_id = ?", id).
		Delete(&m.HolidayModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

func (r *GormHolidayRepository) FindWhere(ctx context.Context, f HolidayFilter) ([]m.HolidayModel, error) {
	tx := r.DB.WithContext(ctx).Model(&m.HolidayModel{})
	if f.Name != nil {
		tx = tx.Where("holiday_name = ?", *f.Name)
	}
	if f.IsRecurring != nil {
		tx = tx.Where("holiday_is_recurring = ?", *f.IsRecurring)
	}
	if f.Type != nil {
		tx = tx.Where("holiday_type = ?", *f.Type)
	}

	var rows []m.HolidayModel
	if err := tx.Order("holiday_created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormHolidayRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
