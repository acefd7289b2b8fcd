// file: internals/features/holidays/holidays/repository/holiday_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	m "holiday_backend/internals/features/holidays/holidays/model"
)

var ErrHolidayNotFound = errors.New("holiday not found")

// HolidayFilter is an equality-only predicate set; nil fields are ignored.
type HolidayFilter struct {
	Name        *string
	IsRecurring *bool
	Type        *string
}

// HolidayRepository abstracts the record store so Postgres, SQLite, MongoDB
// and memory can be swapped without touching the services.
type HolidayRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (m.HolidayModel, error)
	ListAll(ctx context.Context) ([]m.HolidayModel, error)
	// Insert assigns id, createdAt and updatedAt on h.
	Insert(ctx context.Context, h *m.HolidayModel) error
	// Update replaces every mutable field of the stored row and refreshes
	// h.HolidayUpdatedAt. createdAt is left untouched.
	Update(ctx context.Context, h *m.HolidayModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindWhere(ctx context.Context, f HolidayFilter) ([]m.HolidayModel, error)
	Ping(ctx context.Context) error
}

func (f HolidayFilter) matches(h m.HolidayModel) bool {
	if f.Name != nil && h.HolidayName != *f.Name {
		return false
	}
	if f.IsRecurring != nil && h.HolidayIsRecurring != *f.IsRecurring {
		return false
	}
	if f.Type != nil && h.HolidayType != *f.Type {
		return false
	}
	return true
}
