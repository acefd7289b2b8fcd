// file: internals/features/holidays/holidays/repository/holiday_memory_repository.go
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	m "holiday_backend/internals/features/holidays/holidays/model"
)

// MemoryHolidayRepository keeps records in a map. Used for DB_DRIVER=memory
// and by service/controller tests.
type MemoryHolidayRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]m.HolidayModel
	now  func() time.Time
}

func NewMemoryHolidayRepository() *MemoryHolidayRepository {
	return &MemoryHolidayRepository{
		rows: make(map[uuid.UUID]m.HolidayModel),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryHolidayRepository) GetByID(_ context.Context, id uuid.UUID) (m.HolidayModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return m.HolidayModel{}, ErrHolidayNotFound
	}
	return row.Clone(), nil
}

func (r *MemoryHolidayRepository) ListAll(_ context.Context) ([]m.HolidayModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]m.HolidayModel, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HolidayStartDate.Before(out[j].HolidayStartDate)
	})
	return out, nil
}

func (r *MemoryHolidayRepository) Insert(_ context.Context, h *m.HolidayModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h.Normalize()
	if h.HolidayID == uuid.Nil {
		h.HolidayID = uuid.New()
	}
	now := r.now()
	h.HolidayCreatedAt = now
	h.HolidayUpdatedAt = now
	r.rows[h.HolidayID] = h.Clone()
	return nil
}

func (r *MemoryHolidayRepository) Update(_ context.Context, h *m.HolidayModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[h.HolidayID]
	if !ok {
		return ErrHolidayNotFound
	}
	h.Normalize()
	h.HolidayCreatedAt = cur.HolidayCreatedAt
	h.HolidayUpdatedAt = r.now()
	r.rows[h.HolidayID] = h.Clone()
	return nil
}

func (r *MemoryHolidayRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return ErrHolidayNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *MemoryHolidayRepository) FindWhere(_ context.Context, f HolidayFilter) ([]m.HolidayModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []m.HolidayModel
	for _, row := range r.rows {
		if f.matches(row) {
			out = append(out, row.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HolidayCreatedAt.Before(out[j].HolidayCreatedAt)
	})
	return out, nil
}

func (r *MemoryHolidayRepository) Ping(context.Context) error { return nil }
