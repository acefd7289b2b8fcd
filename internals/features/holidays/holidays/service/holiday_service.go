// file: internals/features/holidays/holidays/service/holiday_service.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	d "holiday_backend/internals/features/holidays/holidays/dto"
	m "holiday_backend/internals/features/holidays/holidays/model"
	"holiday_backend/internals/features/holidays/holidays/repository"
)

const MsgImportCompleted = "Static holidays import completed"

// HolidayService covers single-record reads/writes and the static importer.
// Validation failures come back as 400 *fiber.Error, unknown ids as
// repository.ErrHolidayNotFound; anything else is a store error.
type HolidayService struct {
	Repo     repository.HolidayRepository
	Validate *validator.Validate
}

func NewHolidayService(repo repository.HolidayRepository, v *validator.Validate) *HolidayService {
	if v == nil {
		v = d.NewValidator()
	}
	return &HolidayService{Repo: repo, Validate: v}
}

// ParseID maps a malformed id to not-found: ids are opaque to clients.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, repository.ErrHolidayNotFound
	}
	return id, nil
}

func (s *HolidayService) Get(ctx context.Context, id uuid.UUID) (m.HolidayModel, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *HolidayService) Create(ctx context.Context, req d.HolidayCreateRequest) (m.HolidayModel, error) {
	if err := req.Validate(s.Validate); err != nil {
		return m.HolidayModel{}, err
	}
	h := req.ToModel()
	if err := s.Repo.Insert(ctx, &h); err != nil {
		return m.HolidayModel{}, err
	}
	return h, nil
}

// Update validates before the lookup, so a bad body on an unknown id is a 400.
func (s *HolidayService) Update(ctx context.Context, id uuid.UUID, req d.HolidayUpdateRequest) (m.HolidayModel, error) {
	if err := req.Validate(s.Validate); err != nil {
		return m.HolidayModel{}, err
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return m.HolidayModel{}, err
	}
	req.Apply(&existing)
	if err := s.Repo.Update(ctx, &existing); err != nil {
		return m.HolidayModel{}, err
	}
	return existing, nil
}

func (s *HolidayService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repo.Delete(ctx, id)
}

// ImportStatic inserts every seed not already present. A seed counts as
// present when a recurring static holiday with the same name exists. Seeds are
// always stored as recurring + static. Each seed is judged on its own; an
// invalid seed or a store failure stops the import.
func (s *HolidayService) ImportStatic(ctx context.Context, seeds []d.HolidayCreateRequest) (d.ImportStaticResponse, error) {
	resp := d.ImportStaticResponse{
		Message: MsgImportCompleted,
		Results: make([]d.ImportResult, 0, len(seeds)),
	}

	recurring := true
	static := m.HolidayTypeStatic
	for _, seed := range seeds {
		seed.IsRecurring = &recurring
		seed.Type = &static
		if err := seed.Validate(s.Validate); err != nil {
			// a broken seed file is a server problem, not a client 400
			return d.ImportStaticResponse{}, fmt.Errorf("invalid seed %q: %s", seed.Name, err.Error())
		}

		existing, err := s.Repo.FindWhere(ctx, repository.HolidayFilter{
			Name:        &seed.Name,
			IsRecurring: &recurring,
			Type:        &static,
		})
		if err != nil {
			return d.ImportStaticResponse{}, err
		}
		if len(existing) > 0 {
			resp.Results = append(resp.Results, d.ImportResult{
				ID:     existing[0].HolidayID.String(),
				Name:   seed.Name,
				Status: d.ImportStatusAlreadyExists,
			})
			resp.TotalSkipped++
			continue
		}

		h := seed.ToModel()
		if err := s.Repo.Insert(ctx, &h); err != nil {
			return d.ImportStaticResponse{}, err
		}
		resp.Results = append(resp.Results, d.ImportResult{
			ID:     h.HolidayID.String(),
			Name:   seed.Name,
			Status: d.ImportStatusAdded,
		})
		resp.TotalAdded++
	}
	return resp, nil
}
