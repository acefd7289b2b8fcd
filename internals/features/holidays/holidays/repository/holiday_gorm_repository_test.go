package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/logger"

	database "holiday_backend/internals/databases"
	m "holiday_backend/internals/features/holidays/holidays/model"
)

func newSQLiteRepo(t *testing.T) *GormHolidayRepository {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	repo := NewGormHolidayRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func utcDay(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// runRepositoryContract exercises the behaviour every store must share.
func runRepositoryContract(t *testing.T, repo HolidayRepository) {
	ctx := context.Background()
	end := utcDay(2024, time.February, 14)

	tet := m.HolidayModel{
		HolidayName:        "Tết Nguyên Đán",
		HolidayStartDate:   utcDay(2024, time.February, 10),
		HolidayEndDate:     &end,
		HolidayIsRecurring: true,
		HolidayType:        m.HolidayTypeStatic,
		HolidayIsActive:    true,
	}
	paused := m.HolidayModel{
		HolidayName:      "Paused",
		HolidayStartDate: utcDay(2023, time.June, 1),
		HolidayIsActive:  false,
	}

	t.Run("insert assigns id and timestamps", func(t *testing.T) {
		for _, h := range []*m.HolidayModel{&tet, &paused} {
			if err := repo.Insert(ctx, h); err != nil {
				t.Fatalf("insert %s: %v", h.HolidayName, err)
			}
			if h.HolidayID == uuid.Nil || h.HolidayCreatedAt.IsZero() {
				t.Fatalf("%s: id=%s createdAt=%s", h.HolidayName, h.HolidayID, h.HolidayCreatedAt)
			}
		}
		if paused.HolidayType != m.HolidayTypeDynamic {
			t.Errorf("default type = %q", paused.HolidayType)
		}
	})

	t.Run("get round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, tet.HolidayID)
		if err != nil {
			t.Fatal(err)
		}
		if got.HolidayName != tet.HolidayName || got.HolidaySlug != "tet-nguyen-dan" {
			t.Errorf("name/slug = %q/%q", got.HolidayName, got.HolidaySlug)
		}
		if !got.HolidayStartDate.Equal(tet.HolidayStartDate) {
			t.Errorf("start = %s", got.HolidayStartDate)
		}
		if got.HolidayEndDate == nil || !got.HolidayEndDate.Equal(end) {
			t.Errorf("end = %v", got.HolidayEndDate)
		}

		p, err := repo.GetByID(ctx, paused.HolidayID)
		if err != nil {
			t.Fatal(err)
		}
		if p.HolidayIsActive {
			t.Error("isActive=false read back as true")
		}
		if p.HolidayEndDate != nil {
			t.Errorf("end = %v, want nil", p.HolidayEndDate)
		}
	})

	t.Run("list orders by start date", func(t *testing.T) {
		rows, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 2 || rows[0].HolidayName != "Paused" {
			t.Fatalf("rows = %+v", rows)
		}
	})

	t.Run("find where", func(t *testing.T) {
		name, recurring, static := tet.HolidayName, true, m.HolidayTypeStatic
		rows, err := repo.FindWhere(ctx, HolidayFilter{Name: &name, IsRecurring: &recurring, Type: &static})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 || rows[0].HolidayID != tet.HolidayID {
			t.Fatalf("rows = %+v", rows)
		}

		dynamic := m.HolidayTypeDynamic
		rows, err = repo.FindWhere(ctx, HolidayFilter{Name: &name, Type: &dynamic})
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 0 {
			t.Fatalf("rows = %+v, want none", rows)
		}
	})

	t.Run("update writes false and nil-preserving fields", func(t *testing.T) {
		upd := tet.Clone()
		upd.HolidayName = "Lunar New Year"
		upd.HolidayIsActive = false
		if err := repo.Update(ctx, &upd); err != nil {
			t.Fatal(err)
		}
		got, err := repo.GetByID(ctx, tet.HolidayID)
		if err != nil {
			t.Fatal(err)
		}
		if got.HolidayName != "Lunar New Year" || got.HolidaySlug != "lunar-new-year" || got.HolidayIsActive {
			t.Errorf("got %+v", got)
		}
		if got.HolidayEndDate == nil {
			t.Error("endDate lost on update")
		}
	})

	t.Run("missing ids", func(t *testing.T) {
		ghost := m.HolidayModel{HolidayID: uuid.New(), HolidayName: "Ghost", HolidayStartDate: utcDay(2024, 1, 1)}
		if err := repo.Update(ctx, &ghost); !errors.Is(err, ErrHolidayNotFound) {
			t.Errorf("update: %v", err)
		}
		if err := repo.Delete(ctx, ghost.HolidayID); !errors.Is(err, ErrHolidayNotFound) {
			t.Errorf("delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, ghost.HolidayID); !errors.Is(err, ErrHolidayNotFound) {
			t.Errorf("get: %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, paused.HolidayID); err != nil {
			t.Fatal(err)
		}
		rows, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(rows))
		}
	})

	if err := repo.Ping(ctx); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestGormHolidayRepositorySQLite(t *testing.T) {
	runRepositoryContract(t, newSQLiteRepo(t))
}

func TestMemoryHolidayRepository(t *testing.T) {
	runRepositoryContract(t, NewMemoryHolidayRepository())
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryHolidayRepository()
	ctx := context.Background()
	end := utcDay(2024, time.May, 2)
	h := m.HolidayModel{HolidayName: "Copy", HolidayStartDate: utcDay(2024, time.May, 1), HolidayEndDate: &end}
	if err := repo.Insert(ctx, &h); err != nil {
		t.Fatal(err)
	}

	got, _ := repo.GetByID(ctx, h.HolidayID)
	*got.HolidayEndDate = utcDay(1999, time.January, 1)

	again, _ := repo.GetByID(ctx, h.HolidayID)
	if !again.HolidayEndDate.Equal(end) {
		t.Errorf("stored end changed through a returned pointer: %s", again.HolidayEndDate)
	}
}
