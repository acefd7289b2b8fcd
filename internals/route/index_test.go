package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"holiday_backend/internals/features/holidays/holidays/dto"
	"holiday_backend/internals/features/holidays/holidays/repository"
	holidaySeeds "holiday_backend/internals/seeds/holidays"
)

const testOrigin = "http://localhost:3000"

func newTestApp(t *testing.T) (*fiber.App, *repository.MemoryHolidayRepository) {
	t.Helper()
	repo := repository.NewMemoryHolidayRepository()
	app := NewApp(Deps{
		Repo:           repo,
		Seeds:          holidaySeeds.Source(""),
		UpcomingMonths: 3,
		Now:            func() time.Time { return time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC) },
		AllowedOrigins: []string{testOrigin, "https://holiday-api-ruby.vercel.app"},
		RateLimitMax:   1000,
	})
	return app, repo
}

func do(t *testing.T, app *fiber.App, method, target, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func create(t *testing.T, app *fiber.App, body string) dto.HolidayResponse {
	t.Helper()
	resp, raw := do(t, app, http.MethodPost, "/api/holidays", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d %s", resp.StatusCode, raw)
	}
	return decode[dto.HolidayResponse](t, raw)
}

func TestHolidayCRUD(t *testing.T) {
	app, _ := newTestApp(t)

	h := create(t, app, `{"name":"Tết","description":"Lunar New Year","startDate":"2024-02-10T00:00:00.000Z","endDate":"2024-02-14T00:00:00.000Z","isRecurring":true}`)
	if h.ID == "" || h.Type != "dynamic" || !h.IsActive || !h.IsRecurring {
		t.Fatalf("created = %+v", h)
	}
	if h.EndDate == nil || *h.EndDate != "2024-02-14T00:00:00.000Z" {
		t.Errorf("endDate = %v", h.EndDate)
	}

	resp, raw := do(t, app, http.MethodGet, "/api/holidays/"+h.ID, "")
	if resp.StatusCode != http.StatusOK || decode[dto.HolidayResponse](t, raw).Name != "Tết" {
		t.Fatalf("get: %d %s", resp.StatusCode, raw)
	}

	resp, raw = do(t, app, http.MethodPut, "/api/holidays/"+h.ID, `{"name":"Tết Nguyên Đán","startDate":"2025-01-29T00:00:00Z","isActive":false}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: %d %s", resp.StatusCode, raw)
	}
	upd := decode[dto.HolidayResponse](t, raw)
	if upd.Description != "Lunar New Year" || upd.IsActive || !upd.IsRecurring || upd.StartDate != "2025-01-29T00:00:00.000Z" {
		t.Errorf("updated = %+v", upd)
	}

	resp, raw = do(t, app, http.MethodDelete, "/api/holidays/"+h.ID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: %d %s", resp.StatusCode, raw)
	}
	del := decode[map[string]string](t, raw)
	if del["message"] != "Holiday deleted successfully" || del["id"] != h.ID {
		t.Errorf("delete body = %v", del)
	}

	resp, raw = do(t, app, http.MethodDelete, "/api/holidays/"+h.ID, "")
	if resp.StatusCode != http.StatusNotFound || decode[map[string]string](t, raw)["error"] != "Holiday not found" {
		t.Errorf("second delete: %d %s", resp.StatusCode, raw)
	}
}

func TestErrorResponses(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name, method, target, body string
		status                     int
		msg                        string
	}{
		{"year too small", http.MethodGet, "/api/holidays?year=1899", "", 400, "Invalid year format or out of range (1900-2100)"},
		{"year not a number", http.MethodGet, "/api/holidays?year=abc", "", 400, "Invalid year format or out of range (1900-2100)"},
		{"range missing end", http.MethodGet, "/api/holidays/in-range?start=2025-02-01", "", 400, "Both start and end parameters are required"},
		{"range bad date", http.MethodGet, "/api/holidays/in-range?start=2025/02/01&end=2025-02-28", "", 400, "Invalid date format. Use YYYY-MM-DD format"},
		{"create missing name", http.MethodPost, "/api/holidays", `{"startDate":"2024-02-10T00:00:00.000Z"}`, 400, "Start date and name are required fields"},
		{"create date-only start", http.MethodPost, "/api/holidays", `{"name":"X","startDate":"2024-02-10"}`, 400, dto.MsgInvalidStartDate},
		{"create bad json", http.MethodPost, "/api/holidays", `{"name":`, 400, dto.MsgInvalidBody},
		{"get malformed id", http.MethodGet, "/api/holidays/not-a-uuid", "", 404, "Holiday not found"},
		{"update unknown id", http.MethodPut, "/api/holidays/7b0e4a4c-2f7e-4d5c-9a59-0c1c6f0f6e11", `{"name":"X","startDate":"2024-01-01T00:00:00Z"}`, 404, "Holiday not found"},
		{"upcoming bad months", http.MethodGet, "/api/holidays/upcoming?months=99", "", 400, "Invalid months parameter (1-24)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := do(t, app, tt.method, tt.target, tt.body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, raw)
			}
			if got := decode[map[string]string](t, raw)["error"]; got != tt.msg {
				t.Errorf("error = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestQueries(t *testing.T) {
	app, _ := newTestApp(t)
	create(t, app, `{"name":"Tet","startDate":"2024-02-10T00:00:00.000Z","endDate":"2024-02-14T00:00:00.000Z","isRecurring":true}`)
	create(t, app, `{"name":"Mid Feb","startDate":"2020-02-15T00:00:00.000Z","isRecurring":true}`)
	create(t, app, `{"name":"March","startDate":"2020-03-01T00:00:00.000Z","isRecurring":true}`)
	create(t, app, `{"name":"Christmas","startDate":"2020-12-25T00:00:00.000Z","isRecurring":true}`)
	create(t, app, `{"name":"One-off 2024","startDate":"2024-06-01T00:00:00.000Z"}`)

	t.Run("all", func(t *testing.T) {
		_, raw := do(t, app, http.MethodGet, "/api/holidays", "")
		if got := decode[[]dto.HolidayResponse](t, raw); len(got) != 5 {
			t.Fatalf("got %d records", len(got))
		}
	})

	t.Run("year", func(t *testing.T) {
		_, raw := do(t, app, http.MethodGet, "/api/holidays?year=2026", "")
		got := decode[[]dto.HolidayResponse](t, raw)
		if len(got) != 4 || got[0].Name != "Tet" || got[0].StartDate != "2026-02-10T00:00:00.000Z" {
			t.Fatalf("got %+v", got)
		}
		if got[0].EndDate == nil || *got[0].EndDate != "2026-02-14T00:00:00.000Z" {
			t.Errorf("endDate = %v", got[0].EndDate)
		}
	})

	t.Run("in range", func(t *testing.T) {
		_, raw := do(t, app, http.MethodGet, "/api/holidays/in-range?start=2025-02-01&end=2025-02-28", "")
		got := decode[[]dto.HolidayResponse](t, raw)
		if len(got) != 2 || got[0].Name != "Tet" || got[1].Name != "Mid Feb" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("upcoming", func(t *testing.T) {
		_, raw := do(t, app, http.MethodGet, "/api/holidays/upcoming", "")
		got := decode[[]dto.HolidayResponse](t, raw)
		if len(got) != 4 || got[0].Name != "Christmas" || got[0].StartDate != "2025-12-25T00:00:00.000Z" {
			t.Fatalf("got %+v", got)
		}
		// already past this year, so the next occurrence is used
		if got[1].Name != "Tet" || got[1].StartDate != "2026-02-10T00:00:00.000Z" {
			t.Errorf("got[1] = %+v", got[1])
		}
		if got[3].Name != "March" {
			t.Errorf("horizon day excluded: %+v", got)
		}

		_, raw = do(t, app, http.MethodGet, "/api/holidays/upcoming?months=1", "")
		if got := decode[[]dto.HolidayResponse](t, raw); len(got) != 1 {
			t.Errorf("months=1: %+v", got)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		_, raw := do(t, app, http.MethodGet, "/api/holidays/in-range?start=2025-07-01&end=2025-07-31", "")
		if strings.TrimSpace(string(raw)) != "[]" {
			t.Fatalf("body = %s", raw)
		}
	})
}

func TestImportStatic(t *testing.T) {
	app, repo := newTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/holidays/import-static", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("import: %d %s", resp.StatusCode, raw)
	}
	first := decode[dto.ImportStaticResponse](t, raw)
	if first.Message != "Static holidays import completed" || first.TotalAdded != 4 || first.TotalSkipped != 0 {
		t.Fatalf("first = %+v", first)
	}

	_, raw = do(t, app, http.MethodPost, "/api/holidays/import-static", "")
	second := decode[dto.ImportStaticResponse](t, raw)
	if second.TotalAdded != 0 || second.TotalSkipped != 4 {
		t.Fatalf("second = %+v", second)
	}
	for _, r := range second.Results {
		if r.Status != dto.ImportStatusAlreadyExists {
			t.Errorf("%s: %s", r.Name, r.Status)
		}
	}

	rows, _ := repo.ListAll(context.Background())
	if len(rows) != 4 {
		t.Errorf("stored %d rows", len(rows))
	}
}

func TestCORS(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name, origin, want string
	}{
		{"allowed origin echoed", "https://holiday-api-ruby.vercel.app", "https://holiday-api-ruby.vercel.app"},
		{"unknown origin gets first allowed", "https://evil.example", testOrigin},
		{"no origin gets first allowed", "", testOrigin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hdr []string
			if tt.origin != "" {
				hdr = []string{"Origin", tt.origin}
			}
			resp, _ := do(t, app, http.MethodGet, "/api/holidays", "", hdr...)
			if got := resp.Header.Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("allow-origin = %q, want %q", got, tt.want)
			}
			if got := resp.Header.Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE, OPTIONS" {
				t.Errorf("allow-methods = %q", got)
			}
		})
	}

	t.Run("preflight", func(t *testing.T) {
		resp, _ := do(t, app, http.MethodOptions, "/api/holidays", "", "Origin", testOrigin, "Access-Control-Request-Method", "POST")
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if resp.Header.Get("Access-Control-Max-Age") != "86400" {
			t.Errorf("max-age = %q", resp.Header.Get("Access-Control-Max-Age"))
		}
		if resp.Header.Get("Access-Control-Allow-Headers") != "Content-Type, Authorization" {
			t.Errorf("allow-headers = %q", resp.Header.Get("Access-Control-Allow-Headers"))
		}
	})
}

func TestHealthAndUI(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusOK || decode[map[string]any](t, raw)["database"] != "Connected" {
		t.Errorf("health: %d %s", resp.StatusCode, raw)
	}

	resp, raw = do(t, app, http.MethodGet, "/", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(raw), "Holiday Handler API") {
		t.Errorf("ui: %d", resp.StatusCode)
	}

	resp, raw = do(t, app, http.MethodGet, "/api/nope", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown route: %d %s", resp.StatusCode, raw)
	}
}

func TestEmptyEndDateOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	single := create(t, app, `{"name":"One Day","startDate":"2024-05-01T00:00:00.000Z","endDate":""}`)
	if single.EndDate != nil {
		t.Errorf("create endDate = %q, want null", *single.EndDate)
	}

	multi := create(t, app, `{"name":"Tet","startDate":"2024-02-10T00:00:00.000Z","endDate":"2024-02-14T00:00:00.000Z"}`)

	resp, raw := do(t, app, http.MethodPut, "/api/holidays/"+multi.ID, `{"name":"Tet","startDate":"2024-02-10T00:00:00.000Z","endDate":null}`)
	if resp.StatusCode != http.StatusOK || decode[dto.HolidayResponse](t, raw).EndDate == nil {
		t.Fatalf("null endDate: %d %s", resp.StatusCode, raw)
	}

	resp, raw = do(t, app, http.MethodPut, "/api/holidays/"+multi.ID, `{"name":"Tet","startDate":"2024-02-10T00:00:00.000Z","endDate":""}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("empty endDate: %d %s", resp.StatusCode, raw)
	}
	if got := decode[dto.HolidayResponse](t, raw); got.EndDate != nil {
		t.Errorf("endDate = %q, want cleared", *got.EndDate)
	}
}

func TestBodyWithoutContentType(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/holidays", strings.NewReader(`{"name":"Plain","startDate":"2024-05-01T00:00:00.000Z"}`))
	req.Header.Del("Content-Type")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d (%s)", resp.StatusCode, raw)
	}
	if got := decode[dto.HolidayResponse](t, raw); got.Name != "Plain" {
		t.Errorf("name = %q", got.Name)
	}
}
