// file: internals/seeds/holidays/static_holidays.go
package holidays

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	d "holiday_backend/internals/features/holidays/holidays/dto"
)

//go:embed data_static_holidays.json
var defaultStaticHolidays []byte

// LoadStaticHolidays reads the seed set from path, or the embedded Vietnamese
// fixed-date holidays when path is empty. Entries use the POST /holidays body.
func LoadStaticHolidays(path string) ([]d.HolidayCreateRequest, error) {
	data := defaultStaticHolidays
	if p := strings.TrimSpace(path); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read static holidays %s: %w", p, err)
		}
		data = b
	}

	var seeds []d.HolidayCreateRequest
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse static holidays: %w", err)
	}
	return seeds, nil
}

// Source returns a loader bound to path, read fresh on every call so edits to
// the file apply without a restart.
func Source(path string) func() ([]d.HolidayCreateRequest, error) {
	return func() ([]d.HolidayCreateRequest, error) {
		return LoadStaticHolidays(path)
	}
}
