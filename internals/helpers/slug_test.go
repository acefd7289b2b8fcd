package helper

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Tết Nguyên Đán", 0, "tet-nguyen-dan"},
		{"Ngày Quốc khánh", 0, "ngay-quoc-khanh"},
		{"  New Year's Day!  ", 0, "new-year-s-day"},
		{"Straße", 0, "strasse"},
		{"---", 0, "item"},
		{"", 0, "item"},
		{"abcdef-ghij", 7, "abcdef"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Slugify(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
