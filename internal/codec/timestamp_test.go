package codec

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"20240105 14:30:15", time.Date(2024, 1, 5, 14, 30, 15, 0, chinaTZ)},
		{"20240105 14:30:15.123456", time.Date(2024, 1, 5, 14, 30, 15, 123456000, chinaTZ)},
		{"20240105 14:30:15.500", time.Date(2024, 1, 5, 14, 30, 15, 500000000, chinaTZ)},
	}

	for _, tt := range tests {
		got := ParseTimestamp(tt.input)
		if !got.Equal(tt.want) {
			t.Errorf("ParseTimestamp(%q) = %v; want %v", tt.input, got, tt.want)
		}
		if got.Location() != chinaTZ {
			t.Errorf("ParseTimestamp(%q) location = %v; want trading tz", tt.input, got.Location())
		}
	}
}

func TestParseTimestampEmpty(t *testing.T) {
	before := time.Now()
	got := ParseTimestamp("")
	after := time.Now()

	if got.Before(before.Add(-time.Second)) || got.After(after.Add(time.Second)) {
		t.Errorf("ParseTimestamp(\"\") = %v; want roughly now", got)
	}
}

func TestParseTimestampGarbage(t *testing.T) {
	// Unparsable input degrades to now, never panics.
	got := ParseTimestamp("not a timestamp")
	if time.Since(got) > time.Minute {
		t.Errorf("garbage input should fall back to now, got %v", got)
	}
}

func TestGenerateTimestamp(t *testing.T) {
	got := GenerateTimestamp("14:30:15.000")

	now := time.Now().In(chinaTZ)
	if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != now.Day() {
		t.Errorf("GenerateTimestamp date = %v; want today", got)
	}
	if got.Hour() != 14 || got.Minute() != 30 || got.Second() != 15 {
		t.Errorf("GenerateTimestamp time = %v; want 14:30:15", got)
	}
}

func FuzzParseTimestamp(f *testing.F) {
	f.Add("20240105 14:30:15")
	f.Add("20240105 14:30:15.123456")
	f.Add("")
	f.Add(".")
	f.Add("99999999 99:99:99")

	f.Fuzz(func(t *testing.T, s string) {
		// Must never panic; always returns some instant.
		_ = ParseTimestamp(s)
	})
}
