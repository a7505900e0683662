package util

import (
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("Expected 2024-02-29, got %v", d)
	}
	if d.Location() != time.UTC {
		t.Errorf("Expected UTC, got %v", d.Location())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "01/02/2024", "2024-1-5", "not-a-date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("Expected error for %q, got nil", s)
		}
	}
}

func TestYearMonth_UsesUTC(t *testing.T) {
	// 23:30 on Jan 31 in UTC-5 is already February in that zone's east,
	// but bucketing must follow UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2024, 1, 31, 23, 30, 0, 0, loc)

	year, month := YearMonth(ts)
	if year != 2024 || month != 2 {
		t.Errorf("Expected 2024-02 (UTC), got %d-%02d", year, month)
	}
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	end := EndOfDay(d)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("Expected end of day, got %v", end)
	}
	if end.Day() != 15 {
		t.Errorf("Expected same calendar day, got %v", end)
	}
}
