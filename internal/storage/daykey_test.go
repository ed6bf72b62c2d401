package storage

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	day := time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)

	if got := DayKey("stats", day); got != "stats_2025-03-03" {
		t.Errorf("DayKey = %q, want stats_2025-03-03", got)
	}
}

func TestDayKey_TimeComponentIgnored(t *testing.T) {
	morning := time.Date(2025, 3, 3, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, 3, 3, 23, 59, 59, 0, time.UTC)

	if DayKey("workouts", morning) != DayKey("workouts", night) {
		t.Error("same calendar date produced different keys")
	}
}

func TestDayKey_DistinctDates(t *testing.T) {
	a := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	if DayKey("stats", a) == DayKey("stats", b) {
		t.Error("different dates produced the same key")
	}
}

func TestParseDay_RoundTrip(t *testing.T) {
	day, err := ParseDay("2025-03-03")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if got := FormatDay(day); got != "2025-03-03" {
		t.Errorf("round trip = %q, want 2025-03-03", got)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	if _, err := ParseDay("03/03/2025"); err == nil {
		t.Error("ParseDay accepted a non-ISO date")
	}
}
