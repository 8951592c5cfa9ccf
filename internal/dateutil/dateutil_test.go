package dateutil

import (
	"testing"
	"time"
)

func TestFormatKey(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.March, 15, 13, 45, 0, 0, time.Local), "2024-03-15"},
		{time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local), "2024-02-29"},
		{time.Date(2025, time.January, 1, 23, 59, 59, 0, time.Local), "2025-01-01"},
		{time.Date(1999, time.December, 9, 0, 0, 0, 0, time.Local), "1999-12-09"},
	}
	for _, c := range cases {
		if got := FormatKey(c.date); got != c.want {
			t.Errorf("FormatKey(%v) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local),
		time.Date(2000, time.February, 29, 0, 0, 0, 0, time.Local),
	}
	for _, d := range dates {
		got, err := ParseKey(FormatKey(d))
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", FormatKey(d), err)
		}
		if !SameDay(got, d) {
			t.Errorf("round trip of %v landed on %v", d, got)
		}
	}
}

func TestParseKeyAcceptsSlashes(t *testing.T) {
	got, err := ParseKey("2024/03/15")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "not a date", "2024-13-01", "2024-02-30"} {
		if _, err := ParseKey(s); err == nil {
			t.Errorf("ParseKey(%q) succeeded, want error", s)
		}
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, time.June, 2, 8, 0, 0, 0, time.Local)
	night := time.Date(2024, time.June, 2, 23, 30, 0, 0, time.Local)
	nextDay := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.Local)
	sameDayNextYear := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.Local)

	if !SameDay(morning, night) {
		t.Error("same day at different times should match")
	}
	if SameDay(night, nextDay) {
		t.Error("adjacent days should not match")
	}
	if SameDay(morning, sameDayNextYear) {
		t.Error("same month/day in a different year should not match")
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, time.June, 2, 14, 30, 12, 0, time.Local)

	start := StartOfDay(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay = %v, want midnight", start)
	}
	end := EndOfDay(at)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v, want 23:59:59", end)
	}
	if !SameDay(start, at) || !SameDay(end, at) {
		t.Error("day bounds left the day")
	}
}
