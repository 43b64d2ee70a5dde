package util

import (
	"testing"
	"time"
)

func TestDatePart(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		timestamp string
		expected  string
	}{
		"full timestamp": {
			timestamp: "2026-08-20T09:30:00Z",
			expected:  "2026-08-20",
		},
		"date only": {
			timestamp: "2026-08-20",
			expected:  "2026-08-20",
		},
		"too short": {
			timestamp: "2026-08",
			expected:  "",
		},
		"empty": {
			timestamp: "",
			expected:  "",
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := DatePart(tc.timestamp); got != tc.expected {
				t.Fatalf("DatePart(%q) = %q, expected %q", tc.timestamp, got, tc.expected)
			}
		})
	}
}

func TestParseISODuration(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		duration string
		expected int64
	}{
		"minutes and seconds": {duration: "PT15M33S", expected: 933},
		"hours only":          {duration: "PT2H", expected: 7200},
		"all parts":           {duration: "PT1H2M3S", expected: 3723},
		"empty":               {duration: "", expected: 0},
		"malformed":           {duration: "P1DT2H", expected: 0},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ParseISODuration(tc.duration); got != tc.expected {
				t.Fatalf("ParseISODuration(%q) = %d, expected %d", tc.duration, got, tc.expected)
			}
		})
	}
}

func TestDaysSinceDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	if got := DaysSinceDate("2026-08-29", now); got != 3 {
		// 2.5 days rounds up
		t.Fatalf("DaysSinceDate = %d, expected 3", got)
	}
	if got := DaysSinceDate("", now); got != -1 {
		t.Fatalf("DaysSinceDate empty = %d, expected -1", got)
	}
	if got := DaysSinceDate("not-a-date", now); got != -1 {
		t.Fatalf("DaysSinceDate malformed = %d, expected -1", got)
	}
}
