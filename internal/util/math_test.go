package util

import "testing"

func TestMedian(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		values   []float64
		expected float64
	}{
		"empty": {
			values:   nil,
			expected: 0,
		},
		"single": {
			values:   []float64{5},
			expected: 5,
		},
		"even count averages middle pair": {
			values:   []float64{1, 2, 3, 4},
			expected: 2.5,
		},
		"odd count takes middle": {
			values:   []float64{9, 1, 5},
			expected: 5,
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := Median(tc.values); got != tc.expected {
				t.Fatalf("Median() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 2}
	_ = Median(values)

	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Fatalf("Median mutated its input: %v", values)
	}
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		value    int64
		expected string
	}{
		"small":     {value: 500, expected: "500"},
		"thousands": {value: 1500, expected: "1,500"},
		"millions":  {value: 12345678, expected: "12,345,678"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := FormatCount(tc.value); got != tc.expected {
				t.Fatalf("FormatCount(%d) = %q, expected %q", tc.value, got, tc.expected)
			}
		})
	}
}

func TestRoundToInt64(t *testing.T) {
	t.Parallel()

	if got := RoundToInt64(2.5); got != 3 {
		t.Fatalf("RoundToInt64(2.5) = %d, expected 3", got)
	}
	if got := RoundToInt64(2.4); got != 2 {
		t.Fatalf("RoundToInt64(2.4) = %d, expected 2", got)
	}
}
