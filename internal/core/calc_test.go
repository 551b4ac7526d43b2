package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestMonthlyInterest(t *testing.T) {
	got := MonthlyInterest(1_000_000_000, 7.5, 365)
	want := 1_000_000_000 * 0.075 * 30 / 365.0
	if !almostEqual(got, want) {
		t.Fatalf("MonthlyInterest = %v, want %v", got, want)
	}
	// roughly 6.16M per month on a 1B loan at 7.5%
	if got < 6_164_383 || got > 6_164_384 {
		t.Fatalf("MonthlyInterest = %v, outside expected band", got)
	}
}

func TestMonthlyInterestZeroBasisPropagates(t *testing.T) {
	if got := MonthlyInterest(100, 5, 0); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for zero year basis, got %v", got)
	}
	if got := MonthlyInterest(0, 0, 0); !math.IsNaN(got) {
		t.Fatalf("expected NaN for 0*rate/0, got %v", got)
	}
}

func TestTotalInterest(t *testing.T) {
	amount, rate := 1_000_000_000.0, 7.5
	got := TotalInterest(amount, rate, 11, 365)
	want := amount*0.075*5/365 + 10*MonthlyInterest(amount, rate, 365)
	if !almostEqual(got, want) {
		t.Fatalf("TotalInterest = %v, want %v", got, want)
	}
	if got < 62_671_232 || got > 62_671_233 {
		t.Fatalf("TotalInterest = %v, outside expected band", got)
	}
}

func TestTotalInterestDegenerateTerms(t *testing.T) {
	amount, rate := 1000.0, 10.0
	first := amount * 0.10 * 5 / 365
	monthly := MonthlyInterest(amount, rate, 365)

	// term <= 0 evaluates algebraically, no clamping
	cases := []struct {
		term int
		want float64
	}{
		{1, first},
		{0, first - monthly},
		{-2, first - 3*monthly},
	}
	for _, tc := range cases {
		if got := TotalInterest(amount, rate, tc.term, 365); !almostEqual(got, tc.want) {
			t.Errorf("TotalInterest(term=%d) = %v, want %v", tc.term, got, tc.want)
		}
	}
}

func TestTermMonths(t *testing.T) {
	cases := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{"jan to jan across one year", NewDate(2024, 1, 20), NewDate(2025, 1, 15), 12},
		{"day of month ignored, end of month", NewDate(2024, 1, 31), NewDate(2024, 2, 1), 1},
		{"day of month ignored, start of month", NewDate(2024, 1, 1), NewDate(2024, 2, 28), 1},
		{"same month", NewDate(2024, 3, 1), NewDate(2024, 3, 31), 0},
		{"negative when reversed", NewDate(2025, 2, 1), NewDate(2024, 11, 30), -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TermMonths(tc.start, tc.end); got != tc.want {
				t.Fatalf("TermMonths = %d, want %d", got, tc.want)
			}
		})
	}
}
