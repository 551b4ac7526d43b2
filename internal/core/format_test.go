package core

import (
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1_200_000_000, "1.20B"},
		{1_000_000_000, "1.00B"},
		{500_000_000, "500M"},
		{1_000_000, "1M"},
		{999_999, "999,999"},
		{300_000, "300,000"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(NewDate(2024, 1, 20)); got != "Jan 20, 2024" {
		t.Fatalf("FormatDate = %q, want %q", got, "Jan 20, 2024")
	}
	if got := FormatDate(NewDate(2025, 4, 5)); got != "Apr 5, 2025" {
		t.Fatalf("FormatDate = %q, want %q", got, "Apr 5, 2025")
	}
	if got := FormatDate(Date{}); got != "" {
		t.Fatalf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestStatusBadge(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusActive, BadgeSuccess},
		{StatusPaid, BadgeInfo},
		{StatusOverdue, BadgeDestructive},
		// unrecognized statuses fall back to success
		{Status("Frozen"), BadgeSuccess},
		{Status(""), BadgeSuccess},
	}
	for _, tc := range cases {
		if got := StatusBadge(tc.status); got != tc.want {
			t.Errorf("StatusBadge(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestBankBadge(t *testing.T) {
	if got := BankBadge("Bank C"); got != "bank-c" {
		t.Fatalf("BankBadge = %q, want bank-c", got)
	}
	if got := BankBadge("Some Credit Union"); got != "bank-a" {
		t.Fatalf("BankBadge fallback = %q, want bank-a", got)
	}
}
