package core

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Badge variants for the status column.
const (
	BadgeSuccess     = "success"
	BadgeInfo        = "info"
	BadgeDestructive = "destructive"
)

// FormatCurrency renders an amount for display: billions with two
// decimals and a B suffix, millions with no decimals and an M suffix,
// anything smaller as a thousands-grouped plain number.
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", amount/1_000_000_000)
	case amount >= 1_000_000:
		return fmt.Sprintf("%.0fM", amount/1_000_000)
	default:
		return humanize.Commaf(amount)
	}
}

// FormatDate renders a calendar date as "Jan 20, 2024".
func FormatDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

// StatusBadge maps a status to its visual variant. Unrecognized
// statuses fall back to success.
func StatusBadge(status Status) string {
	switch status {
	case StatusPaid:
		return BadgeInfo
	case StatusOverdue:
		return BadgeDestructive
	default:
		return BadgeSuccess
	}
}

var bankBadges = map[string]string{
	"Bank A": "bank-a",
	"Bank B": "bank-b",
	"Bank C": "bank-c",
	"Bank D": "bank-d",
	"Bank E": "bank-e",
}

// BankBadge maps a roster bank to its badge class, defaulting to the
// first bank's class for anything off-roster.
func BankBadge(bank string) string {
	if class, ok := bankBadges[bank]; ok {
		return class
	}
	return "bank-a"
}
