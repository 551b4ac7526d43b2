// Package store owns the authoritative ordered loan collection.
//
// Mutations are keyed by loan ID rather than by collection index: a
// filtered or sorted view and the raw collection can never disagree
// about which record an operation targets, and duplicate IDs are
// rejected at save time.
package store

import (
	"context"
	"errors"

	"loanboard/internal/core"
)

var (
	ErrNotFound    = errors.New("loan not found")
	ErrDuplicateID = errors.New("loan id already exists")
)

// LoanStore is the persistence port for the dashboard. List returns a
// snapshot in insertion order; callers may sort or mutate the returned
// slice freely. Version increments on every successful mutation so
// derived-view caches can key on it.
type LoanStore interface {
	Add(ctx context.Context, loan core.Loan) error
	Update(ctx context.Context, loan core.Loan) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]core.Loan, error)
	Version(ctx context.Context) (int64, error)
	Close() error
}

// SeedLoans returns the reference portfolio the dashboard starts with
// when seeding is enabled.
func SeedLoans() []core.Loan {
	return []core.Loan{
		{ID: "L001", Bank: "Bank A", Amount: 1_000_000_000, Rate: 7.5,
			DisbursementDate: core.NewDate(2024, 1, 20), MaturityDate: core.NewDate(2025, 1, 15),
			Term: 11, Status: core.StatusActive},
		{ID: "L002", Bank: "Bank B", Amount: 500_000_000, Rate: 8.0,
			DisbursementDate: core.NewDate(2024, 2, 15), MaturityDate: core.NewDate(2025, 2, 15),
			Term: 12, Status: core.StatusActive},
		{ID: "L003", Bank: "Bank C", Amount: 750_000_000, Rate: 7.8,
			DisbursementDate: core.NewDate(2024, 3, 10), MaturityDate: core.NewDate(2025, 3, 10),
			Term: 12, Status: core.StatusActive},
		{ID: "L004", Bank: "Bank A", Amount: 300_000_000, Rate: 7.2,
			DisbursementDate: core.NewDate(2024, 4, 5), MaturityDate: core.NewDate(2025, 4, 5),
			Term: 12, Status: core.StatusActive},
		{ID: "L005", Bank: "Bank D", Amount: 1_200_000_000, Rate: 8.2,
			DisbursementDate: core.NewDate(2024, 5, 18), MaturityDate: core.NewDate(2025, 5, 18),
			Term: 12, Status: core.StatusActive},
	}
}
