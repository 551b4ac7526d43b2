package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"loanboard/internal/core"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "loans.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	loan := core.Loan{
		ID: "L200", Bank: "Bank B", Amount: 400_000_000, Rate: 7.9,
		DisbursementDate: core.NewDate(2024, 7, 1), MaturityDate: core.NewDate(2026, 7, 1),
		Term: 24, Status: core.StatusActive, Notes: "expansion loan",
	}
	if err := s.Add(ctx, loan); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil || len(got) != 1 {
		t.Fatalf("list: err=%v n=%d", err, len(got))
	}
	if got[0] != loan {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got[0], loan)
	}
}

func TestSQLiteStoreOrderAndMutations(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	if err := s.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// second seed is a no-op
	if err := s.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	loans, _ := s.List(ctx)
	if len(loans) != 5 || loans[0].ID != "L001" || loans[4].ID != "L005" {
		t.Fatalf("seed order wrong: %d loans, first=%v", len(loans), loans[0].ID)
	}

	if err := s.Add(ctx, core.Loan{ID: "L001", Bank: "Bank A",
		DisbursementDate: core.NewDate(2024, 1, 1), MaturityDate: core.NewDate(2025, 1, 1),
		Status: core.StatusActive}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate add = %v, want ErrDuplicateID", err)
	}

	l := loans[2]
	l.Status = core.StatusOverdue
	if err := s.Update(ctx, l); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.Remove(ctx, "L004"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	after, _ := s.List(ctx)
	want := []string{"L001", "L002", "L003", "L005"}
	for i, id := range want {
		if after[i].ID != id {
			t.Fatalf("order after mutations: got %v at %d, want %v", after[i].ID, i, id)
		}
	}
	if after[2].Status != core.StatusOverdue {
		t.Fatalf("update not applied: %+v", after[2])
	}

	if err := s.Update(ctx, core.Loan{ID: "missing",
		DisbursementDate: core.NewDate(2024, 1, 1), MaturityDate: core.NewDate(2025, 1, 1),
		Status: core.StatusActive}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing = %v, want ErrNotFound", err)
	}
	if err := s.Remove(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove missing = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStoreVersion(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	v0, err := s.Version(ctx)
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	loan := core.Loan{ID: "L300", Bank: "Bank C",
		DisbursementDate: core.NewDate(2024, 1, 1), MaturityDate: core.NewDate(2025, 1, 1),
		Term: 12, Status: core.StatusActive}
	if err := s.Add(ctx, loan); err != nil {
		t.Fatalf("add: %v", err)
	}

	v1, _ := s.Version(ctx)
	if v1 != v0+1 {
		t.Fatalf("version after add = %d, want %d", v1, v0+1)
	}

	// failed mutation leaves the version untouched
	_ = s.Add(ctx, loan)
	v2, _ := s.Version(ctx)
	if v2 != v1 {
		t.Fatalf("version after failed add = %d, want %d", v2, v1)
	}
}
