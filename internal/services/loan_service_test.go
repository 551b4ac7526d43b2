package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"loanboard/internal/core"
	"loanboard/internal/store"
)

type recordingPublisher struct {
	published []string
	fail      bool
}

func (p *recordingPublisher) PublishLoanChanged(_ context.Context, id, op string) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, op+":"+id)
	return nil
}

func newTestService(pub ChangePublisher) *LoanService {
	return NewLoanService(store.NewSeededMemoryStore(), pub, core.DefaultSettings(), nil)
}

func TestSaveLoanRecomputesTerm(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	loan := core.Loan{
		ID: "L100", Bank: "Bank E", Amount: 100_000_000, Rate: 7.0,
		DisbursementDate: core.NewDate(2024, 1, 20),
		MaturityDate:     core.NewDate(2025, 1, 15),
		Term:             999, // caller-supplied term is ignored on save
		Status:           core.StatusActive,
	}
	saved, err := svc.SaveLoan(ctx, loan, false)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Term != 12 {
		t.Fatalf("saved term = %d, want 12", saved.Term)
	}

	loans, _ := svc.Loans(ctx)
	got := loans[len(loans)-1]
	if got.Term != 12 || got.ID != "L100" {
		t.Fatalf("stored loan = %+v", got)
	}
}

func TestSaveLoanValidates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	_, err := svc.SaveLoan(ctx, core.Loan{Bank: "Bank A"}, false)
	if !errors.Is(err, core.ErrEmptyID) {
		t.Fatalf("save invalid = %v, want ErrEmptyID", err)
	}

	// validation failure never mutates the store
	loans, _ := svc.Loans(ctx)
	if len(loans) != 5 {
		t.Fatalf("store mutated by invalid save: %d loans", len(loans))
	}
}

func TestSaveLoanRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	dup := core.Loan{
		ID: "L001", Bank: "Bank B", Amount: 1,
		DisbursementDate: core.NewDate(2024, 1, 1), MaturityDate: core.NewDate(2025, 1, 1),
		Status: core.StatusActive,
	}
	_, err := svc.SaveLoan(ctx, dup, false)
	if !errors.Is(err, store.ErrDuplicateID) {
		t.Fatalf("duplicate save = %v, want ErrDuplicateID", err)
	}
}

func TestSaveAndDeletePublishChanges(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := newTestService(pub)

	loan := core.Loan{
		ID: "L100", Bank: "Bank A", Amount: 1, Rate: 5,
		DisbursementDate: core.NewDate(2024, 1, 1), MaturityDate: core.NewDate(2025, 1, 1),
		Status: core.StatusActive,
	}
	if _, err := svc.SaveLoan(ctx, loan, false); err != nil {
		t.Fatalf("save: %v", err)
	}
	loan.Status = core.StatusPaid
	if _, err := svc.SaveLoan(ctx, loan, true); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.DeleteLoan(ctx, "L100"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []string{"create:L100", "update:L100", "delete:L100"}
	if strings.Join(pub.published, " ") != strings.Join(want, " ") {
		t.Fatalf("published %v, want %v", pub.published, want)
	}
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&recordingPublisher{fail: true})

	loan := core.Loan{
		ID: "L100", Bank: "Bank A", Amount: 1,
		DisbursementDate: core.NewDate(2024, 1, 1), MaturityDate: core.NewDate(2025, 1, 1),
		Status: core.StatusActive,
	}
	if _, err := svc.SaveLoan(ctx, loan, false); err != nil {
		t.Fatalf("save should survive publish failure: %v", err)
	}

	loans, _ := svc.Loans(ctx)
	if len(loans) != 6 {
		t.Fatalf("loan not stored: %d loans", len(loans))
	}
}

func TestDerivedViewsRecomputeAfterMutation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	before, _ := svc.Statistics(ctx)
	if before.TotalLoans != 5 || before.ActiveLoans != 5 {
		t.Fatalf("seed statistics = %+v", before)
	}

	if err := svc.DeleteLoan(ctx, "L005"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	after, _ := svc.Statistics(ctx)
	if after.TotalLoans != 4 {
		t.Fatalf("statistics stale after delete: %+v", after)
	}
	if after.TotalAmount != before.TotalAmount-1_200_000_000 {
		t.Fatalf("TotalAmount = %v", after.TotalAmount)
	}

	summaries, _ := svc.BankSummaries(ctx)
	// Bank D only held L005
	if summaries[3].Count != 0 || summaries[3].TotalAmount != 0 {
		t.Fatalf("Bank D summary stale: %+v", summaries[3])
	}
}

func TestFilteredLoansUsesSessionYearBasis(t *testing.T) {
	ctx := context.Background()
	svc := NewLoanService(store.NewSeededMemoryStore(), nil,
		core.Settings{PaymentDay: 25, YearBasis: 360}, nil)

	got, err := svc.FilteredLoans(ctx, core.Query{SortBy: core.SortByInterest})
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	if len(got) != 5 || got[0].ID != "L005" {
		t.Fatalf("interest sort head = %v", got[0].ID)
	}
}

func TestExportCSVUsesRepositoryOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	csv, err := svc.ExportCSV(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(csv, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header + 5 rows", len(lines))
	}
	for i, id := range []string{"L001", "L002", "L003", "L004", "L005"} {
		if !strings.HasPrefix(lines[i+1], id+",") {
			t.Fatalf("row %d = %q, want %s first", i+1, lines[i+1], id)
		}
	}
}
