package services

import (
	"context"
	"fmt"

	"loanboard/internal/amqp"
	"loanboard/internal/core"
	"loanboard/internal/log"
	"loanboard/internal/store"
)

// ChangePublisher notifies interested consumers that the portfolio
// changed. A nil publisher disables notifications.
type ChangePublisher interface {
	PublishLoanChanged(ctx context.Context, id, op string) error
}

// LoanService orchestrates loan operations across the store and the
// optional change stream, threading the session settings into every
// calculation.
type LoanService struct {
	store     store.LoanStore
	publisher ChangePublisher
	settings  core.Settings
	logger    *log.Logger
}

func NewLoanService(st store.LoanStore, publisher ChangePublisher, settings core.Settings, logger *log.Logger) *LoanService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &LoanService{
		store:     st,
		publisher: publisher,
		settings:  settings,
		logger:    logger.WithComponent(log.ComponentLoan),
	}
}

// Settings returns the session-scoped calculation settings.
func (s *LoanService) Settings() core.Settings {
	return s.settings
}

// SaveLoan validates and persists a loan. The term is always recomputed
// from the two dates on this path; a caller-supplied term is ignored.
// The change notification is best effort: a publish failure never fails
// the mutation.
func (s *LoanService) SaveLoan(ctx context.Context, loan core.Loan, isUpdate bool) (core.Loan, error) {
	if err := loan.Validate(); err != nil {
		return core.Loan{}, fmt.Errorf("validate loan: %w", err)
	}

	loan.Term = core.TermMonths(loan.DisbursementDate, loan.MaturityDate)

	op := amqp.OpCreate
	var err error
	if isUpdate {
		op = amqp.OpUpdate
		err = s.store.Update(ctx, loan)
	} else {
		err = s.store.Add(ctx, loan)
	}
	if err != nil {
		return core.Loan{}, fmt.Errorf("save loan: %w", err)
	}

	s.logger.InfoContext(ctx, "Loan saved",
		log.FieldLoanID, loan.ID,
		log.FieldBank, loan.Bank,
		log.FieldAmount, loan.Amount,
		log.FieldTerm, loan.Term,
		log.FieldOperation, op)

	s.publish(ctx, loan.ID, op)
	return loan, nil
}

// DeleteLoan removes a loan by id. The destructive-action confirmation
// is enforced at the transport boundary, not here.
func (s *LoanService) DeleteLoan(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}

	s.logger.InfoContext(ctx, "Loan deleted",
		log.FieldLoanID, id,
		log.FieldOperation, amqp.OpDelete)

	s.publish(ctx, id, amqp.OpDelete)
	return nil
}

// Loans returns the full collection in repository order.
func (s *LoanService) Loans(ctx context.Context) ([]core.Loan, error) {
	return s.store.List(ctx)
}

// FilteredLoans applies the query to a fresh snapshot.
func (s *LoanService) FilteredLoans(ctx context.Context, q core.Query) ([]core.Loan, error) {
	loans, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return q.Apply(loans, s.settings.YearBasis), nil
}

// Statistics recomputes the portfolio projection from scratch.
func (s *LoanService) Statistics(ctx context.Context) (core.LoanStatistics, error) {
	loans, err := s.store.List(ctx)
	if err != nil {
		return core.LoanStatistics{}, fmt.Errorf("list loans: %w", err)
	}
	return core.Statistics(loans, s.settings.YearBasis), nil
}

// BankSummaries recomputes the per-bank projection from scratch.
func (s *LoanService) BankSummaries(ctx context.Context) ([]core.BankSummary, error) {
	loans, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return core.BankSummaries(loans, s.settings.YearBasis), nil
}

// ExportCSV renders the collection in repository order, never in any
// filtered or sorted view order.
func (s *LoanService) ExportCSV(ctx context.Context) (string, error) {
	loans, err := s.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list loans: %w", err)
	}
	return core.ExportCSV(loans), nil
}

// StoreVersion exposes the store's mutation counter for cache keying.
func (s *LoanService) StoreVersion(ctx context.Context) (int64, error) {
	return s.store.Version(ctx)
}

func (s *LoanService) publish(ctx context.Context, id, op string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLoanChanged(ctx, id, op); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish loan change",
			log.FieldLoanID, id,
			log.FieldOperation, op,
			log.FieldError, err)
	}
}

// Close releases the store.
func (s *LoanService) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
