package core

import (
	"errors"
	"strings"
	"time"
)

const (
	StatusActive  Status = "Active"
	StatusPaid    Status = "Paid"
	StatusOverdue Status = "Overdue"
)

// Banks is the fixed lender roster. Loans carry an open bank string,
// but summaries always report one row per roster entry.
var Banks = []string{"Bank A", "Bank B", "Bank C", "Bank D", "Bank E"}

type (
	Status string

	Date struct {
		time.Time
	}

	// Loan is one lending agreement. Term is stored rather than derived
	// on every read so a directly constructed record can override it;
	// the save path recomputes it from the two dates.
	Loan struct {
		ID               string  `json:"id"`
		Bank             string  `json:"bank"`
		Amount           float64 `json:"amount"`
		Rate             float64 `json:"rate"` // annual rate in percent, 7.5 means 7.5%/year
		DisbursementDate Date    `json:"disbursementDate"`
		MaturityDate     Date    `json:"maturityDate"`
		Term             int     `json:"term"` // whole months between disbursement and maturity
		Status           Status  `json:"status"`
		Notes            string  `json:"notes"`
	}

	// Settings is session-scoped configuration. PaymentDay is displayed
	// but consumed by no formula; YearBasis divides every interest figure.
	Settings struct {
		PaymentDay int `json:"paymentDay"`
		YearBasis  int `json:"yearBasis"`
	}

	// LoanStatistics is a pure projection over the full loan set,
	// recomputed on demand and never persisted.
	LoanStatistics struct {
		TotalLoans      int     `json:"totalLoans"`
		ActiveLoans     int     `json:"activeLoans"`
		TotalAmount     float64 `json:"totalAmount"`
		AverageRate     float64 `json:"averageRate"`
		TotalInterest   float64 `json:"totalInterest"`
		MonthlyInterest float64 `json:"monthlyInterest"`
	}

	// BankSummary is the per-bank projection, one row per roster bank
	// even when the bank holds no loans.
	BankSummary struct {
		Bank            string  `json:"bank"`
		Count           int     `json:"count"`
		TotalAmount     float64 `json:"totalAmount"`
		AvgRate         float64 `json:"avgRate"`
		MonthlyInterest float64 `json:"monthlyInterest"`
		TotalInterest   float64 `json:"totalInterest"`
	}
)

// DefaultYearBasis is the day-count divisor used when none is configured.
const DefaultYearBasis = 365

// DefaultPaymentDay matches the dashboard's initial setting.
const DefaultPaymentDay = 25

// DefaultSettings returns the session defaults. The year-basis default
// lives here, not inside the formulas: a caller who passes a zero basis
// gets IEEE division-by-zero semantics, not a silent fallback.
func DefaultSettings() Settings {
	return Settings{PaymentDay: DefaultPaymentDay, YearBasis: DefaultYearBasis}
}

var (
	ErrEmptyID           = errors.New("empty loan id")
	ErrEmptyBank         = errors.New("empty bank")
	ErrNegativeAmount    = errors.New("negative amount")
	ErrEmptyDisbursement = errors.New("empty disbursement date")
	ErrEmptyMaturity     = errors.New("empty maturity date")
	ErrInvalidStatus     = errors.New("invalid status")
)

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String renders the date back in ISO YYYY-MM-DD form.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Validate checks the required fields for the save path. Notes stays
// optional; Rate and Amount may be zero, only a negative amount is
// rejected.
func (l Loan) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(l.Bank) == "" {
		return ErrEmptyBank
	}
	if l.Amount < 0 {
		return ErrNegativeAmount
	}
	if l.DisbursementDate.IsZero() {
		return ErrEmptyDisbursement
	}
	if l.MaturityDate.IsZero() {
		return ErrEmptyMaturity
	}
	if !l.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
