package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func validLoan() Loan {
	return Loan{
		ID:               "L010",
		Bank:             "Bank C",
		Amount:           750_000_000,
		Rate:             7.8,
		DisbursementDate: NewDate(2024, 3, 10),
		MaturityDate:     NewDate(2025, 3, 10),
		Term:             12,
		Status:           StatusActive,
	}
}

func TestLoanValidate(t *testing.T) {
	if err := validLoan().Validate(); err != nil {
		t.Fatalf("valid loan rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Loan)
		want   error
	}{
		{"empty id", func(l *Loan) { l.ID = "  " }, ErrEmptyID},
		{"empty bank", func(l *Loan) { l.Bank = "" }, ErrEmptyBank},
		{"negative amount", func(l *Loan) { l.Amount = -1 }, ErrNegativeAmount},
		{"missing disbursement", func(l *Loan) { l.DisbursementDate = Date{} }, ErrEmptyDisbursement},
		{"missing maturity", func(l *Loan) { l.MaturityDate = Date{} }, ErrEmptyMaturity},
		{"bogus status", func(l *Loan) { l.Status = "Pending" }, ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := validLoan()
			tc.mutate(&l)
			if err := l.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoanValidateOptionalFields(t *testing.T) {
	l := validLoan()
	l.Notes = ""
	l.Amount = 0
	l.Rate = 0
	if err := l.Validate(); err != nil {
		t.Fatalf("zero amount/rate and empty notes should pass: %v", err)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 1, 20)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-01-20"` {
		t.Fatalf("marshal = %s, want \"2024-01-20\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip = %v, want %v", back, d)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "20-01-2024", "2024/01/20", "not a date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) accepted garbage", s)
		}
	}
}
