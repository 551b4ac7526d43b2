package core

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel that disables the bank or status filter.
const FilterAll = "all"

const (
	TabAll     Tab = "all"
	TabActive  Tab = "active"
	TabPaid    Tab = "paid"
	TabOverdue Tab = "overdue"
	TabSummary Tab = "summary"
)

const (
	SortByAmount       SortKey = "amount"
	SortByRate         SortKey = "rate"
	SortByDisbursement SortKey = "disbursement"
	SortByInterest     SortKey = "interest"
)

type (
	Tab     string
	SortKey string

	// Query describes one filtered/sorted view of the loan collection.
	// Zero values behave like the dashboard's defaults: empty search
	// matches everything, empty bank/status filters nothing out.
	Query struct {
		Search string
		Bank   string
		Status string
		Tab    Tab
		SortBy SortKey
	}
)

// tab categories that further restrict by status; TabAll and TabSummary
// impose no restriction (the summary tab is fed by BankSummaries, not
// by this view).
var tabStatus = map[Tab]Status{
	TabActive:  StatusActive,
	TabPaid:    StatusPaid,
	TabOverdue: StatusOverdue,
}

// Apply filters and sorts the collection into a new slice, never
// reordering the input. Stages run in fixed order: search, bank,
// status, tab, sort. Every sort key orders descending; ties keep
// their relative order.
func (q Query) Apply(loans []Loan, yearBasis int) []Loan {
	filtered := make([]Loan, 0, len(loans))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, l := range loans {
		if search != "" && !matchesSearch(l, search) {
			continue
		}
		if q.Bank != "" && q.Bank != FilterAll && l.Bank != q.Bank {
			continue
		}
		if q.Status != "" && q.Status != FilterAll && string(l.Status) != q.Status {
			continue
		}
		if want, ok := tabStatus[q.Tab]; ok && l.Status != want {
			continue
		}
		filtered = append(filtered, l)
	}

	switch q.SortBy {
	case SortByAmount:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Amount > filtered[j].Amount
		})
	case SortByRate:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rate > filtered[j].Rate
		})
	case SortByDisbursement:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DisbursementDate.After(filtered[j].DisbursementDate.Time)
		})
	case SortByInterest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return TotalInterest(filtered[i].Amount, filtered[i].Rate, filtered[i].Term, yearBasis) >
				TotalInterest(filtered[j].Amount, filtered[j].Rate, filtered[j].Term, yearBasis)
		})
	default:
		// unknown key: leave filtered order unchanged
	}

	return filtered
}

// matchesSearch reports whether the lowercased term occurs in the
// loan's id, bank or notes.
func matchesSearch(l Loan, term string) bool {
	return strings.Contains(strings.ToLower(l.ID), term) ||
		strings.Contains(strings.ToLower(l.Bank), term) ||
		strings.Contains(strings.ToLower(l.Notes), term)
}
