package core

// Statistics computes the whole-portfolio projection. Total interest
// sums over every loan; monthly interest sums over Active loans only,
// since Paid and Overdue loans are not accruing in the current month.
func Statistics(loans []Loan, yearBasis int) LoanStatistics {
	stats := LoanStatistics{TotalLoans: len(loans)}

	var rateSum float64
	for _, l := range loans {
		stats.TotalAmount += l.Amount
		rateSum += l.Rate
		stats.TotalInterest += TotalInterest(l.Amount, l.Rate, l.Term, yearBasis)
		if l.Status == StatusActive {
			stats.ActiveLoans++
			stats.MonthlyInterest += MonthlyInterest(l.Amount, l.Rate, yearBasis)
		}
	}
	if len(loans) > 0 {
		stats.AverageRate = rateSum / float64(len(loans))
	}
	return stats
}

// BankSummaries computes one row per roster bank, in roster order,
// including zero rows for banks with no loans. Unlike the portfolio
// figure, per-bank monthly interest sums over all of the bank's loans
// regardless of status.
func BankSummaries(loans []Loan, yearBasis int) []BankSummary {
	summaries := make([]BankSummary, 0, len(Banks))
	for _, bank := range Banks {
		s := BankSummary{Bank: bank}
		var rateSum float64
		for _, l := range loans {
			if l.Bank != bank {
				continue
			}
			s.Count++
			s.TotalAmount += l.Amount
			rateSum += l.Rate
			s.MonthlyInterest += MonthlyInterest(l.Amount, l.Rate, yearBasis)
			s.TotalInterest += TotalInterest(l.Amount, l.Rate, l.Term, yearBasis)
		}
		if s.Count > 0 {
			s.AvgRate = rateSum / float64(s.Count)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
