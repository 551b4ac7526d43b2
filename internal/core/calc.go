package core

// Interest formulas. All of them are pure and total: degenerate input
// (zero year basis, negative term, NaN) flows through IEEE-754
// arithmetic untouched instead of being guarded.

// firstPeriodDays approximates the irregular disbursement-to-first-payment
// window with a constant stub. It is deliberately independent of the
// configured payment day.
const firstPeriodDays = 5

// MonthlyInterest returns the interest accrued over a nominal 30-day
// month at the given annual percentage rate and day-count basis.
func MonthlyInterest(amount, rate float64, yearBasis int) float64 {
	return amount * (rate / 100) * 30 / float64(yearBasis)
}

// TotalInterest returns the interest over the whole term: a fixed
// 5-day first period plus (term-1) full monthly periods. A term of
// zero or less evaluates algebraically, without clamping.
func TotalInterest(amount, rate float64, term, yearBasis int) float64 {
	monthly := MonthlyInterest(amount, rate, yearBasis)
	first := amount * (rate / 100) * firstPeriodDays / float64(yearBasis)
	return first + float64(term-1)*monthly
}

// TermMonths counts calendar months between two dates, ignoring the
// day of month entirely: Jan 31 to Feb 1 is one month, the same as
// Jan 1 to Feb 28. The result is negative when end precedes start.
func TermMonths(start, end Date) int {
	return (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
}
