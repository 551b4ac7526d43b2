package core

import (
	"strconv"
	"strings"
)

// csvHeader is the fixed export column order.
const csvHeader = "Loan ID,Bank,Amount,Rate,Disbursement,Maturity,Term,Status"

// ExportCSV renders the collection in repository order, one row per
// loan with a trailing newline on every row including the last.
// Fields are comma-joined without quoting or escaping. Downstream
// consumers depend on the exact bytes, so encoding/csv, which quotes
// embedded commas, cannot be used here.
func ExportCSV(loans []Loan) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, l := range loans {
		row := []string{
			l.ID,
			l.Bank,
			strconv.FormatFloat(l.Amount, 'f', -1, 64),
			strconv.FormatFloat(l.Rate, 'f', -1, 64),
			l.DisbursementDate.String(),
			l.MaturityDate.String(),
			strconv.Itoa(l.Term),
			string(l.Status),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
