package report

import "github.com/shopspring/decimal"

// tolerance absorbs accumulation error when checking that two columns foot
// to equal totals.
var tolerance = decimal.New(1, -2) // 0.01

// Row is one line of a two-column statement. Exactly one side carries an
// amount; the other is nil and rendered blank. Sign is conveyed purely by
// column placement, amounts are always absolute.
type Row struct {
	Name   string
	Debit  *decimal.Decimal
	Credit *decimal.Decimal
}

// debitRow returns a row with the amount in the debit column.
func debitRow(name string, amount decimal.Decimal) Row {
	return Row{Name: name, Debit: &amount}
}

// creditRow returns a row with the amount in the credit column.
func creditRow(name string, amount decimal.Decimal) Row {
	return Row{Name: name, Credit: &amount}
}

// balanceRow places a signed balance in the debit column when positive,
// else in the credit column, as an absolute amount.
func balanceRow(name string, balance decimal.Decimal) Row {
	if balance.IsPositive() {
		return debitRow(name, balance)
	}
	return creditRow(name, balance.Abs())
}

// withinTolerance reports whether a and b differ by less than the footing
// tolerance.
func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}
