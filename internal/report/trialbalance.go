package report

import (
	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
)

// TrialBalance lists every non-zero account balance split into debit and
// credit columns, with a footing check on the totals.
type TrialBalance struct {
	Rows        []Row
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
	// Difference is the absolute gap between the column totals when the
	// trial balance does not foot. Zero when balanced.
	Difference decimal.Decimal
}

// BuildTrialBalance emits one row per non-zero account in chart-declaration
// order. Positive balances land in the debit column, negative in credit.
func BuildTrialBalance(chart *domain.Chart, balances Balances) TrialBalance {
	tb := TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Difference:  decimal.Zero,
	}

	for _, acc := range chart.Accounts() {
		bal := balances.Get(acc.ID)
		if bal.IsZero() {
			continue
		}
		if bal.IsPositive() {
			tb.TotalDebit = tb.TotalDebit.Add(bal.Abs())
		} else {
			tb.TotalCredit = tb.TotalCredit.Add(bal.Abs())
		}
		tb.Rows = append(tb.Rows, balanceRow(acc.Name, bal))
	}

	tb.Balanced = withinTolerance(tb.TotalDebit, tb.TotalCredit)
	if !tb.Balanced {
		tb.Difference = tb.TotalDebit.Sub(tb.TotalCredit).Abs()
	}

	return tb
}
