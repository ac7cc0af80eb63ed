package report

import (
	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
)

// Balances maps account id to its signed net amount. Debits increase the
// balance, credits decrease it, so revenue accounts end up negative and
// expense accounts positive. Accounts with no transactions are absent and
// read as zero.
type Balances map[string]decimal.Decimal

// Apply folds a single transaction into the map.
func (b Balances) Apply(t *domain.Transaction) {
	b[t.Debit] = b[t.Debit].Add(t.Amount)
	b[t.Credit] = b[t.Credit].Sub(t.Amount)
}

// Get returns the balance for an account id, zero when absent.
func (b Balances) Get(id string) decimal.Decimal {
	return b[id]
}

// Calculate folds an ordered transaction list into per-account balances.
// The final totals are order independent; only trend building cares about
// transaction order.
func Calculate(transactions []*domain.Transaction) Balances {
	balances := make(Balances, len(transactions))
	for _, t := range transactions {
		balances.Apply(t)
	}
	return balances
}

// NetProfit derives net profit (positive) or loss (negative) from balances,
// summing the negated balance over trading and P&L category accounts.
// Revenue balances are naturally negative and expense balances positive in
// this sign convention, so the negation yields a positive result when
// revenues exceed expenses.
func NetProfit(chart *domain.Chart, balances Balances) decimal.Decimal {
	profit := decimal.Zero
	for _, acc := range chart.ByCategory(domain.CategoryTrading) {
		profit = profit.Sub(balances.Get(acc.ID))
	}
	for _, acc := range chart.ByCategory(domain.CategoryPL) {
		profit = profit.Sub(balances.Get(acc.ID))
	}
	return profit
}
