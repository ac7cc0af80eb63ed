package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
)

// LedgerEntry is one line of a single account's ledger view: the movement
// and the running balance after it.
type LedgerEntry struct {
	Date       time.Time
	Particular string
	Debit      decimal.Decimal
	Credit     decimal.Decimal
	Balance    decimal.Decimal
}

// BuildLedger extracts the entries touching one account, in stored order,
// with traditional "To <account>" / "By <account>" particulars and a
// running balance.
func BuildLedger(chart *domain.Chart, transactions []*domain.Transaction, accountID string) []LedgerEntry {
	var entries []LedgerEntry
	running := decimal.Zero

	for _, t := range transactions {
		switch accountID {
		case t.Debit:
			running = running.Add(t.Amount)
			entries = append(entries, LedgerEntry{
				Date:       t.Date,
				Particular: fmt.Sprintf("To %s", chart.Name(t.Credit)),
				Debit:      t.Amount,
				Credit:     decimal.Zero,
				Balance:    running,
			})
		case t.Credit:
			running = running.Sub(t.Amount)
			entries = append(entries, LedgerEntry{
				Date:       t.Date,
				Particular: fmt.Sprintf("By %s", chart.Name(t.Debit)),
				Debit:      decimal.Zero,
				Credit:     t.Amount,
				Balance:    running,
			})
		}
	}

	return entries
}
