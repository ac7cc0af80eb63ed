package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one double-entry journal record: the debited account's
// balance increases by Amount, the credited account's decreases by Amount.
// Transactions are immutable once stored except via full replace-by-id.
type Transaction struct {
	ID        string
	Owner     string
	Date      time.Time
	Debit     string
	Credit    string
	Amount    decimal.Decimal
	Narration string
}

// Validate checks the structural invariants of a transaction.
func (t *Transaction) Validate() error {
	if t.Owner == "" {
		return ErrMissingOwner
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if t.Debit == t.Credit {
		return ErrSameAccount
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateAgainst checks Validate plus that both sides reference accounts
// present in the chart. Unknown references would otherwise record balances
// that never surface in any report.
func (t *Transaction) ValidateAgainst(chart *Chart) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, ok := chart.Lookup(t.Debit); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, t.Debit)
	}
	if _, ok := chart.Lookup(t.Credit); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, t.Credit)
	}
	return nil
}
