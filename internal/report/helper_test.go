package report_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
)

// tx builds a journal transaction for tests.
func tx(debit, credit string, amount int64) *domain.Transaction {
	return txOn(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), debit, credit, amount)
}

func txOn(date time.Time, debit, credit string, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:     debit + "-" + credit,
		Owner:  "admin",
		Date:   date,
		Debit:  debit,
		Credit: credit,
		Amount: decimal.NewFromInt(amount),
	}
}

// scenario is the canonical three-entry example: capital introduced,
// goods purchased, goods sold.
func scenario() []*domain.Transaction {
	return []*domain.Transaction{
		tx("cash", "capital", 5000),
		tx("purchases", "cash", 2000),
		tx("cash", "sales", 3000),
	}
}

func dec(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}
