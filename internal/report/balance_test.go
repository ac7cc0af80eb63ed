package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/report"
)

func TestCalculate_Scenario(t *testing.T) {
	balances := report.Calculate(scenario())

	assert.True(t, balances.Get("cash").Equal(dec(6000)))
	assert.True(t, balances.Get("capital").Equal(dec(-5000)))
	assert.True(t, balances.Get("purchases").Equal(dec(2000)))
	assert.True(t, balances.Get("sales").Equal(dec(-3000)))
}

func TestCalculate_ZeroSum(t *testing.T) {
	transactions := []*domain.Transaction{
		tx("cash", "capital", 5000),
		tx("purchases", "cash", 1250),
		tx("cash", "sales", 900),
		tx("rent-expense", "bank", 333),
		tx("bank", "cash", 100),
	}

	balances := report.Calculate(transactions)

	sum := decimal.Zero
	for _, bal := range balances {
		sum = sum.Add(bal)
	}
	assert.True(t, sum.IsZero(), "balances must sum to zero, got %s", sum)
}

func TestCalculate_OrderIndependence(t *testing.T) {
	transactions := scenario()
	permuted := []*domain.Transaction{transactions[2], transactions[0], transactions[1]}

	original := report.Calculate(transactions)
	shuffled := report.Calculate(permuted)

	require.Len(t, shuffled, len(original))
	for id, bal := range original {
		assert.True(t, shuffled.Get(id).Equal(bal), "balance mismatch for %s", id)
	}
}

func TestCalculate_SameAccountBothSides(t *testing.T) {
	// An account debited in one transaction and credited in another nets out.
	balances := report.Calculate([]*domain.Transaction{
		tx("cash", "capital", 500),
		tx("bank", "cash", 500),
	})

	assert.True(t, balances.Get("cash").IsZero())
	assert.True(t, balances.Get("bank").Equal(dec(500)))
}

func TestNetProfit_Scenario(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate(scenario())

	profit := report.NetProfit(chart, balances)

	assert.True(t, profit.Equal(dec(1000)), "expected 1000, got %s", profit)
}

func TestNetProfit_IgnoresBalanceSheetAccounts(t *testing.T) {
	chart := domain.DefaultChart()

	// Pure balance-sheet movement: no trading or P&L account touched.
	balances := report.Calculate([]*domain.Transaction{
		tx("cash", "capital", 5000),
		tx("bank", "cash", 2000),
	})

	assert.True(t, report.NetProfit(chart, balances).IsZero())
}

func TestNetProfit_Loss(t *testing.T) {
	chart := domain.DefaultChart()

	balances := report.Calculate([]*domain.Transaction{
		tx("purchases", "cash", 2000),
		tx("cash", "sales", 1500),
	})

	assert.True(t, report.NetProfit(chart, balances).Equal(dec(-500)))
}
