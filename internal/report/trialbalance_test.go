package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/report"
)

func TestBuildTrialBalance_Scenario(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate(scenario())

	tb := report.BuildTrialBalance(chart, balances)

	require.Len(t, tb.Rows, 4)
	assert.True(t, tb.TotalDebit.Equal(dec(6000)), "total debit %s", tb.TotalDebit)
	assert.True(t, tb.TotalCredit.Equal(dec(6000)), "total credit %s", tb.TotalCredit)
	assert.True(t, tb.Balanced)
	assert.True(t, tb.Difference.IsZero())
}

func TestBuildTrialBalance_RowPlacement(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate(scenario())

	tb := report.BuildTrialBalance(chart, balances)

	byName := make(map[string]report.Row)
	for _, row := range tb.Rows {
		byName[row.Name] = row
	}

	cash := byName["Cash"]
	require.NotNil(t, cash.Debit)
	assert.Nil(t, cash.Credit)
	assert.True(t, cash.Debit.Equal(dec(6000)))

	sales := byName["Sales"]
	require.NotNil(t, sales.Credit)
	assert.Nil(t, sales.Debit)
	assert.True(t, sales.Credit.Equal(dec(3000)))
}

func TestBuildTrialBalance_SkipsZeroBalances(t *testing.T) {
	chart := domain.DefaultChart()

	// Bank is debited and credited by the same amount and nets to zero.
	balances := report.Calculate([]*domain.Transaction{
		tx("bank", "capital", 700),
		tx("cash", "bank", 700),
	})

	tb := report.BuildTrialBalance(chart, balances)

	for _, row := range tb.Rows {
		assert.NotEqual(t, "Bank", row.Name, "zero-balance account must not appear")
	}
	require.Len(t, tb.Rows, 2)
}

func TestBuildTrialBalance_ChartOrder(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate(scenario())

	tb := report.BuildTrialBalance(chart, balances)

	// Rows follow chart-declaration order regardless of entry order.
	var names []string
	for _, row := range tb.Rows {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{"Cash", "Owner's Capital", "Sales", "Purchases"}, names)
}

func TestBuildTrialBalance_UnknownAccountBalance(t *testing.T) {
	chart := domain.DefaultChart()

	// A balance on an account outside the chart never surfaces as a row,
	// leaving the trial balance visibly out of foot.
	balances := report.Calculate([]*domain.Transaction{
		tx("cash", "ghost", 100),
	})

	tb := report.BuildTrialBalance(chart, balances)

	require.Len(t, tb.Rows, 1)
	assert.Equal(t, "Cash", tb.Rows[0].Name)
	assert.False(t, tb.Balanced)
	assert.True(t, tb.Difference.Equal(dec(100)))
}
