package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/report"
)

func TestBuildBalanceSheet_Scenario(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate(scenario())
	netProfit := report.NetProfit(chart, balances)

	bs := report.BuildBalanceSheet(chart, balances, netProfit)

	// All asset accounts appear, zero balances included.
	require.Len(t, bs.Assets, 4)
	assert.Equal(t, "cash", bs.Assets[0].AccountID)
	assert.True(t, bs.Assets[0].Amount.Equal(dec(6000)))
	assert.True(t, bs.TotalAssets.Equal(dec(6000)))

	// Capital absorbs the net profit: 5000 + 1000.
	require.Len(t, bs.Liabilities, 3)
	capital := bs.Liabilities[0]
	assert.Equal(t, "capital", capital.AccountID)
	assert.Equal(t, report.LabelAdjustedCapital, capital.Name)
	assert.True(t, capital.Amount.Equal(dec(6000)))

	assert.True(t, bs.TotalLiabilities.Equal(dec(6000)))
	assert.True(t, bs.Balanced)

	// No liabilities beyond capital, so the position is a pure surplus.
	assert.Equal(t, report.PositionPositive, bs.Position.Status)
	assert.True(t, bs.Position.Difference.Equal(dec(6000)))
}

func TestBuildBalanceSheet_Overdraft(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate([]*domain.Transaction{
		tx("purchases", "bank", 100),
	})
	netProfit := report.NetProfit(chart, balances)

	bs := report.BuildBalanceSheet(chart, balances, netProfit)

	// Bank is overdrawn: it leaves the asset side entirely and shows up as
	// the overdraft liability at the absolute amount.
	for _, line := range bs.Assets {
		assert.NotEqual(t, domain.AccountBank, line.AccountID)
	}
	require.Len(t, bs.Assets, 3)

	require.Len(t, bs.Liabilities, 4)
	overdraft := bs.Liabilities[0]
	assert.Equal(t, domain.AccountOverdraft, overdraft.AccountID)
	assert.True(t, overdraft.Amount.Equal(dec(100)))

	// The purchase is a loss, so the adjusted capital goes negative and the
	// columns still foot.
	capital := bs.Liabilities[1]
	assert.Equal(t, domain.AccountCapital, capital.AccountID)
	assert.True(t, capital.Amount.Equal(dec(-100)))
	assert.True(t, bs.Balanced)

	assert.Equal(t, report.PositionNegative, bs.Position.Status)
	assert.True(t, bs.Position.Difference.Equal(dec(100)))
}

func TestBuildBalanceSheet_BankInCredit(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate([]*domain.Transaction{
		tx("bank", "sales", 100),
	})

	bs := report.BuildBalanceSheet(chart, balances, report.NetProfit(chart, balances))

	require.Len(t, bs.Assets, 4)
	assert.Equal(t, domain.AccountBank, bs.Assets[1].AccountID)
	assert.True(t, bs.Assets[1].Amount.Equal(dec(100)))

	for _, line := range bs.Liabilities {
		assert.NotEqual(t, domain.AccountOverdraft, line.AccountID)
	}
}

func TestBuildBalanceSheet_CapitalAdjustment(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Balances{
		domain.AccountCapital:  dec(-1000),
		domain.AccountDrawings: dec(50),
	}

	bs := report.BuildBalanceSheet(chart, balances, dec(200))

	var capital *report.Line
	for i, line := range bs.Liabilities {
		assert.NotEqual(t, domain.AccountDrawings, line.AccountID,
			"drawings must never appear as its own line")
		if line.AccountID == domain.AccountCapital {
			capital = &bs.Liabilities[i]
		}
	}

	require.NotNil(t, capital)
	assert.True(t, capital.Amount.Equal(dec(1150)), "1000 + 200 - 50, got %s", capital.Amount)
}

func TestBuildBalanceSheet_PositionBalanced(t *testing.T) {
	chart := domain.DefaultChart()

	// Assets exactly cover the bank loan; capital nets to zero.
	balances := report.Balances{
		"cash":      dec(400),
		"bank-loan": dec(-400),
	}

	bs := report.BuildBalanceSheet(chart, balances, dec(0))

	assert.Equal(t, report.PositionBalanced, bs.Position.Status)
	assert.True(t, bs.Position.Difference.IsZero())
}

func TestBalanceSheet_PairedRows(t *testing.T) {
	chart := domain.DefaultChart()
	balances := report.Calculate(scenario())

	bs := report.BuildBalanceSheet(chart, balances, report.NetProfit(chart, balances))
	rows := bs.PairedRows()

	// 4 asset lines against 3 liability lines: the last row has a blank
	// liability side.
	require.Len(t, rows, 4)
	last := rows[3]
	assert.NotEmpty(t, last.AssetName)
	require.NotNil(t, last.AssetAmount)
	assert.Empty(t, last.LiabilityName)
	assert.Nil(t, last.LiabilityAmount)

	first := rows[0]
	assert.Equal(t, "Cash", first.AssetName)
	assert.Equal(t, report.LabelAdjustedCapital, first.LiabilityName)
}
