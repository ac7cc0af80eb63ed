package report

import (
	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
)

// Display labels for the balancing figures of the two chained statements.
const (
	LabelGrossProfitCD = "To Gross Profit c/d"
	LabelGrossLossCD   = "By Gross Loss c/d"
	LabelGrossProfitBD = "By Gross Profit b/d"
	LabelGrossLossBD   = "To Gross Loss b/d"
	LabelNetProfit     = "To Net Profit"
	LabelNetLoss       = "By Net Loss"
)

// Statement is one side-by-side debit/credit statement whose columns foot
// to equal totals once the balancing row is appended.
type Statement struct {
	Rows        []Row
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// TradingPL chains the Trading statement into the Profit & Loss statement.
// The gross profit or loss is carried down from Trading and brought down on
// the opposite side of the P&L, whose own balancing row is the net result.
type TradingPL struct {
	Trading       Statement
	ProfitAndLoss Statement
	GrossProfit   decimal.Decimal
	NetProfit     decimal.Decimal
}

// BuildTradingPL builds both statements from the category partitions of the
// chart. Zero-balance accounts produce no row in either statement.
func BuildTradingPL(chart *domain.Chart, balances Balances) TradingPL {
	trading := Statement{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, acc := range chart.ByCategory(domain.CategoryTrading) {
		bal := balances.Get(acc.ID)
		if bal.IsZero() {
			continue
		}
		if bal.IsPositive() {
			trading.TotalDebit = trading.TotalDebit.Add(bal.Abs())
		} else {
			trading.TotalCredit = trading.TotalCredit.Add(bal.Abs())
		}
		trading.Rows = append(trading.Rows, balanceRow(acc.Name, bal))
	}

	grossProfit := trading.TotalCredit.Sub(trading.TotalDebit)
	if grossProfit.Sign() >= 0 {
		trading.Rows = append(trading.Rows, debitRow(LabelGrossProfitCD, grossProfit))
		trading.TotalDebit = trading.TotalDebit.Add(grossProfit)
	} else {
		trading.Rows = append(trading.Rows, creditRow(LabelGrossLossCD, grossProfit.Abs()))
		trading.TotalCredit = trading.TotalCredit.Add(grossProfit.Abs())
	}

	// Seed the P&L with the brought-down figure on the opposite side from
	// where it landed in Trading.
	pl := Statement{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	if grossProfit.Sign() >= 0 {
		pl.Rows = append(pl.Rows, creditRow(LabelGrossProfitBD, grossProfit))
		pl.TotalCredit = pl.TotalCredit.Add(grossProfit)
	} else {
		pl.Rows = append(pl.Rows, debitRow(LabelGrossLossBD, grossProfit.Abs()))
		pl.TotalDebit = pl.TotalDebit.Add(grossProfit.Abs())
	}

	for _, acc := range chart.ByCategory(domain.CategoryPL) {
		bal := balances.Get(acc.ID)
		if bal.IsZero() {
			continue
		}
		if bal.IsPositive() {
			pl.TotalDebit = pl.TotalDebit.Add(bal.Abs())
		} else {
			pl.TotalCredit = pl.TotalCredit.Add(bal.Abs())
		}
		pl.Rows = append(pl.Rows, balanceRow(acc.Name, bal))
	}

	netProfit := pl.TotalCredit.Sub(pl.TotalDebit)
	if netProfit.Sign() >= 0 {
		pl.Rows = append(pl.Rows, debitRow(LabelNetProfit, netProfit))
		pl.TotalDebit = pl.TotalDebit.Add(netProfit)
	} else {
		pl.Rows = append(pl.Rows, creditRow(LabelNetLoss, netProfit.Abs()))
		pl.TotalCredit = pl.TotalCredit.Add(netProfit.Abs())
	}

	return TradingPL{
		Trading:       trading,
		ProfitAndLoss: pl,
		GrossProfit:   grossProfit,
		NetProfit:     netProfit,
	}
}
