package report

import (
	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
)

// LabelAdjustedCapital marks the capital line once net profit and drawings
// have been folded into it.
const LabelAdjustedCapital = "Capital (+NP, -Drawings)"

// PositionStatus classifies the financial position of the business.
type PositionStatus string

const (
	PositionBalanced PositionStatus = "BALANCED"
	PositionPositive PositionStatus = "POSITIVE"
	PositionNegative PositionStatus = "NEGATIVE"
)

// Position is the simplified solvency verdict: total assets compared
// against liabilities excluding owner's capital. Difference carries the
// surplus or shortfall as an absolute amount.
type Position struct {
	Status     PositionStatus
	Difference decimal.Decimal
}

// Line is one side of the balance sheet: an account and its displayed
// amount. Asset amounts keep their sign, liability amounts are absolute,
// and the capital amount is the adjusted figure.
type Line struct {
	AccountID string
	Name      string
	Amount    decimal.Decimal
}

// BalanceSheet holds both columns, their totals, the footing check and the
// financial-position verdict. The footing check guards internal consistency
// (Assets = Liabilities + Capital); the verdict is a separate business
// classification and may legitimately disagree with it.
type BalanceSheet struct {
	Assets           []Line
	Liabilities      []Line
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	Balanced         bool
	Position         Position
}

// BuildBalanceSheet assembles the balance sheet from the chart's type
// partitions. Drawings never appears as a line; its balance is folded into
// capital. A negative bank balance is reclassified to the synthetic
// overdraft liability.
func BuildBalanceSheet(chart *domain.Chart, balances Balances, netProfit decimal.Decimal) BalanceSheet {
	bankBal := balances.Get(domain.AccountBank)
	overdrawn := bankBal.IsNegative()

	bs := BalanceSheet{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}

	for _, acc := range chart.ByType(domain.TypeAsset) {
		if overdrawn && acc.ID == domain.AccountBank {
			continue
		}
		bal := balances.Get(acc.ID)
		bs.Assets = append(bs.Assets, Line{AccountID: acc.ID, Name: acc.Name, Amount: bal})
		bs.TotalAssets = bs.TotalAssets.Add(bal)
	}

	drawingsBal := balances.Get(domain.AccountDrawings)
	pureLiabilities := decimal.Zero

	for _, acc := range chart.ByType(domain.TypeLiability) {
		if acc.ID == domain.AccountDrawings {
			continue
		}
		if acc.ID == domain.AccountOverdraft && !overdrawn {
			continue
		}

		amount := balances.Get(acc.ID).Abs()
		if acc.ID == domain.AccountOverdraft {
			amount = bankBal.Abs()
		}

		line := Line{AccountID: acc.ID, Name: acc.Name, Amount: amount}
		if acc.ID == domain.AccountCapital {
			line.Name = LabelAdjustedCapital
			line.Amount = amount.Add(netProfit).Sub(drawingsBal)
		} else {
			pureLiabilities = pureLiabilities.Add(amount)
		}

		bs.Liabilities = append(bs.Liabilities, line)
		bs.TotalLiabilities = bs.TotalLiabilities.Add(line.Amount)
	}

	bs.Balanced = withinTolerance(bs.TotalAssets, bs.TotalLiabilities)
	bs.Position = classifyPosition(bs.TotalAssets, pureLiabilities)

	return bs
}

// classifyPosition compares total assets against liabilities excluding
// capital.
func classifyPosition(totalAssets, pureLiabilities decimal.Decimal) Position {
	diff := totalAssets.Sub(pureLiabilities)
	switch {
	case diff.Abs().LessThan(tolerance):
		return Position{Status: PositionBalanced, Difference: decimal.Zero}
	case diff.IsPositive():
		return Position{Status: PositionPositive, Difference: diff}
	default:
		return Position{Status: PositionNegative, Difference: diff.Abs()}
	}
}

// PairedRow aligns one asset line and one liability line for side-by-side
// display. The pairing is positional, not semantic.
type PairedRow struct {
	AssetName       string
	AssetAmount     *decimal.Decimal
	LiabilityName   string
	LiabilityAmount *decimal.Decimal
}

// PairedRows pads the shorter column with blanks so both columns render the
// same number of rows. Strictly a display convention.
func (bs BalanceSheet) PairedRows() []PairedRow {
	n := len(bs.Assets)
	if len(bs.Liabilities) > n {
		n = len(bs.Liabilities)
	}

	rows := make([]PairedRow, n)
	for i := 0; i < n; i++ {
		if i < len(bs.Assets) {
			amount := bs.Assets[i].Amount
			rows[i].AssetName = bs.Assets[i].Name
			rows[i].AssetAmount = &amount
		}
		if i < len(bs.Liabilities) {
			amount := bs.Liabilities[i].Amount
			rows[i].LiabilityName = bs.Liabilities[i].Name
			rows[i].LiabilityAmount = &amount
		}
	}
	return rows
}
