package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
)

// trendWindow caps the number of trend points returned for visualization.
const trendWindow = 15

// TrendPoint pairs a transaction date with the cumulative net profit after
// that transaction was applied.
type TrendPoint struct {
	Date   time.Time
	Profit decimal.Decimal
}

// BuildProfitTrend walks the transaction list in stored order, recomputing
// net profit after each transaction against the running balances, and
// returns the last 15 points. This is the one builder where transaction
// order, not just multiset content, affects the output.
func BuildProfitTrend(chart *domain.Chart, transactions []*domain.Transaction) []TrendPoint {
	points := make([]TrendPoint, 0, len(transactions))
	running := make(Balances)

	for _, t := range transactions {
		running.Apply(t)
		points = append(points, TrendPoint{
			Date:   t.Date,
			Profit: NetProfit(chart, running),
		})
	}

	if len(points) > trendWindow {
		points = points[len(points)-trendWindow:]
	}
	return points
}
