package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/infrastructure/metrics"
	"github.com/finova/finova/internal/report"
)

// recentEntries is how many transactions the dashboard shows.
const recentEntries = 5

// ReportUseCase rebuilds every report from scratch against the owner's
// full transaction list. There is no incremental or cached state: each
// call loads a fresh snapshot and runs the pure builders over it.
type ReportUseCase struct {
	chart   *domain.Chart
	txRepo  TransactionRepository
	metrics *metrics.Metrics
}

// NewReportUseCase creates a new ReportUseCase. metrics may be nil.
func NewReportUseCase(chart *domain.Chart, txRepo TransactionRepository, m *metrics.Metrics) *ReportUseCase {
	return &ReportUseCase{
		chart:   chart,
		txRepo:  txRepo,
		metrics: m,
	}
}

func (uc *ReportUseCase) observe(name string, start time.Time) {
	if uc.metrics != nil {
		uc.metrics.ReportBuilds.WithLabelValues(name).Inc()
		uc.metrics.ReportDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

// TrialBalance builds the trial balance for an owner.
func (uc *ReportUseCase) TrialBalance(ctx context.Context, owner string) (report.TrialBalance, error) {
	defer uc.observe("trial_balance", time.Now())

	transactions, err := uc.txRepo.ListByOwner(ctx, owner)
	if err != nil {
		return report.TrialBalance{}, err
	}

	return report.BuildTrialBalance(uc.chart, report.Calculate(transactions)), nil
}

// TradingPL builds the chained Trading and Profit & Loss statements.
func (uc *ReportUseCase) TradingPL(ctx context.Context, owner string) (report.TradingPL, error) {
	defer uc.observe("trading_pl", time.Now())

	transactions, err := uc.txRepo.ListByOwner(ctx, owner)
	if err != nil {
		return report.TradingPL{}, err
	}

	return report.BuildTradingPL(uc.chart, report.Calculate(transactions)), nil
}

// BalanceSheet builds the balance sheet with its position verdict.
func (uc *ReportUseCase) BalanceSheet(ctx context.Context, owner string) (report.BalanceSheet, error) {
	defer uc.observe("balance_sheet", time.Now())

	transactions, err := uc.txRepo.ListByOwner(ctx, owner)
	if err != nil {
		return report.BalanceSheet{}, err
	}

	balances := report.Calculate(transactions)
	netProfit := report.NetProfit(uc.chart, balances)

	return report.BuildBalanceSheet(uc.chart, balances, netProfit), nil
}

// ProfitTrend builds the cumulative profit series for trend display.
func (uc *ReportUseCase) ProfitTrend(ctx context.Context, owner string) ([]report.TrendPoint, error) {
	defer uc.observe("profit_trend", time.Now())

	transactions, err := uc.txRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return report.BuildProfitTrend(uc.chart, transactions), nil
}

// Ledger builds the running-balance view of a single account.
func (uc *ReportUseCase) Ledger(ctx context.Context, owner, accountID string) ([]report.LedgerEntry, error) {
	defer uc.observe("ledger", time.Now())

	if _, ok := uc.chart.Lookup(accountID); !ok {
		return nil, domain.ErrUnknownAccount
	}

	transactions, err := uc.txRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return report.BuildLedger(uc.chart, transactions, accountID), nil
}

// Dashboard summarizes the books: headline totals, net profit, the most
// recent entries and the trend series for the charting collaborator.
type Dashboard struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetProfit        decimal.Decimal
	Recent           []*domain.Transaction
	Trend            []report.TrendPoint
}

// Dashboard builds the dashboard summary. Total liabilities excludes
// owner's capital; both totals are signed sums of raw balances.
func (uc *ReportUseCase) Dashboard(ctx context.Context, owner string) (Dashboard, error) {
	defer uc.observe("dashboard", time.Now())

	transactions, err := uc.txRepo.ListByOwner(ctx, owner)
	if err != nil {
		return Dashboard{}, err
	}

	balances := report.Calculate(transactions)

	totalAssets := decimal.Zero
	for _, acc := range uc.chart.ByType(domain.TypeAsset) {
		totalAssets = totalAssets.Add(balances.Get(acc.ID))
	}

	totalLiabilities := decimal.Zero
	for _, acc := range uc.chart.ByType(domain.TypeLiability) {
		if acc.ID == domain.AccountCapital {
			continue
		}
		totalLiabilities = totalLiabilities.Add(balances.Get(acc.ID))
	}

	recent := make([]*domain.Transaction, 0, recentEntries)
	for i := len(transactions) - 1; i >= 0 && len(recent) < recentEntries; i-- {
		recent = append(recent, transactions[i])
	}

	return Dashboard{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetProfit:        report.NetProfit(uc.chart, balances),
		Recent:           recent,
		Trend:            report.BuildProfitTrend(uc.chart, transactions),
	}, nil
}
