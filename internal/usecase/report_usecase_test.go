package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/report"
	"github.com/finova/finova/internal/usecase"
	"github.com/finova/finova/internal/usecase/mocks"
)

type reportFixture struct {
	uc   *usecase.ReportUseCase
	repo *mocks.MockTransactionRepository

	seq int
}

func newReportFixture() *reportFixture {
	repo := mocks.NewMockTransactionRepository()
	return &reportFixture{
		uc:   usecase.NewReportUseCase(domain.DefaultChart(), repo, nil),
		repo: repo,
	}
}

func (f *reportFixture) seed(t *testing.T, owner, debit, credit string, amount int64) *domain.Transaction {
	t.Helper()
	f.seq++
	tr := &domain.Transaction{
		ID:     fmt.Sprintf("tx-%03d", f.seq),
		Owner:  owner,
		Date:   time.Date(2024, 3, f.seq, 0, 0, 0, 0, time.UTC),
		Debit:  debit,
		Credit: credit,
		Amount: decimal.NewFromInt(amount),
	}
	require.NoError(t, f.repo.Create(context.Background(), tr))
	return tr
}

func (f *reportFixture) seedScenario(t *testing.T, owner string) {
	f.seed(t, owner, "cash", "capital", 5000)
	f.seed(t, owner, "purchases", "cash", 2000)
	f.seed(t, owner, "cash", "sales", 3000)
}

func TestReportUseCase_TrialBalance(t *testing.T) {
	f := newReportFixture()
	f.seedScenario(t, "admin")
	// Another owner's books must not leak into the report.
	f.seed(t, "other", "cash", "sales", 9999)

	tb, err := f.uc.TrialBalance(context.Background(), "admin")

	require.NoError(t, err)
	assert.True(t, tb.TotalDebit.Equal(decimal.NewFromInt(6000)))
	assert.True(t, tb.TotalCredit.Equal(decimal.NewFromInt(6000)))
	assert.True(t, tb.Balanced)
}

func TestReportUseCase_TradingPL(t *testing.T) {
	f := newReportFixture()
	f.seedScenario(t, "admin")

	tpl, err := f.uc.TradingPL(context.Background(), "admin")

	require.NoError(t, err)
	assert.True(t, tpl.GrossProfit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, tpl.NetProfit.Equal(decimal.NewFromInt(1000)))
}

func TestReportUseCase_BalanceSheet(t *testing.T) {
	f := newReportFixture()
	f.seedScenario(t, "admin")

	bs, err := f.uc.BalanceSheet(context.Background(), "admin")

	require.NoError(t, err)
	assert.True(t, bs.Balanced)
	assert.Equal(t, report.PositionPositive, bs.Position.Status)
}

func TestReportUseCase_Ledger(t *testing.T) {
	f := newReportFixture()
	f.seedScenario(t, "admin")

	entries, err := f.uc.Ledger(context.Background(), "admin", "cash")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[2].Balance.Equal(decimal.NewFromInt(6000)))
}

func TestReportUseCase_Ledger_UnknownAccount(t *testing.T) {
	f := newReportFixture()

	_, err := f.uc.Ledger(context.Background(), "admin", "petty-cash")

	assert.ErrorIs(t, err, domain.ErrUnknownAccount)
}

func TestReportUseCase_Dashboard(t *testing.T) {
	f := newReportFixture()
	f.seedScenario(t, "admin")

	dash, err := f.uc.Dashboard(context.Background(), "admin")

	require.NoError(t, err)
	assert.True(t, dash.TotalAssets.Equal(decimal.NewFromInt(6000)))
	assert.True(t, dash.TotalLiabilities.IsZero(), "capital is excluded from the headline figure")
	assert.True(t, dash.NetProfit.Equal(decimal.NewFromInt(1000)))
	require.Len(t, dash.Trend, 3)
	require.Len(t, dash.Recent, 3)
}

func TestReportUseCase_Dashboard_RecentOrderAndCap(t *testing.T) {
	f := newReportFixture()
	for i := 0; i < 7; i++ {
		f.seed(t, "admin", "cash", "sales", 100)
	}
	newest := f.seed(t, "admin", "rent-expense", "cash", 40)

	dash, err := f.uc.Dashboard(context.Background(), "admin")

	require.NoError(t, err)
	require.Len(t, dash.Recent, 5)
	assert.Equal(t, newest.ID, dash.Recent[0].ID, "recent list is newest first")
}
