package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/report"
	"github.com/finova/finova/internal/usecase"
)

// AccountResponse represents a chart account in API responses.
type AccountResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Hidden   bool   `json:"hidden,omitempty"`
}

// AccountsFromDomain converts chart accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	result := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountResponse{
			ID:       a.ID,
			Name:     a.Name,
			Type:     string(a.Type),
			Category: string(a.Category),
			Hidden:   a.Hidden,
		}
	}
	return result
}

// TransactionResponse represents a journal entry in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Owner     string          `json:"owner"`
	Date      string          `json:"date"`
	Debit     string          `json:"debit"`
	Credit    string          `json:"credit"`
	Amount    decimal.Decimal `json:"amount"`
	Narration string          `json:"narration"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		Owner:     t.Owner,
		Date:      t.Date.Format(dateLayout),
		Debit:     t.Debit,
		Credit:    t.Credit,
		Amount:    t.Amount,
		Narration: t.Narration,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a journal listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// RowResponse is one statement line; the blank side is omitted.
type RowResponse struct {
	Name   string           `json:"name"`
	Debit  *decimal.Decimal `json:"debit,omitempty"`
	Credit *decimal.Decimal `json:"credit,omitempty"`
}

func rowsFromReport(rows []report.Row) []RowResponse {
	result := make([]RowResponse, len(rows))
	for i, r := range rows {
		result[i] = RowResponse{Name: r.Name, Debit: r.Debit, Credit: r.Credit}
	}
	return result
}

// TrialBalanceResponse represents the trial balance report.
type TrialBalanceResponse struct {
	Rows        []RowResponse   `json:"rows"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balanced    bool            `json:"balanced"`
	Difference  decimal.Decimal `json:"difference"`
}

// TrialBalanceFromReport converts the engine result to a response.
func TrialBalanceFromReport(tb report.TrialBalance) TrialBalanceResponse {
	return TrialBalanceResponse{
		Rows:        rowsFromReport(tb.Rows),
		TotalDebit:  tb.TotalDebit,
		TotalCredit: tb.TotalCredit,
		Balanced:    tb.Balanced,
		Difference:  tb.Difference,
	}
}

// StatementResponse represents one two-column statement.
type StatementResponse struct {
	Rows        []RowResponse   `json:"rows"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// TradingPLResponse represents the chained Trading and P&L statements.
type TradingPLResponse struct {
	Trading       StatementResponse `json:"trading"`
	ProfitAndLoss StatementResponse `json:"profit_and_loss"`
	GrossProfit   decimal.Decimal   `json:"gross_profit"`
	NetProfit     decimal.Decimal   `json:"net_profit"`
}

// TradingPLFromReport converts the engine result to a response.
func TradingPLFromReport(tpl report.TradingPL) TradingPLResponse {
	return TradingPLResponse{
		Trading: StatementResponse{
			Rows:        rowsFromReport(tpl.Trading.Rows),
			TotalDebit:  tpl.Trading.TotalDebit,
			TotalCredit: tpl.Trading.TotalCredit,
		},
		ProfitAndLoss: StatementResponse{
			Rows:        rowsFromReport(tpl.ProfitAndLoss.Rows),
			TotalDebit:  tpl.ProfitAndLoss.TotalDebit,
			TotalCredit: tpl.ProfitAndLoss.TotalCredit,
		},
		GrossProfit: tpl.GrossProfit,
		NetProfit:   tpl.NetProfit,
	}
}

// BalanceSheetRowResponse is one positionally paired display row.
type BalanceSheetRowResponse struct {
	AssetName       string           `json:"asset_name"`
	AssetAmount     *decimal.Decimal `json:"asset_amount,omitempty"`
	LiabilityName   string           `json:"liability_name"`
	LiabilityAmount *decimal.Decimal `json:"liability_amount,omitempty"`
}

// PositionResponse represents the financial-position verdict.
type PositionResponse struct {
	Status     string          `json:"status"`
	Difference decimal.Decimal `json:"difference"`
}

// BalanceSheetResponse represents the balance sheet report.
type BalanceSheetResponse struct {
	Rows             []BalanceSheetRowResponse `json:"rows"`
	TotalAssets      decimal.Decimal           `json:"total_assets"`
	TotalLiabilities decimal.Decimal           `json:"total_liabilities"`
	Balanced         bool                      `json:"balanced"`
	Position         PositionResponse          `json:"position"`
}

// BalanceSheetFromReport converts the engine result to a response using
// the positional pairing display convention.
func BalanceSheetFromReport(bs report.BalanceSheet) BalanceSheetResponse {
	paired := bs.PairedRows()
	rows := make([]BalanceSheetRowResponse, len(paired))
	for i, p := range paired {
		rows[i] = BalanceSheetRowResponse{
			AssetName:       p.AssetName,
			AssetAmount:     p.AssetAmount,
			LiabilityName:   p.LiabilityName,
			LiabilityAmount: p.LiabilityAmount,
		}
	}

	return BalanceSheetResponse{
		Rows:             rows,
		TotalAssets:      bs.TotalAssets,
		TotalLiabilities: bs.TotalLiabilities,
		Balanced:         bs.Balanced,
		Position: PositionResponse{
			Status:     string(bs.Position.Status),
			Difference: bs.Position.Difference,
		},
	}
}

// TrendPointResponse is one point of the cumulative profit trend.
type TrendPointResponse struct {
	Date   string          `json:"date"`
	Profit decimal.Decimal `json:"profit"`
}

// TrendFromReport converts trend points to responses.
func TrendFromReport(points []report.TrendPoint) []TrendPointResponse {
	result := make([]TrendPointResponse, len(points))
	for i, p := range points {
		result[i] = TrendPointResponse{
			Date:   p.Date.Format(dateLayout),
			Profit: p.Profit,
		}
	}
	return result
}

// LedgerEntryResponse is one running-balance ledger line.
type LedgerEntryResponse struct {
	Date       string          `json:"date"`
	Particular string          `json:"particular"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Balance    decimal.Decimal `json:"balance"`
}

// LedgerFromReport converts ledger entries to responses.
func LedgerFromReport(entries []report.LedgerEntry) []LedgerEntryResponse {
	result := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryResponse{
			Date:       e.Date.Format(dateLayout),
			Particular: e.Particular,
			Debit:      e.Debit,
			Credit:     e.Credit,
			Balance:    e.Balance,
		}
	}
	return result
}

// DashboardResponse represents the dashboard summary.
type DashboardResponse struct {
	TotalAssets      decimal.Decimal        `json:"total_assets"`
	TotalLiabilities decimal.Decimal        `json:"total_liabilities"`
	NetProfit        decimal.Decimal        `json:"net_profit"`
	Recent           []*TransactionResponse `json:"recent"`
	Trend            []TrendPointResponse   `json:"trend"`
}

// DashboardFromUseCase converts the dashboard summary to a response.
func DashboardFromUseCase(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalAssets:      d.TotalAssets,
		TotalLiabilities: d.TotalLiabilities,
		NetProfit:        d.NetProfit,
		Recent:           TransactionsFromDomain(d.Recent),
		Trend:            TrendFromReport(d.Trend),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
