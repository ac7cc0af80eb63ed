package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finova/finova/internal/adapter/http/dto"
	"github.com/finova/finova/internal/report"
	"github.com/finova/finova/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	TrialBalance(ctx context.Context, owner string) (report.TrialBalance, error)
	TradingPL(ctx context.Context, owner string) (report.TradingPL, error)
	BalanceSheet(ctx context.Context, owner string) (report.BalanceSheet, error)
	ProfitTrend(ctx context.Context, owner string) ([]report.TrendPoint, error)
	Ledger(ctx context.Context, owner, accountID string) ([]report.LedgerEntry, error)
	Dashboard(ctx context.Context, owner string) (usecase.Dashboard, error)
}

// ReportHandler handles report HTTP requests. Every request recomputes its
// report from the owner's full transaction list.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// TrialBalance returns the trial balance report.
func (h *ReportHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	tb, err := h.reportUC.TrialBalance(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build trial balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceFromReport(tb))
}

// TradingPL returns the Trading and Profit & Loss statements.
func (h *ReportHandler) TradingPL(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	tpl, err := h.reportUC.TradingPL(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build trading and P&L", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TradingPLFromReport(tpl))
}

// BalanceSheet returns the balance sheet with the position verdict.
func (h *ReportHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	bs, err := h.reportUC.BalanceSheet(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceSheetFromReport(bs))
}

// ProfitTrend returns the cumulative profit trend series.
func (h *ReportHandler) ProfitTrend(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	points, err := h.reportUC.ProfitTrend(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build profit trend", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TrendFromReport(points))
}

// Ledger returns the running-balance view of one account.
func (h *ReportHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	accountID := chi.URLParam(r, "accountID")
	entries, err := h.reportUC.Ledger(r.Context(), owner, accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromReport(entries))
}

// Dashboard returns the dashboard summary.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerParam(w, r)
	if !ok {
		return
	}

	d, err := h.reportUC.Dashboard(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromUseCase(d))
}
