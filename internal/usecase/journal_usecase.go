package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/infrastructure/metrics"
)

// JournalUseCase handles the journal entry lifecycle: create, replace by
// id, delete. Entries are validated against the chart before they reach
// storage, so the report engine never sees a malformed transaction.
type JournalUseCase struct {
	chart     *domain.Chart
	txRepo    TransactionRepository
	txManager TransactionManager
	retrier   Retrier
	idGen     IDGenerator
	metrics   *metrics.Metrics
}

// NewJournalUseCase creates a new JournalUseCase. metrics may be nil.
func NewJournalUseCase(
	chart *domain.Chart,
	txRepo TransactionRepository,
	txManager TransactionManager,
	retrier Retrier,
	idGen IDGenerator,
	m *metrics.Metrics,
) *JournalUseCase {
	return &JournalUseCase{
		chart:     chart,
		txRepo:    txRepo,
		txManager: txManager,
		retrier:   retrier,
		idGen:     idGen,
		metrics:   m,
	}
}

// EntryInput represents input for creating or replacing a journal entry.
type EntryInput struct {
	Owner     string
	Date      time.Time
	Debit     string
	Credit    string
	Amount    decimal.Decimal
	Narration string
}

// Accounts returns the chart of accounts. When visibleOnly is set, hidden
// accounts are excluded, matching entry-selection dropdowns.
func (uc *JournalUseCase) Accounts(visibleOnly bool) []domain.Account {
	if visibleOnly {
		return uc.chart.Visible()
	}
	return uc.chart.Accounts()
}

// CreateEntry validates and persists a new journal entry with a generated
// id. Ids are monotonic-ish so stored order matches creation order.
func (uc *JournalUseCase) CreateEntry(ctx context.Context, input EntryInput) (*domain.Transaction, error) {
	t := &domain.Transaction{
		ID:        uc.idGen.Generate(),
		Owner:     input.Owner,
		Date:      input.Date,
		Debit:     input.Debit,
		Credit:    input.Credit,
		Amount:    input.Amount,
		Narration: input.Narration,
	}

	if err := t.ValidateAgainst(uc.chart); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.Inc()
	}

	return t, nil
}

// UpdateEntry replaces an existing entry in place: the id is preserved
// while every other field comes from the input. Edit is delete plus
// recreate inside one storage transaction.
func (uc *JournalUseCase) UpdateEntry(ctx context.Context, id string, input EntryInput) (*domain.Transaction, error) {
	existing, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t := &domain.Transaction{
		ID:        existing.ID,
		Owner:     input.Owner,
		Date:      input.Date,
		Debit:     input.Debit,
		Credit:    input.Credit,
		Amount:    input.Amount,
		Narration: input.Narration,
	}

	if err := t.ValidateAgainst(uc.chart); err != nil {
		return nil, err
	}

	err = uc.retrier.Retry(ctx, func() error {
		return uc.replace(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesUpdated.Inc()
	}

	return t, nil
}

func (uc *JournalUseCase) replace(ctx context.Context, t *domain.Transaction) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.txRepo.DeleteTx(ctx, tx, t.ID); err != nil {
		return err
	}
	if err := uc.txRepo.CreateTx(ctx, tx, t); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteEntry removes an entry by id.
func (uc *JournalUseCase) DeleteEntry(ctx context.Context, id string) error {
	if err := uc.txRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesDeleted.Inc()
	}

	return nil
}

// ListEntries returns the owner's journal in stored order.
func (uc *JournalUseCase) ListEntries(ctx context.Context, owner string) ([]*domain.Transaction, error) {
	return uc.txRepo.ListByOwner(ctx, owner)
}
