package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/usecase"
)

const (
	insertTransactionSQL = `
		INSERT INTO transactions (id, owner, entry_date, debit_account, credit_account, amount, narration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectTransactionSQL = `
		SELECT id, owner, entry_date, debit_account, credit_account, amount, narration
		FROM transactions
		WHERE id = $1`

	deleteTransactionSQL = `DELETE FROM transactions WHERE id = $1`

	// Ids are ULIDs, so lexicographic order is creation order.
	listByOwnerSQL = `
		SELECT id, owner, entry_date, debit_account, credit_account, amount, narration
		FROM transactions
		WHERE owner = $1
		ORDER BY id`
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, insertTransactionSQL,
		t.ID, t.Owner, dateToPg(t.Date), t.Debit, t.Credit, decimalToNumeric(t.Amount), t.Narration)

	return err
}

// CreateTx inserts a new transaction inside a database transaction.
func (r *TransactionRepository) CreateTx(ctx context.Context, tx usecase.Transaction, t *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertTransactionSQL,
		t.ID, t.Owner, dateToPg(t.Date), t.Debit, t.Credit, decimalToNumeric(t.Amount), t.Narration)

	return err
}

// GetByID retrieves a transaction by id.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx, selectTransactionSQL, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return t, nil
}

// Delete removes a transaction by id.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteTransactionSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// DeleteTx removes a transaction by id inside a database transaction.
func (r *TransactionRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, deleteTransactionSQL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// ListByOwner returns the owner's full transaction list in stored order.
func (r *TransactionRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, listByOwnerSQL, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t      domain.Transaction
		date   pgtype.Date
		amount pgtype.Numeric
	)

	err := row.Scan(&t.ID, &t.Owner, &date, &t.Debit, &t.Credit, &amount, &t.Narration)
	if err != nil {
		return nil, err
	}

	t.Date = date.Time
	t.Amount = numericToDecimal(amount)

	return &t, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func dateToPg(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}
