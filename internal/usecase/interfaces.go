package usecase

import (
	"context"
	"time"

	"github.com/finova/finova/internal/domain"
)

// TransactionRepository defines data access for journal transactions.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	CreateTx(ctx context.Context, tx Transaction, t *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	Delete(ctx context.Context, id string) error
	// ListByOwner returns the owner's full transaction list in stored
	// order, as one consistent snapshot.
	ListByOwner(ctx context.Context, owner string) ([]*domain.Transaction, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
