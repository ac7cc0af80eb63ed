package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validTransaction() Transaction {
	return Transaction{
		ID:     "01TEST",
		Owner:  "admin",
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Debit:  "cash",
		Credit: "sales",
		Amount: decimal.NewFromInt(100),
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{
			name:    "valid transaction",
			mutate:  func(t *Transaction) {},
			wantErr: nil,
		},
		{
			name:    "debit equals credit",
			mutate:  func(t *Transaction) { t.Credit = t.Debit },
			wantErr: ErrSameAccount,
		},
		{
			name:    "zero amount",
			mutate:  func(t *Transaction) { t.Amount = decimal.Zero },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(t *Transaction) { t.Amount = decimal.NewFromInt(-5) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing owner",
			mutate:  func(t *Transaction) { t.Owner = "" },
			wantErr: ErrMissingOwner,
		},
		{
			name:    "missing date",
			mutate:  func(t *Transaction) { t.Date = time.Time{} },
			wantErr: ErrMissingDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTransaction_ValidateAgainst(t *testing.T) {
	chart := DefaultChart()

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{
			name:    "known accounts",
			mutate:  func(t *Transaction) {},
			wantErr: nil,
		},
		{
			name:    "unknown debit account",
			mutate:  func(t *Transaction) { t.Debit = "petty-cash" },
			wantErr: ErrUnknownAccount,
		},
		{
			name:    "unknown credit account",
			mutate:  func(t *Transaction) { t.Credit = "petty-cash" },
			wantErr: ErrUnknownAccount,
		},
		{
			name:    "structural error takes precedence",
			mutate:  func(t *Transaction) { t.Debit = "x"; t.Credit = "x" },
			wantErr: ErrSameAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.ValidateAgainst(chart)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
