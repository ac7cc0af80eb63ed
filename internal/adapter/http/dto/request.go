package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finova/finova/internal/usecase"
)

// dateLayout is the wire format for journal dates.
const dateLayout = "2006-01-02"

// EntryRequest represents a request to create or replace a journal entry.
type EntryRequest struct {
	Owner     string          `json:"owner"`
	Date      string          `json:"date"`
	Debit     string          `json:"debit"`
	Credit    string          `json:"credit"`
	Amount    decimal.Decimal `json:"amount"`
	Narration string          `json:"narration"`
}

// ToUseCaseInput converts to use case input, parsing the entry date.
func (r *EntryRequest) ToUseCaseInput() (usecase.EntryInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return usecase.EntryInput{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", r.Date)
	}

	return usecase.EntryInput{
		Owner:     r.Owner,
		Date:      date,
		Debit:     r.Debit,
		Credit:    r.Credit,
		Amount:    r.Amount,
		Narration: r.Narration,
	}, nil
}
