package domain

// AccountType determines the natural balance sign of an account.
type AccountType string

const (
	TypeAsset     AccountType = "asset"
	TypeLiability AccountType = "liability"
	TypeRevenue   AccountType = "revenue"
	TypeExpense   AccountType = "expense"
)

// AccountCategory determines which report an account appears in.
type AccountCategory string

const (
	CategoryBalanceSheet AccountCategory = "balance-sheet"
	CategoryTrading      AccountCategory = "trading"
	CategoryPL           AccountCategory = "pl"
)

// Account is one record in the chart of accounts. The chart is fixed at
// startup and never mutated at runtime.
type Account struct {
	ID       string
	Name     string
	Type     AccountType
	Category AccountCategory
	// Hidden accounts (e.g. the synthetic overdraft) are excluded from
	// entry-selection lists but still participate in balance computation.
	Hidden bool
}
