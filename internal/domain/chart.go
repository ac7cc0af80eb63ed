package domain

// Chart is an immutable chart of accounts with precomputed partitions.
// Report builders iterate these partitions instead of filtering the flat
// account list on every refresh.
type Chart struct {
	accounts   []Account
	byID       map[string]Account
	byType     map[AccountType][]Account
	byCategory map[AccountCategory][]Account
}

// NewChart builds a chart from an account list. Account ids must be unique.
func NewChart(accounts []Account) (*Chart, error) {
	c := &Chart{
		accounts:   make([]Account, len(accounts)),
		byID:       make(map[string]Account, len(accounts)),
		byType:     make(map[AccountType][]Account),
		byCategory: make(map[AccountCategory][]Account),
	}
	copy(c.accounts, accounts)

	for _, acc := range c.accounts {
		if _, ok := c.byID[acc.ID]; ok {
			return nil, ErrDuplicateAccountID
		}
		c.byID[acc.ID] = acc
		c.byType[acc.Type] = append(c.byType[acc.Type], acc)
		c.byCategory[acc.Category] = append(c.byCategory[acc.Category], acc)
	}

	return c, nil
}

// Accounts returns all accounts in chart-declaration order.
func (c *Chart) Accounts() []Account {
	return c.accounts
}

// Visible returns the accounts selectable in journal entry forms.
func (c *Chart) Visible() []Account {
	visible := make([]Account, 0, len(c.accounts))
	for _, acc := range c.accounts {
		if !acc.Hidden {
			visible = append(visible, acc)
		}
	}
	return visible
}

// ByType returns accounts of the given type in declaration order.
func (c *Chart) ByType(t AccountType) []Account {
	return c.byType[t]
}

// ByCategory returns accounts of the given category in declaration order.
func (c *Chart) ByCategory(cat AccountCategory) []Account {
	return c.byCategory[cat]
}

// Lookup returns the account with the given id.
func (c *Chart) Lookup(id string) (Account, bool) {
	acc, ok := c.byID[id]
	return acc, ok
}

// Name returns the display name for an account id, or the id itself when
// the account is not in the chart.
func (c *Chart) Name(id string) string {
	if acc, ok := c.byID[id]; ok {
		return acc.Name
	}
	return id
}

// Well-known account ids the balance sheet builder treats specially.
const (
	AccountBank      = "bank"
	AccountOverdraft = "overdraft"
	AccountCapital   = "capital"
	AccountDrawings  = "drawings"
)

// DefaultAccounts is the built-in single-user bookkeeping chart.
var DefaultAccounts = []Account{
	// Assets
	{ID: "cash", Name: "Cash", Type: TypeAsset, Category: CategoryBalanceSheet},
	{ID: AccountBank, Name: "Bank", Type: TypeAsset, Category: CategoryBalanceSheet},
	{ID: AccountOverdraft, Name: "Bank Overdraft", Type: TypeLiability, Category: CategoryBalanceSheet, Hidden: true},
	{ID: "inventory", Name: "Inventory", Type: TypeAsset, Category: CategoryTrading},
	{ID: "accounts-receivable", Name: "Accounts Receivable", Type: TypeAsset, Category: CategoryBalanceSheet},
	// Liabilities & Capital
	{ID: AccountCapital, Name: "Owner's Capital", Type: TypeLiability, Category: CategoryBalanceSheet},
	{ID: "accounts-payable", Name: "Accounts Payable", Type: TypeLiability, Category: CategoryBalanceSheet},
	{ID: "bank-loan", Name: "Bank Loan", Type: TypeLiability, Category: CategoryBalanceSheet},
	{ID: AccountDrawings, Name: "Drawings", Type: TypeLiability, Category: CategoryBalanceSheet},
	// Trading
	{ID: "sales", Name: "Sales", Type: TypeRevenue, Category: CategoryTrading},
	{ID: "sales-return", Name: "Sales Return", Type: TypeRevenue, Category: CategoryTrading},
	{ID: "purchases", Name: "Purchases", Type: TypeExpense, Category: CategoryTrading},
	{ID: "purchase-return", Name: "Purchase Return", Type: TypeExpense, Category: CategoryTrading},
	{ID: "direct-expenses", Name: "Direct Expenses", Type: TypeExpense, Category: CategoryTrading},
	// P&L
	{ID: "indirect-income", Name: "Other Income", Type: TypeRevenue, Category: CategoryPL},
	{ID: "rent-expense", Name: "Rent Expense", Type: TypeExpense, Category: CategoryPL},
	{ID: "salary-expense", Name: "Salary Expense", Type: TypeExpense, Category: CategoryPL},
	{ID: "utility-expense", Name: "Utility Expense", Type: TypeExpense, Category: CategoryPL},
	{ID: "miscellanous-expense", Name: "Misc Expenses", Type: TypeExpense, Category: CategoryPL},
}

// DefaultChart returns the built-in chart of accounts.
func DefaultChart() *Chart {
	chart, err := NewChart(DefaultAccounts)
	if err != nil {
		panic(err) // built-in chart ids are unique
	}
	return chart
}
