package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionTotals holds the aggregates of a set of planning transactions.
// Balance is always Income minus Expense.
type TransactionTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ShoppingTotals holds the aggregates of a shopping list.
// Percentage is not clamped and exceeds 100 on overspend.
type ShoppingTotals struct {
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

var hundred = decimal.NewFromInt(100)

// ProgressWidth is Percentage capped at 100, for rendering a progress bar.
func (t ShoppingTotals) ProgressWidth() decimal.Decimal {
	return decimal.Min(t.Percentage, hundred)
}

// IsOverBudget reports whether more was committed than budgeted.
func (t ShoppingTotals) IsOverBudget() bool {
	return t.Remaining.IsNegative()
}

// CategoryTotal is the expense total of a single transaction category.
// Known is false for identifiers stored before the category set was closed; Label then carries the raw id.
type CategoryTotal struct {
	CategoryID TransactionCategory `json:"categoryID"`
	Label      string              `json:"label"`
	Known      bool                `json:"known"`
	Total      decimal.Decimal     `json:"total"`
}

// ProductStat summarizes how a product was bought across shopping lists.
type ProductStat struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Brand       *string         `json:"brand,omitempty"`
	Frequency   int             `json:"frequency"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	PriceChange int64           `json:"priceChange"`
}

// ListBalance is one bar of the planning balance chart.
type ListBalance struct {
	ListID  string          `json:"listID"`
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// DashboardSummary aggregates every planning and shopping list of a user.
type DashboardSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	TotalBalance     decimal.Decimal `json:"totalBalance"`
	TotalBudget      decimal.Decimal `json:"totalBudget"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	TotalRemaining   decimal.Decimal `json:"totalRemaining"`
	TopCategories    []CategoryTotal `json:"topCategories"`
	TopProducts      []ProductStat   `json:"topProducts"`
	PlanningBalances []ListBalance   `json:"planningBalances"`
}
