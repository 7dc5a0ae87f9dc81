package aggregation

import (
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionTab selects which transactions a planning list view shows.
type TransactionTab string

const (
	TabAll     TransactionTab = "all"
	TabIncome  TransactionTab = "income"
	TabExpense TransactionTab = "expense"
	// TabPending shows unpaid expenses and replaces the type selection.
	TabPending TransactionTab = "pending"
)

// TransactionSortField is the key a planning list view is ordered by.
type TransactionSortField string

const (
	SortByDate        TransactionSortField = "date"
	SortByAmount      TransactionSortField = "amount"
	SortByDescription TransactionSortField = "description"
)

// TransactionFilter holds the predicates of a planning list view. The zero value keeps everything.
type TransactionFilter struct {
	TypeTab    TransactionTab
	SearchTerm string
	CategoryID string
	PaidOnly   bool
}

// ComputeTransactionTotals sums income and expense amounts. Empty input yields zeros.
func ComputeTransactionTotals(transactions []domain.Transaction) domain.TransactionTotals {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case domain.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return domain.TransactionTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// FilterTransactions keeps the transactions matching every predicate of f, in input order.
// An empty or unrecognised tab behaves like TabAll.
func FilterTransactions(transactions []domain.Transaction, f TransactionFilter) []domain.Transaction {
	return Filter(transactions, func(t domain.Transaction) bool {
		if !matchesTab(t, f.TypeTab) {
			return false
		}
		if f.SearchTerm != "" && !containsFold(t.Description, f.SearchTerm) {
			return false
		}
		if f.CategoryID != "" && string(t.CategoryID) != f.CategoryID {
			return false
		}
		if f.PaidOnly && !t.IsPaid {
			return false
		}
		return true
	})
}

func matchesTab(t domain.Transaction, tab TransactionTab) bool {
	switch tab {
	case TabIncome:
		return t.Type == domain.TransactionTypeIncome
	case TabExpense:
		return t.Type == domain.TransactionTypeExpense
	case TabPending:
		return t.Type == domain.TransactionTypeExpense && !t.IsPaid
	default:
		return true
	}
}

// SortTransactions returns a sorted copy of transactions.
//
// The base ordering is newest created_at first for SortByDate (the editable Date field is
// ignored), largest amount first for SortByAmount and alphabetical for SortByDescription.
// OrderAsc reverses the base ordering; any other order keeps it. Ties keep their input order.
func SortTransactions(transactions []domain.Transaction, field TransactionSortField, order SortOrder) []domain.Transaction {
	base := transactionComparator(field)
	return SortedBy(transactions, func(a, b domain.Transaction) int {
		c := base(a, b)
		if order == OrderAsc {
			return -c
		}
		return c
	})
}

func transactionComparator(field TransactionSortField) func(a, b domain.Transaction) int {
	switch field {
	case SortByDate:
		return func(a, b domain.Transaction) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortByAmount:
		return func(a, b domain.Transaction) int { return b.Amount.Cmp(a.Amount) }
	case SortByDescription:
		compare := newTextComparer()
		return func(a, b domain.Transaction) int { return compare(a.Description, b.Description) }
	default:
		return func(domain.Transaction, domain.Transaction) int { return 0 }
	}
}
