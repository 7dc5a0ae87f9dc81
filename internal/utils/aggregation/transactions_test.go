package aggregation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(id string, amount string, typ domain.TransactionType, paid bool) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Description:   id,
		Amount:        dec(amount),
		Type:          typ,
		CategoryID:    domain.CategoryOutrosGastos,
		IsPaid:        paid,
	}
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.TransactionID)
	}
	return out
}

func TestComputeTransactionTotals(t *testing.T) {
	tests := []struct {
		name        string
		txns        []domain.Transaction
		wantIncome  string
		wantExpense string
		wantBalance string
	}{
		{
			name:        "empty input",
			wantIncome:  "0",
			wantExpense: "0",
			wantBalance: "0",
		},
		{
			name: "salary with two expenses",
			txns: []domain.Transaction{
				txn("t1", "5000", domain.TransactionTypeIncome, true),
				txn("t2", "1500", domain.TransactionTypeExpense, true),
				txn("t3", "800", domain.TransactionTypeExpense, false),
			},
			wantIncome:  "5000",
			wantExpense: "2300",
			wantBalance: "2700",
		},
		{
			name: "negative balance",
			txns: []domain.Transaction{
				txn("t1", "100.10", domain.TransactionTypeIncome, true),
				txn("t2", "250.25", domain.TransactionTypeExpense, true),
			},
			wantIncome:  "100.10",
			wantExpense: "250.25",
			wantBalance: "-150.15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregation.ComputeTransactionTotals(tt.txns)
			assert.True(t, dec(tt.wantIncome).Equal(got.Income), "income: got %s", got.Income)
			assert.True(t, dec(tt.wantExpense).Equal(got.Expense), "expense: got %s", got.Expense)
			assert.True(t, dec(tt.wantBalance).Equal(got.Balance), "balance: got %s", got.Balance)
			assert.True(t, got.Income.Sub(got.Expense).Equal(got.Balance))
			assert.False(t, got.Income.IsNegative())
			assert.False(t, got.Expense.IsNegative())
		})
	}
}

func TestFilterTransactions(t *testing.T) {
	expenseUnpaid := txn("expense-unpaid", "10", domain.TransactionTypeExpense, false)
	expensePaid := txn("expense-paid", "20", domain.TransactionTypeExpense, true)
	incomeUnpaid := txn("income-unpaid", "30", domain.TransactionTypeIncome, false)
	incomePaid := txn("income-paid", "40", domain.TransactionTypeIncome, true)
	incomePaid.Description = "Salário Março"
	incomePaid.CategoryID = domain.CategorySalario
	all := []domain.Transaction{expenseUnpaid, expensePaid, incomeUnpaid, incomePaid}

	tests := []struct {
		name   string
		filter aggregation.TransactionFilter
		want   []string
	}{
		{name: "zero filter", filter: aggregation.TransactionFilter{}, want: ids(all)},
		{name: "all tab", filter: aggregation.TransactionFilter{TypeTab: aggregation.TabAll}, want: ids(all)},
		{name: "unknown tab behaves like all", filter: aggregation.TransactionFilter{TypeTab: "archived"}, want: ids(all)},
		{name: "income tab", filter: aggregation.TransactionFilter{TypeTab: aggregation.TabIncome}, want: []string{"income-unpaid", "income-paid"}},
		{name: "expense tab", filter: aggregation.TransactionFilter{TypeTab: aggregation.TabExpense}, want: []string{"expense-unpaid", "expense-paid"}},
		{name: "pending tab keeps unpaid expenses only", filter: aggregation.TransactionFilter{TypeTab: aggregation.TabPending}, want: []string{"expense-unpaid"}},
		{name: "paid only composes with all", filter: aggregation.TransactionFilter{PaidOnly: true}, want: []string{"expense-paid", "income-paid"}},
		{name: "paid only composes with income", filter: aggregation.TransactionFilter{TypeTab: aggregation.TabIncome, PaidOnly: true}, want: []string{"income-paid"}},
		{name: "paid only with pending is empty", filter: aggregation.TransactionFilter{TypeTab: aggregation.TabPending, PaidOnly: true}, want: []string{}},
		{name: "search ignores case", filter: aggregation.TransactionFilter{SearchTerm: "salário"}, want: []string{"income-paid"}},
		{name: "search is a substring match", filter: aggregation.TransactionFilter{SearchTerm: "MARÇO"}, want: []string{"income-paid"}},
		{name: "category exact match", filter: aggregation.TransactionFilter{CategoryID: "salario"}, want: []string{"income-paid"}},
		{name: "category prefix does not match", filter: aggregation.TransactionFilter{CategoryID: "sal"}, want: []string{}},
		{name: "predicates are conjunctive", filter: aggregation.TransactionFilter{TypeTab: aggregation.TabExpense, CategoryID: "salario"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregation.FilterTransactions(all, tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterTransactions_PendingScenario(t *testing.T) {
	input := []domain.Transaction{
		txn("a", "1", domain.TransactionTypeExpense, false),
		txn("b", "1", domain.TransactionTypeExpense, true),
		txn("c", "1", domain.TransactionTypeIncome, false),
	}

	got := aggregation.FilterTransactions(input, aggregation.TransactionFilter{TypeTab: aggregation.TabPending})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].TransactionID)
}

func TestFilterTransactions_DoesNotMutateInput(t *testing.T) {
	input := []domain.Transaction{
		txn("a", "1", domain.TransactionTypeExpense, false),
		txn("b", "1", domain.TransactionTypeIncome, true),
	}
	snapshot := append([]domain.Transaction(nil), input...)

	_ = aggregation.FilterTransactions(input, aggregation.TransactionFilter{TypeTab: aggregation.TabIncome})
	_ = aggregation.SortTransactions(input, aggregation.SortByAmount, aggregation.OrderAsc)

	assert.Equal(t, snapshot, input)
}

func TestSortTransactions(t *testing.T) {
	// created_at and date deliberately disagree: "old" was created first but dated last.
	old := txn("old", "300", domain.TransactionTypeExpense, true)
	old.Description = "banana"
	old.CreatedAt = baseTime
	old.Date = baseTime.AddDate(0, 1, 0)

	mid := txn("mid", "100", domain.TransactionTypeExpense, true)
	mid.Description = "Abacaxi"
	mid.CreatedAt = baseTime.Add(time.Hour)
	mid.Date = baseTime

	recent := txn("recent", "200", domain.TransactionTypeIncome, true)
	recent.Description = "cereja"
	recent.CreatedAt = baseTime.Add(2 * time.Hour)
	recent.Date = baseTime.AddDate(0, 0, -5)

	input := []domain.Transaction{mid, old, recent}

	tests := []struct {
		name  string
		field aggregation.TransactionSortField
		order aggregation.SortOrder
		want  []string
	}{
		{name: "date desc is newest created first", field: aggregation.SortByDate, order: aggregation.OrderDesc, want: []string{"recent", "mid", "old"}},
		{name: "date asc is oldest created first", field: aggregation.SortByDate, order: aggregation.OrderAsc, want: []string{"old", "mid", "recent"}},
		{name: "amount desc is largest first", field: aggregation.SortByAmount, order: aggregation.OrderDesc, want: []string{"old", "recent", "mid"}},
		{name: "amount asc is smallest first", field: aggregation.SortByAmount, order: aggregation.OrderAsc, want: []string{"mid", "recent", "old"}},
		{name: "description desc keeps the base alphabetical order", field: aggregation.SortByDescription, order: aggregation.OrderDesc, want: []string{"mid", "old", "recent"}},
		{name: "description asc reverses it", field: aggregation.SortByDescription, order: aggregation.OrderAsc, want: []string{"recent", "old", "mid"}},
		{name: "empty order uses the base comparison", field: aggregation.SortByDate, order: "", want: []string{"recent", "mid", "old"}},
		{name: "unknown field keeps input order", field: "category", order: aggregation.OrderAsc, want: []string{"mid", "old", "recent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregation.SortTransactions(input, tt.field, tt.order)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSortTransactions_TiesKeepInputOrder(t *testing.T) {
	a := txn("a", "50", domain.TransactionTypeExpense, true)
	b := txn("b", "50", domain.TransactionTypeExpense, true)
	c := txn("c", "50", domain.TransactionTypeExpense, true)

	got := aggregation.SortTransactions([]domain.Transaction{b, c, a}, aggregation.SortByAmount, aggregation.OrderAsc)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestSortTransactions_AccentsCollateWithBaseLetter(t *testing.T) {
	e := txn("educacao", "1", domain.TransactionTypeExpense, true)
	e.Description = "Educação"
	f := txn("farmacia", "1", domain.TransactionTypeExpense, true)
	f.Description = "Farmácia"
	a := txn("agua", "1", domain.TransactionTypeExpense, true)
	a.Description = "Água"

	got := aggregation.SortTransactions([]domain.Transaction{f, e, a}, aggregation.SortByDescription, aggregation.OrderDesc)
	assert.Equal(t, []string{"agua", "educacao", "farmacia"}, ids(got))
}
