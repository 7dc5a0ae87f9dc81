package aggregation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorized(id, amount string, typ domain.TransactionType, category domain.TransactionCategory) domain.Transaction {
	t := txn(id, amount, typ, true)
	t.CategoryID = category
	return t
}

func TestSummarizeDashboard_Empty(t *testing.T) {
	got := aggregation.SummarizeDashboard(nil, nil, nil)

	assert.True(t, got.TotalIncome.IsZero())
	assert.True(t, got.TotalBalance.IsZero())
	assert.True(t, got.TotalRemaining.IsZero())
	assert.Empty(t, got.TopCategories)
	assert.Empty(t, got.TopProducts)
	assert.Empty(t, got.PlanningBalances)
}

func TestSummarizeDashboard_Totals(t *testing.T) {
	planning := []domain.PlanningList{
		{
			ListID: "march",
			Name:   "Março",
			Transactions: []domain.Transaction{
				categorized("t1", "5000", domain.TransactionTypeIncome, domain.CategorySalario),
				categorized("t2", "1500", domain.TransactionTypeExpense, domain.CategoryMoradia),
				categorized("t3", "800", domain.TransactionTypeExpense, domain.CategoryAlimentacao),
			},
		},
		{
			ListID: "april",
			Name:   "Abril",
			Transactions: []domain.Transaction{
				categorized("t4", "1000", domain.TransactionTypeIncome, domain.CategoryFreelance),
				categorized("t5", "300", domain.TransactionTypeExpense, domain.CategoryAlimentacao),
			},
		},
	}
	shopping := []domain.ShoppingList{
		{ListID: "s1", Budget: dec("500"), Items: []domain.ShoppingItem{
			item("i1", "arroz", "20.99", "2", false),
			item("i2", "feijao", "8.99", "3", true),
		}},
		{ListID: "s2", Budget: dec("0"), Items: []domain.ShoppingItem{
			item("i3", "ghost", "10", "1", false),
		}},
	}

	got := aggregation.SummarizeDashboard(planning, shopping, nil)

	assert.True(t, dec("6000").Equal(got.TotalIncome))
	assert.True(t, dec("2600").Equal(got.TotalExpense))
	assert.True(t, dec("3400").Equal(got.TotalBalance))
	assert.True(t, dec("500").Equal(got.TotalBudget))
	assert.True(t, dec("78.95").Equal(got.TotalSpent), "unresolved products still count towards spent")
	assert.True(t, dec("421.05").Equal(got.TotalRemaining))

	require.Len(t, got.PlanningBalances, 2)
	assert.Equal(t, "Março", got.PlanningBalances[0].Name)
	assert.True(t, dec("2700").Equal(got.PlanningBalances[0].Balance))
	assert.True(t, dec("700").Equal(got.PlanningBalances[1].Balance))

	require.Len(t, got.TopCategories, 2)
	assert.Equal(t, domain.CategoryMoradia, got.TopCategories[0].CategoryID)
	assert.Equal(t, "Moradia", got.TopCategories[0].Label)
	assert.Equal(t, domain.CategoryAlimentacao, got.TopCategories[1].CategoryID)
	assert.True(t, dec("1100").Equal(got.TopCategories[1].Total))
	assert.Empty(t, got.TopProducts)
}

func TestSummarizeDashboard_TopCategoriesLimitAndLegacyIDs(t *testing.T) {
	var txns []domain.Transaction
	amounts := []string{"10", "60", "30", "50", "20", "40"}
	categories := []domain.TransactionCategory{"lazer", "contas", "pets", "saude", "gasolina", "viagens"}
	for i, c := range categories {
		txns = append(txns, categorized(string(c), amounts[i], domain.TransactionTypeExpense, c))
	}
	txns = append(txns, categorized("income", "9999", domain.TransactionTypeIncome, domain.CategorySalario))

	got := aggregation.SummarizeDashboard([]domain.PlanningList{{Transactions: txns}}, nil, nil)

	require.Len(t, got.TopCategories, aggregation.TopN)
	var order []domain.TransactionCategory
	for _, c := range got.TopCategories {
		order = append(order, c.CategoryID)
	}
	assert.Equal(t, []domain.TransactionCategory{"contas", "saude", "viagens", "pets", "gasolina"}, order)

	legacy := got.TopCategories[4]
	assert.False(t, legacy.Known)
	assert.Equal(t, "gasolina", legacy.Label)
	assert.True(t, got.TopCategories[0].Known)
}

func TestSummarizeDashboard_TopProducts(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := jan.AddDate(0, 1, 0)
	mar := jan.AddDate(0, 2, 0)

	products := []domain.Product{
		{ProductID: "arroz", Name: "Arroz", Brand: strPtr("Camil")},
		{ProductID: "feijao", Name: "Feijão"},
		{ProductID: "cafe", Name: "Café"},
		{ProductID: "gratis", Name: "Amostra"},
	}
	// Lists are deliberately out of chronological order.
	shopping := []domain.ShoppingList{
		{ListID: "mar", AuditFields: domain.AuditFields{CreatedAt: mar}, Items: []domain.ShoppingItem{
			item("a3", "arroz", "25.00", "1", false),
			item("g2", "gratis", "5.00", "1", false),
		}},
		{ListID: "jan", AuditFields: domain.AuditFields{CreatedAt: jan}, Items: []domain.ShoppingItem{
			item("a1", "arroz", "20.00", "2", true),
			item("f1", "feijao", "10.00", "1", true),
			item("c1", "cafe", "18.00", "1", true),
			item("g1", "gratis", "0", "1", true),
		}},
		{ListID: "feb", AuditFields: domain.AuditFields{CreatedAt: feb}, Items: []domain.ShoppingItem{
			item("a2", "arroz", "22.00", "1", true),
			item("f2", "feijao", "8.00", "1", true),
			item("x1", "unknown", "100", "1", true),
		}},
	}

	got := aggregation.SummarizeDashboard(nil, shopping, products)

	require.Len(t, got.TopProducts, 4)
	byID := map[string]domain.ProductStat{}
	for _, p := range got.TopProducts {
		byID[p.ProductID] = p
	}
	assert.NotContains(t, byID, "unknown")

	arroz := byID["arroz"]
	assert.Equal(t, 3, arroz.Frequency)
	assert.True(t, dec("87").Equal(arroz.TotalSpent))
	assert.Equal(t, int64(25), arroz.PriceChange, "20 in January to 25 in March")
	assert.Equal(t, "Camil", *arroz.Brand)

	feijao := byID["feijao"]
	assert.Equal(t, int64(-20), feijao.PriceChange)

	assert.Equal(t, int64(0), byID["cafe"].PriceChange, "a single observation has no trend")
	assert.Equal(t, int64(0), byID["gratis"].PriceChange, "a zero oldest price short-circuits")

	assert.Equal(t, "arroz", got.TopProducts[0].ProductID)
	assert.Equal(t, "feijao", got.TopProducts[1].ProductID)
	assert.Equal(t, "cafe", got.TopProducts[2].ProductID)
	assert.Equal(t, "gratis", got.TopProducts[3].ProductID)
}

func TestSummarizeDashboard_PriceChangeRoundsHalfUp(t *testing.T) {
	day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []domain.Product{{ProductID: "p", Name: "P"}, {ProductID: "q", Name: "Q"}}
	shopping := []domain.ShoppingList{
		{AuditFields: domain.AuditFields{CreatedAt: day1}, Items: []domain.ShoppingItem{
			item("p1", "p", "200", "1", false),
			item("q1", "q", "200", "1", false),
		}},
		{AuditFields: domain.AuditFields{CreatedAt: day1.AddDate(0, 0, 1)}, Items: []domain.ShoppingItem{
			item("p2", "p", "201", "1", false),
			item("q2", "q", "199", "1", false),
		}},
	}

	got := aggregation.SummarizeDashboard(nil, shopping, products)

	byID := map[string]int64{}
	for _, p := range got.TopProducts {
		byID[p.ProductID] = p.PriceChange
	}
	assert.Equal(t, int64(1), byID["p"], "0.5 rounds up")
	assert.Equal(t, int64(0), byID["q"], "-0.5 rounds towards positive infinity")
}
