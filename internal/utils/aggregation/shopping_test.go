package aggregation_test

import (
	"testing"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func strPtr(s string) *string { return &s }

func item(id, productID, price, quantity string, checked bool) domain.ShoppingItem {
	return domain.ShoppingItem{
		ItemID:    id,
		ProductID: productID,
		Price:     dec(price),
		Quantity:  dec(quantity),
		Checked:   checked,
	}
}

func itemIDs(items []domain.ShoppingItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.ItemID)
	}
	return out
}

func TestComputeShoppingTotals(t *testing.T) {
	tests := []struct {
		name           string
		items          []domain.ShoppingItem
		budget         string
		wantSpent      string
		wantRemaining  string
		wantPercentage string
		wantWidth      string
	}{
		{
			name: "rice and beans",
			items: []domain.ShoppingItem{
				item("i1", "arroz", "20.99", "2", false),
				item("i2", "feijao", "8.99", "3", true),
			},
			budget:         "500",
			wantSpent:      "68.95",
			wantRemaining:  "431.05",
			wantPercentage: "13.79",
			wantWidth:      "13.79",
		},
		{
			name:           "empty list",
			budget:         "100",
			wantSpent:      "0",
			wantRemaining:  "100",
			wantPercentage: "0",
			wantWidth:      "0",
		},
		{
			name:           "zero budget never divides",
			items:          []domain.ShoppingItem{item("i1", "p", "10", "1", false)},
			budget:         "0",
			wantSpent:      "10",
			wantRemaining:  "-10",
			wantPercentage: "0",
			wantWidth:      "0",
		},
		{
			name:           "overspend is not clamped",
			items:          []domain.ShoppingItem{item("i1", "p", "75", "2", false)},
			budget:         "100",
			wantSpent:      "150",
			wantRemaining:  "-50",
			wantPercentage: "150",
			wantWidth:      "100",
		},
		{
			name:           "fractional quantity",
			items:          []domain.ShoppingItem{item("i1", "queijo", "49.90", "0.5", true)},
			budget:         "50",
			wantSpent:      "24.95",
			wantRemaining:  "25.05",
			wantPercentage: "49.9",
			wantWidth:      "49.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := aggregation.ComputeShoppingTotals(tt.items, dec(tt.budget))
			assert.True(t, dec(tt.wantSpent).Equal(got.Spent), "spent: got %s", got.Spent)
			assert.True(t, dec(tt.wantRemaining).Equal(got.Remaining), "remaining: got %s", got.Remaining)
			assert.True(t, dec(tt.wantPercentage).Equal(got.Percentage), "percentage: got %s", got.Percentage)
			assert.True(t, dec(tt.wantWidth).Equal(got.ProgressWidth()), "width: got %s", got.ProgressWidth())
			assert.True(t, dec(tt.budget).Equal(got.Budget))
		})
	}
}

func TestComputeShoppingTotals_CountsCheckedAndUncheckedItems(t *testing.T) {
	unchecked := []domain.ShoppingItem{item("i1", "p", "10", "1", false)}
	checked := []domain.ShoppingItem{item("i1", "p", "10", "1", true)}

	assert.True(t, aggregation.ComputeShoppingTotals(unchecked, decimal.NewFromInt(50)).Spent.
		Equal(aggregation.ComputeShoppingTotals(checked, decimal.NewFromInt(50)).Spent))
}

type ShoppingFilterTestSuite struct {
	suite.Suite
	products []domain.Product
	items    []domain.ShoppingItem
}

func (s *ShoppingFilterTestSuite) SetupTest() {
	s.products = []domain.Product{
		{ProductID: "arroz", Name: "Arroz", Brand: strPtr("Camil"), Category: "graos_cereais", Unit: domain.UnitKilogram},
		{ProductID: "feijao", Name: "Feijão", Brand: strPtr("Kicaldo"), Category: "graos_leguminosas", Unit: domain.UnitKilogram},
		{ProductID: "sabonete", Name: "Sabonete", Brand: strPtr("Dove"), Category: "higiene_pessoal", Unit: domain.UnitPiece},
		{ProductID: "leite", Name: "Leite", Category: "laticinios_leites", Unit: domain.UnitLiter},
	}
	s.items = []domain.ShoppingItem{
		item("i-arroz", "arroz", "20.99", "2", false),
		item("i-feijao", "feijao", "8.99", "3", true),
		item("i-sabonete", "sabonete", "3.99", "6", false),
		item("i-leite", "leite", "5.49", "12", true),
		item("i-orphan", "deleted-product", "1.00", "1", false),
	}
}

func (s *ShoppingFilterTestSuite) filter(f aggregation.ShoppingFilter) aggregation.ShoppingPartition {
	return aggregation.FilterShoppingItems(s.items, s.products, f)
}

func (s *ShoppingFilterTestSuite) TestZeroFilterPartitionsEverything() {
	got := s.filter(aggregation.ShoppingFilter{})
	s.ElementsMatch([]string{"i-arroz", "i-sabonete", "i-orphan"}, itemIDs(got.ToBuy))
	s.ElementsMatch([]string{"i-feijao", "i-leite"}, itemIDs(got.Purchased))
}

func (s *ShoppingFilterTestSuite) TestPartitionsAreDisjointAndCoverTheFilteredSet() {
	filters := []aggregation.ShoppingFilter{
		{},
		{SearchTerm: "a"},
		{CategoryID: "graos_cereais"},
		{PurchasedOnly: true},
		{SearchTerm: "e", SortField: aggregation.SortByPrice, SortOrder: aggregation.OrderDesc},
	}
	for _, f := range filters {
		got := s.filter(f)
		seen := map[string]int{}
		for _, i := range got.ToBuy {
			s.False(i.Checked)
			seen[i.ItemID]++
		}
		for _, i := range got.Purchased {
			s.True(i.Checked)
			seen[i.ItemID]++
		}
		for id, n := range seen {
			s.Equal(1, n, "item %s appears in both partitions", id)
		}
		s.Len(seen, len(got.ToBuy)+len(got.Purchased))
	}
}

func (s *ShoppingFilterTestSuite) TestSearchMatchesNameOrBrand() {
	byName := s.filter(aggregation.ShoppingFilter{SearchTerm: "FEIJ"})
	s.Empty(byName.ToBuy)
	s.Equal([]string{"i-feijao"}, itemIDs(byName.Purchased))

	byBrand := s.filter(aggregation.ShoppingFilter{SearchTerm: "dove"})
	s.Equal([]string{"i-sabonete"}, itemIDs(byBrand.ToBuy))
	s.Empty(byBrand.Purchased)
}

func (s *ShoppingFilterTestSuite) TestSearchSkipsProductsWithoutBrand() {
	got := s.filter(aggregation.ShoppingFilter{SearchTerm: "leite"})
	s.Equal([]string{"i-leite"}, itemIDs(got.Purchased))

	got = s.filter(aggregation.ShoppingFilter{SearchTerm: "parmalat"})
	s.Empty(got.ToBuy)
	s.Empty(got.Purchased)
}

func (s *ShoppingFilterTestSuite) TestUnresolvedProductNeverMatchesSearchOrCategory() {
	got := s.filter(aggregation.ShoppingFilter{SearchTerm: "1"})
	s.NotContains(itemIDs(got.ToBuy), "i-orphan")

	got = s.filter(aggregation.ShoppingFilter{CategoryID: "outros"})
	s.Empty(got.ToBuy)
	s.Empty(got.Purchased)
}

func (s *ShoppingFilterTestSuite) TestCategorySentinelDisablesFilter() {
	got := s.filter(aggregation.ShoppingFilter{CategoryID: aggregation.AllCategories})
	s.Len(got.ToBuy, 3)
	s.Len(got.Purchased, 2)

	got = s.filter(aggregation.ShoppingFilter{CategoryID: "higiene_pessoal"})
	s.Equal([]string{"i-sabonete"}, itemIDs(got.ToBuy))
	s.Empty(got.Purchased)
}

func (s *ShoppingFilterTestSuite) TestPurchasedOnlyEmptiesToBuy() {
	got := s.filter(aggregation.ShoppingFilter{PurchasedOnly: true})
	s.Empty(got.ToBuy)
	s.NotNil(got.ToBuy)
	s.Len(got.Purchased, 2)
}

func (s *ShoppingFilterTestSuite) TestEachPartitionIsSorted() {
	got := s.filter(aggregation.ShoppingFilter{SortField: aggregation.SortByPrice, SortOrder: aggregation.OrderDesc})
	s.Equal([]string{"i-arroz", "i-sabonete", "i-orphan"}, itemIDs(got.ToBuy))
	s.Equal([]string{"i-feijao", "i-leite"}, itemIDs(got.Purchased))

	got = s.filter(aggregation.ShoppingFilter{SortField: aggregation.SortByQuantity, SortOrder: aggregation.OrderAsc})
	s.Equal([]string{"i-arroz", "i-sabonete", "i-orphan"}, itemIDs(got.ToBuy))
	s.Equal([]string{"i-feijao", "i-leite"}, itemIDs(got.Purchased))
}

func (s *ShoppingFilterTestSuite) TestSortShoppingItemsByProductFields() {
	resolved := s.items[:4]

	byName := aggregation.SortShoppingItems(resolved, s.products, aggregation.SortByName, aggregation.OrderAsc)
	s.Equal([]string{"i-arroz", "i-feijao", "i-leite", "i-sabonete"}, itemIDs(byName))

	byNameDesc := aggregation.SortShoppingItems(resolved, s.products, aggregation.SortByName, aggregation.OrderDesc)
	s.Equal([]string{"i-sabonete", "i-leite", "i-feijao", "i-arroz"}, itemIDs(byNameDesc))

	byCategory := aggregation.SortShoppingItems(resolved, s.products, aggregation.SortByCategory, aggregation.OrderAsc)
	s.Equal([]string{"i-arroz", "i-feijao", "i-sabonete", "i-leite"}, itemIDs(byCategory))
}

func (s *ShoppingFilterTestSuite) TestSortShoppingItemsKeepsUnresolvedInPlace() {
	orphan := s.items[4]
	input := []domain.ShoppingItem{orphan, s.items[0]}

	got := aggregation.SortShoppingItems(input, s.products, aggregation.SortByName, aggregation.OrderDesc)
	s.Equal([]string{"i-orphan", "i-arroz"}, itemIDs(got))
}

func (s *ShoppingFilterTestSuite) TestSortShoppingItemsKeepsUnresolvedInPlaceForItemFields() {
	orphan := item("i-orphan", "deleted-product", "10.00", "9", false)
	known := item("i-arroz", "arroz", "5.00", "1", false)
	input := []domain.ShoppingItem{orphan, known}

	for _, field := range []aggregation.ShoppingSortField{aggregation.SortByPrice, aggregation.SortByQuantity} {
		for _, order := range []aggregation.SortOrder{aggregation.OrderAsc, aggregation.OrderDesc} {
			got := aggregation.SortShoppingItems(input, s.products, field, order)
			s.Equal([]string{"i-orphan", "i-arroz"}, itemIDs(got), "field %s order %s", field, order)
		}
	}
}

func TestShoppingFilterTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingFilterTestSuite))
}
