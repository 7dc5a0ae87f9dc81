package aggregation

import (
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShoppingSortField is the key a shopping list view is ordered by.
type ShoppingSortField string

const (
	SortByName     ShoppingSortField = "name"
	SortByPrice    ShoppingSortField = "price"
	SortByQuantity ShoppingSortField = "quantity"
	SortByCategory ShoppingSortField = "category"
)

// AllCategories disables the category predicate, like an empty CategoryID.
const AllCategories = "all"

var hundred = decimal.NewFromInt(100)

// ShoppingFilter holds the predicates and ordering of a shopping list view.
type ShoppingFilter struct {
	SearchTerm    string
	CategoryID    string
	PurchasedOnly bool
	SortField     ShoppingSortField
	SortOrder     SortOrder
}

// ShoppingPartition splits the filtered items by their checked state.
type ShoppingPartition struct {
	ToBuy     []domain.ShoppingItem `json:"toBuy"`
	Purchased []domain.ShoppingItem `json:"purchased"`
}

// ComputeShoppingTotals sums price times quantity over every item, checked or not.
// Percentage is zero when budget is not positive and is never clamped.
func ComputeShoppingTotals(items []domain.ShoppingItem, budget decimal.Decimal) domain.ShoppingTotals {
	spent := SumBy(items, domain.ShoppingItem.LineTotal)
	percentage := decimal.Zero
	if budget.IsPositive() {
		percentage = spent.Div(budget).Mul(hundred)
	}
	return domain.ShoppingTotals{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.Sub(spent),
		Percentage: percentage,
	}
}

// ProductIndex maps product ids to products.
func ProductIndex(products []domain.Product) map[string]domain.Product {
	idx := make(map[string]domain.Product, len(products))
	for _, p := range products {
		idx[p.ProductID] = p
	}
	return idx
}

// FilterShoppingItems applies f to items and partitions the result into unchecked and checked
// items, each sorted by f.SortField and f.SortOrder.
//
// Search matches the product name or brand. Items whose product is not in products never match
// a search term or a category.
func FilterShoppingItems(items []domain.ShoppingItem, products []domain.Product, f ShoppingFilter) ShoppingPartition {
	idx := ProductIndex(products)
	filtered := Filter(items, func(item domain.ShoppingItem) bool {
		p, ok := idx[item.ProductID]
		if f.SearchTerm != "" {
			if !ok || !productMatches(p, f.SearchTerm) {
				return false
			}
		}
		if f.CategoryID != "" && f.CategoryID != AllCategories {
			if !ok || string(p.Category) != f.CategoryID {
				return false
			}
		}
		if f.PurchasedOnly && !item.Checked {
			return false
		}
		return true
	})

	purchased, toBuy := Partition(filtered, func(item domain.ShoppingItem) bool { return item.Checked })
	cmp := shoppingComparator(idx, f.SortField, f.SortOrder)
	return ShoppingPartition{
		ToBuy:     SortedBy(toBuy, cmp),
		Purchased: SortedBy(purchased, cmp),
	}
}

func productMatches(p domain.Product, term string) bool {
	if containsFold(p.Name, term) {
		return true
	}
	return p.Brand != nil && containsFold(*p.Brand, term)
}

// SortShoppingItems returns a sorted copy of items. Name and category compare the referenced
// products, price and quantity compare the items. An item whose product is missing compares
// equal to everything, whatever the field. OrderDesc reverses the ordering; any other order is ascending.
func SortShoppingItems(items []domain.ShoppingItem, products []domain.Product, field ShoppingSortField, order SortOrder) []domain.ShoppingItem {
	return SortedBy(items, shoppingComparator(ProductIndex(products), field, order))
}

func shoppingComparator(idx map[string]domain.Product, field ShoppingSortField, order SortOrder) func(a, b domain.ShoppingItem) int {
	compareText := newTextComparer()
	base := func(a, b domain.ShoppingItem) int {
		pa, okA := idx[a.ProductID]
		pb, okB := idx[b.ProductID]
		if !okA || !okB {
			return 0
		}
		switch field {
		case SortByPrice:
			return a.Price.Cmp(b.Price)
		case SortByQuantity:
			return a.Quantity.Cmp(b.Quantity)
		case SortByName:
			return compareText(pa.Name, pb.Name)
		case SortByCategory:
			return compareText(string(pa.Category), string(pb.Category))
		}
		return 0
	}
	return func(a, b domain.ShoppingItem) int {
		if order == OrderDesc {
			return -base(a, b)
		}
		return base(a, b)
	}
}
