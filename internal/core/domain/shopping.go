package domain

import (
	"fmt"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ShoppingList is a named, budgeted collection of items.
type ShoppingList struct {
	ListID string          `json:"listID"`
	UserID string          `json:"userID"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Items  []ShoppingItem  `json:"items"`
	AuditFields
}

// ShoppingItem references a catalog product with the price and quantity planned for this list.
type ShoppingItem struct {
	ItemID    string          `json:"itemID"`
	ListID    string          `json:"listID"`
	UserID    string          `json:"userID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Checked   bool            `json:"checked"`
	AuditFields
}

// LineTotal is price times quantity.
func (i ShoppingItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(i.Quantity)
}

func (i ShoppingItem) Validate() error {
	if i.ProductID == "" {
		return fmt.Errorf("%w: product is required", apperrors.ErrValidation)
	}
	if !i.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// ShoppingListSummary is a list row of the index page, with its computed totals.
type ShoppingListSummary struct {
	List   ShoppingList   `json:"list"`
	Totals ShoppingTotals `json:"totals"`
}

// ShoppingListView is a shopping list together with the catalog it references,
// its totals and the partitioned items the caller asked for.
type ShoppingListView struct {
	List      ShoppingList   `json:"list"`
	Products  []Product      `json:"products"`
	Totals    ShoppingTotals `json:"totals"`
	ToBuy     []ShoppingItem `json:"toBuy"`
	Purchased []ShoppingItem `json:"purchased"`
}
