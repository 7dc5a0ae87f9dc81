package models

import "github.com/shopspring/decimal"

// ShoppingList is a row of the shopping_lists table.
type ShoppingList struct {
	ListID string          `json:"listID" db:"list_id"`
	UserID string          `json:"userID" db:"user_id"`
	Name   string          `json:"name" db:"name"`
	Budget decimal.Decimal `json:"budget" db:"budget"`
	AuditFields
}

// ShoppingItem is a row of the shopping_items table.
type ShoppingItem struct {
	ItemID    string          `json:"itemID" db:"item_id"`
	ListID    string          `json:"listID" db:"list_id"`
	UserID    string          `json:"userID" db:"user_id"`
	ProductID string          `json:"productID" db:"product_id"`
	Quantity  decimal.Decimal `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Checked   bool            `json:"checked" db:"checked"`
	AuditFields
}
