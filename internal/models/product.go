package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Product is a row of the products table.
type Product struct {
	ProductID string              `json:"productID" db:"product_id"`
	UserID    string              `json:"userID" db:"user_id"`
	Name      string              `json:"name" db:"name"`
	Brand     sql.NullString      `json:"brand" db:"brand"`
	Category  string              `json:"category" db:"category"`
	Unit      string              `json:"unit" db:"unit"`
	LastPrice decimal.NullDecimal `json:"lastPrice" db:"last_price"`
	AuditFields
}
