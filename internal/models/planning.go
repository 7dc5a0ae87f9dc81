package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PlanningList is a row of the planning_lists table.
type PlanningList struct {
	ListID string `json:"listID" db:"list_id"`
	UserID string `json:"userID" db:"user_id"`
	Name   string `json:"name" db:"name"`
	AuditFields
}

// Transaction is a row of the planning_transactions table.
// Amount is stored as a non-negative numeric; transaction_type carries the sign.
type Transaction struct {
	TransactionID   string          `json:"transactionID" db:"transaction_id"`
	ListID          string          `json:"listID" db:"list_id"`
	UserID          string          `json:"userID" db:"user_id"`
	Description     string          `json:"description" db:"description"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	TransactionType string          `json:"transactionType" db:"transaction_type"`
	CategoryID      string          `json:"categoryID" db:"category_id"`
	TransactionDate time.Time       `json:"date" db:"transaction_date"`
	IsPaid          bool            `json:"isPaid" db:"is_paid"`
	Observation     sql.NullString  `json:"observation" db:"observation"`
	AuditFields
}
