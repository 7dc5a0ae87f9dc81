package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry of a planning list.
// Amount is always a non-negative magnitude; the sign comes from Type.
type Transaction struct {
	TransactionID string              `json:"transactionID"`
	ListID        string              `json:"listID"`
	UserID        string              `json:"userID"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"`
	Type          TransactionType     `json:"type"`
	CategoryID    TransactionCategory `json:"categoryID"`
	Date          time.Time           `json:"date"`
	IsPaid        bool                `json:"isPaid"`
	Observation   *string             `json:"observation,omitempty"`
	AuditFields
}

// Validate checks the invariants a transaction must hold before it is stored.
func (t Transaction) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if !t.CategoryID.IsKnown() {
		return fmt.Errorf("%w: transaction category %q", apperrors.ErrInvalidCategory, t.CategoryID)
	}
	if !t.CategoryID.AllowedFor(t.Type) {
		return fmt.Errorf("%w: category %q cannot be used for %s transactions", apperrors.ErrInvalidCategory, t.CategoryID, t.Type)
	}
	return nil
}
