package domain

import (
	"fmt"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Product is a reusable catalog entry referenced by shopping items.
type Product struct {
	ProductID string           `json:"productID"`
	UserID    string           `json:"userID"`
	Name      string           `json:"name"`
	Brand     *string          `json:"brand,omitempty"`
	Category  ProductCategory  `json:"category"`
	Unit      Unit             `json:"unit"`
	LastPrice *decimal.Decimal `json:"lastPrice,omitempty"`
	AuditFields
}

func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if _, err := ParseProductCategory(string(p.Category)); err != nil {
		return err
	}
	if _, err := ParseUnit(string(p.Unit)); err != nil {
		return err
	}
	if p.LastPrice != nil && p.LastPrice.IsNegative() {
		return fmt.Errorf("%w: last price must not be negative", apperrors.ErrValidation)
	}
	return nil
}
