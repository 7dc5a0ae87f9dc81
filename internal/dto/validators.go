package dto

import (
	"fmt"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the closed-enumeration validation tags used by request bindings.
func RegisterValidators(v *validator.Validate) error {
	validations := map[string]validator.Func{
		"transaction_category": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseTransactionCategory(fl.Field().String())
			return err == nil
		},
		"product_category": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseProductCategory(fl.Field().String())
			return err == nil
		},
		"unit_measure": func(fl validator.FieldLevel) bool {
			_, err := domain.ParseUnit(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}
