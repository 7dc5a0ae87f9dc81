package dto

import (
	"testing"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestResponseCategoryLabels(t *testing.T) {
	known := ToTransactionResponse(&domain.Transaction{CategoryID: domain.CategorySalario})
	assert.Equal(t, "Salário", known.CategoryLabel)

	legacy := ToTransactionResponse(&domain.Transaction{CategoryID: "gasolina"})
	assert.Equal(t, "gasolina", legacy.CategoryLabel)
	assert.Equal(t, "gasolina", legacy.CategoryID)

	product := ToProductResponse(&domain.Product{Category: "laticinios_leites", Unit: domain.UnitLiter})
	assert.Equal(t, "Leites", product.CategoryLabel)

	retired := ToProductResponse(&domain.Product{Category: "alimentos"})
	assert.Equal(t, "alimentos", retired.CategoryLabel)
}
