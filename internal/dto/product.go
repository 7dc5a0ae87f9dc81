package dto

import (
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductRequest is used to create a catalog entry or replace an existing one.
type ProductRequest struct {
	Name      string           `json:"name" binding:"required,min=1,max=120"`
	Brand     *string          `json:"brand" binding:"omitempty,max=120"`
	Category  string           `json:"category" binding:"required,product_category"`
	Unit      string           `json:"unit" binding:"required,unit_measure"`
	LastPrice *decimal.Decimal `json:"lastPrice"`
}

type ProductResponse struct {
	ProductID     string           `json:"productID"`
	Name          string           `json:"name"`
	Brand         *string          `json:"brand,omitempty"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"categoryLabel"`
	Unit          string           `json:"unit"`
	LastPrice     *decimal.Decimal `json:"lastPrice,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      string(p.Category),
		CategoryLabel: productCategoryLabel(p.Category),
		Unit:          string(p.Unit),
		LastPrice:     p.LastPrice,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
