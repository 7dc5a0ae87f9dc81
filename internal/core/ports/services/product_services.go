package services

import (
	"context"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/dto"
)

// ProductReaderSvc defines read operations for the product catalog
type ProductReaderSvc interface {
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	GetProductByID(ctx context.Context, productID string, userID string) (*domain.Product, error)
}

// ProductWriterSvc defines write operations for the product catalog
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, req dto.ProductRequest, userID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.ProductRequest, userID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string, userID string) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}

// DashboardSvc aggregates every list of a user into the dashboard summary.
type DashboardSvc interface {
	GetDashboard(ctx context.Context, userID string) (*domain.DashboardSummary, error)
}
