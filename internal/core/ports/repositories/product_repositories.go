package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for the product catalog
type ProductReader interface {
	// ListProducts retrieves the whole catalog of a user ordered by name.
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)

	FindProductByID(ctx context.Context, productID, userID string) (*domain.Product, error)
}

// ProductWriter defines write operations for the product catalog
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error

	// UpdateLastPrice records the most recent price paid for a product.
	UpdateLastPrice(ctx context.Context, productID, userID string, price decimal.Decimal, now time.Time) error

	// DeleteProduct fails with apperrors.ErrConflict while shopping items still reference the product.
	DeleteProduct(ctx context.Context, productID, userID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
