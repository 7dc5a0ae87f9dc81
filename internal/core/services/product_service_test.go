package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/core/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	brand := ""
	price := decimal.RequireFromString("6.49")

	tests := []struct {
		name    string
		req     dto.ProductRequest
		wantErr error
	}{
		{name: "valid", req: dto.ProductRequest{Name: "Feijão", Brand: &brand, Category: "graos_leguminosas", Unit: "kg", LastPrice: &price}},
		{name: "unknown category", req: dto.ProductRequest{Name: "Feijão", Category: "alimentos", Unit: "kg"}, wantErr: apperrors.ErrInvalidCategory},
		{name: "unknown unit", req: dto.ProductRequest{Name: "Feijão", Category: "graos", Unit: "saco"}, wantErr: apperrors.ErrValidation},
		{name: "missing name", req: dto.ProductRequest{Category: "graos", Unit: "kg"}, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			svc := services.NewProductService(repo, services.WithClock(fixedClock))
			if tt.wantErr == nil {
				repo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()
			}

			product, err := svc.CreateProduct(ctx, tt.req, "user-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "SaveProduct", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, product.Brand, "empty brand is stored as absent")
			assert.Equal(t, domain.ProductCategory("graos_leguminosas"), product.Category)
			assert.Equal(t, "user-1", product.UserID)
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_DeleteProductInUse(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	svc := services.NewProductService(repo)
	repo.On("DeleteProduct", ctx, "p-1", "user-1").Return(apperrors.ErrConflict).Once()

	err := svc.DeleteProduct(ctx, "p-1", "user-1")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestProductService_ListProductsNeverNil(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	svc := services.NewProductService(repo)
	repo.On("ListProducts", ctx, "user-1").Return(nil, nil).Once()

	products, err := svc.ListProducts(ctx, "user-1")

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	svc := services.NewProductService(repo, services.WithClock(fixedClock))
	existing := &domain.Product{ProductID: "p-1", UserID: "user-1", Name: "Cafe", Category: "cafe", Unit: domain.UnitGram}
	repo.On("FindProductByID", ctx, "p-1", "user-1").Return(existing, nil).Once()
	repo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Café Torrado" && p.UpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	updated, err := svc.UpdateProduct(ctx, "p-1", dto.ProductRequest{Name: "Café Torrado", Category: "cafe", Unit: "g"}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Café Torrado", updated.Name)
	repo.AssertExpectations(t)
}
