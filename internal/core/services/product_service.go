package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/google/uuid"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

func NewProductService(repo portsrepo.ProductRepositoryFacade, options ...ServiceOption) portssvc.ProductSvcFacade {
	svc := &productService{productRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product", slog.String("product_id", productID))
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.ProductRequest, userID string) (*domain.Product, error) {
	now := s.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		UserID:      userID,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	applyProductRequest(&product, req)
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.ProductRequest, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	applyProductRequest(product, req)
	if err := product.Validate(); err != nil {
		return nil, err
	}
	product.UpdatedAt = s.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string, userID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}

func applyProductRequest(p *domain.Product, req dto.ProductRequest) {
	p.Name = req.Name
	p.Brand = req.Brand
	if p.Brand != nil && *p.Brand == "" {
		p.Brand = nil
	}
	p.Category = domain.ProductCategory(req.Category)
	p.Unit = domain.Unit(req.Unit)
	p.LastPrice = req.LastPrice
}
