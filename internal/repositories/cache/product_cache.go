package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const (
	ckProductCatalog = "products_user_%s"

	DefaultCleanupInterval = 10 * time.Minute
)

// ProductCache is a read-through cache over a product repository. The whole catalog of a
// user is cached under one key and dropped on every write made through the cache.
// A per-user generation counter keeps a read that raced with a write from storing its result.
type ProductCache struct {
	next  portsrepo.ProductRepositoryFacade
	store *gocache.Cache

	mu          sync.Mutex
	generations map[string]uint64
}

var _ portsrepo.ProductRepositoryFacade = (*ProductCache)(nil)

// NewProductCache wraps next. A non-positive ttl disables caching and returns next unchanged.
func NewProductCache(next portsrepo.ProductRepositoryFacade, ttl time.Duration) portsrepo.ProductRepositoryFacade {
	if ttl <= 0 {
		return next
	}
	return &ProductCache{
		next:        next,
		store:       gocache.New(ttl, DefaultCleanupInterval),
		generations: make(map[string]uint64),
	}
}

func catalogKey(userID string) string {
	return fmt.Sprintf(ckProductCatalog, userID)
}

func (c *ProductCache) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	if cached, found := c.store.Get(catalogKey(userID)); found {
		return cloneProducts(cached.([]domain.Product)), nil
	}

	gen := c.generation(userID)
	products, err := c.next.ListProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.generations[userID] == gen {
		c.store.Set(catalogKey(userID), cloneProducts(products), gocache.DefaultExpiration)
	}
	c.mu.Unlock()
	return products, nil
}

// FindProductByID answers from a cached catalog when one is present.
func (c *ProductCache) FindProductByID(ctx context.Context, productID, userID string) (*domain.Product, error) {
	if cached, found := c.store.Get(catalogKey(userID)); found {
		for _, p := range cached.([]domain.Product) {
			if p.ProductID == productID {
				clone := cloneProduct(p)
				return &clone, nil
			}
		}
	}
	return c.next.FindProductByID(ctx, productID, userID)
}

func (c *ProductCache) SaveProduct(ctx context.Context, product domain.Product) error {
	defer c.Invalidate(product.UserID)
	return c.next.SaveProduct(ctx, product)
}

func (c *ProductCache) UpdateProduct(ctx context.Context, product domain.Product) error {
	defer c.Invalidate(product.UserID)
	return c.next.UpdateProduct(ctx, product)
}

func (c *ProductCache) UpdateLastPrice(ctx context.Context, productID, userID string, price decimal.Decimal, now time.Time) error {
	defer c.Invalidate(userID)
	return c.next.UpdateLastPrice(ctx, productID, userID, price, now)
}

func (c *ProductCache) DeleteProduct(ctx context.Context, productID, userID string) error {
	defer c.Invalidate(userID)
	return c.next.DeleteProduct(ctx, productID, userID)
}

// Invalidate drops the cached catalog of a user and discards catalogs still being loaded.
func (c *ProductCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[userID]++
	c.store.Delete(catalogKey(userID))
}

func (c *ProductCache) generation(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID]
}

func cloneProducts(src []domain.Product) []domain.Product {
	dst := make([]domain.Product, len(src))
	for i, p := range src {
		dst[i] = cloneProduct(p)
	}
	return dst
}

// cloneProduct copies the pointer fields so callers cannot mutate cached entries.
func cloneProduct(p domain.Product) domain.Product {
	if p.Brand != nil {
		b := *p.Brand
		p.Brand = &b
	}
	if p.LastPrice != nil {
		lp := *p.LastPrice
		p.LastPrice = &lp
	}
	return p
}
