package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	"github.com/SscSPs/fluxora_app/internal/models"
	"github.com/SscSPs/fluxora_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const selectProductFields = `product_id, user_id, name, brand, category, unit, last_price, created_at, updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.UserID,
		&m.Name,
		&m.Brand,
		&m.Category,
		&m.Unit,
		&m.LastPrice,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	query := `SELECT ` + selectProductFields + ` FROM products WHERE user_id = $1 ORDER BY name ASC, product_id ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID, userID string) (*domain.Product, error) {
	query := `SELECT ` + selectProductFields + ` FROM products WHERE product_id = $1 AND user_id = $2;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID, userID))
	if err != nil {
		return nil, translateError(err, "product "+productID)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, user_id, name, brand, category, unit, last_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.UserID, m.Name, m.Brand, m.Category, m.Unit, m.LastPrice, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return translateError(err, "product "+m.ProductID)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $1, brand = $2, category = $3, unit = $4, last_price = $5, updated_at = $6
		WHERE product_id = $7 AND user_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Brand, m.Category, m.Unit, m.LastPrice, m.UpdatedAt, m.ProductID, m.UserID)
	if err != nil {
		return translateError(err, "product "+m.ProductID)
	}
	return expectOneRow(tag, "product "+m.ProductID)
}

func (r *PgxProductRepository) UpdateLastPrice(ctx context.Context, productID, userID string, price decimal.Decimal, now time.Time) error {
	query := `UPDATE products SET last_price = $1, updated_at = $2 WHERE product_id = $3 AND user_id = $4;`
	tag, err := r.Pool.Exec(ctx, query, price, now, productID, userID)
	if err != nil {
		return translateError(err, "product "+productID)
	}
	return expectOneRow(tag, "product "+productID)
}

// DeleteProduct relies on the RESTRICT foreign key from shopping_items; a referenced
// product surfaces as apperrors.ErrConflict.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1 AND user_id = $2;`, productID, userID)
	if err != nil {
		return translateError(err, "product "+productID)
	}
	return expectOneRow(tag, "product "+productID)
}
