package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	"github.com/SscSPs/fluxora_app/internal/models"
	"github.com/SscSPs/fluxora_app/internal/utils/mapping"
	"github.com/SscSPs/fluxora_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShoppingRepository struct {
	BaseRepository
}

// newPgxShoppingRepository creates a new repository for shopping lists and their items.
func newPgxShoppingRepository(pool *pgxpool.Pool) portsrepo.ShoppingRepositoryWithTx {
	return &PgxShoppingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShoppingRepository implements portsrepo.ShoppingRepositoryWithTx
var _ portsrepo.ShoppingRepositoryWithTx = (*PgxShoppingRepository)(nil)

const (
	selectShoppingListFields = `list_id, user_id, name, budget, created_at, updated_at`

	selectShoppingItemFields = `item_id, list_id, user_id, product_id, quantity, price, checked, created_at, updated_at`

	insertShoppingListQuery = `
		INSERT INTO shopping_lists (list_id, user_id, name, budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	insertShoppingItemQuery = `
		INSERT INTO shopping_items (item_id, list_id, user_id, product_id, quantity, price, checked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
)

func scanShoppingList(row pgx.Row) (models.ShoppingList, error) {
	var m models.ShoppingList
	err := row.Scan(&m.ListID, &m.UserID, &m.Name, &m.Budget, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func scanShoppingItem(row pgx.Row) (models.ShoppingItem, error) {
	var m models.ShoppingItem
	err := row.Scan(
		&m.ItemID,
		&m.ListID,
		&m.UserID,
		&m.ProductID,
		&m.Quantity,
		&m.Price,
		&m.Checked,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxShoppingRepository) FindShoppingListByID(ctx context.Context, listID, userID string) (*domain.ShoppingList, error) {
	query := `SELECT ` + selectShoppingListFields + ` FROM shopping_lists WHERE list_id = $1 AND user_id = $2;`
	m, err := scanShoppingList(r.Pool.QueryRow(ctx, query, listID, userID))
	if err != nil {
		return nil, translateError(err, "shopping list "+listID)
	}

	list := mapping.ToDomainShoppingList(m)
	byList, err := r.itemsByList(ctx, []string{listID})
	if err != nil {
		return nil, err
	}
	if items, ok := byList[listID]; ok {
		list.Items = items
	}
	return &list, nil
}

func (r *PgxShoppingRepository) ListShoppingLists(ctx context.Context, userID string, limit int, cursor *pagination.Cursor) ([]domain.ShoppingList, error) {
	args := []any{userID}
	query := `SELECT ` + selectShoppingListFields + ` FROM shopping_lists WHERE user_id = $1`
	if cursor != nil {
		query += ` AND (created_at, list_id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY created_at DESC, list_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit)

	return r.queryLists(ctx, query, args...)
}

func (r *PgxShoppingRepository) ListAllShoppingLists(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	query := `SELECT ` + selectShoppingListFields + ` FROM shopping_lists WHERE user_id = $1 ORDER BY created_at DESC, list_id DESC;`
	return r.queryLists(ctx, query, userID)
}

func (r *PgxShoppingRepository) queryLists(ctx context.Context, query string, args ...any) ([]domain.ShoppingList, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.ShoppingList{}
	ids := []string{}
	for rows.Next() {
		m, err := scanShoppingList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopping list row: %w", err)
		}
		lists = append(lists, mapping.ToDomainShoppingList(m))
		ids = append(ids, m.ListID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shopping list rows: %w", err)
	}
	if len(ids) == 0 {
		return lists, nil
	}

	byList, err := r.itemsByList(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if items, ok := byList[lists[i].ListID]; ok {
			lists[i].Items = items
		}
	}
	return lists, nil
}

func (r *PgxShoppingRepository) itemsByList(ctx context.Context, listIDs []string) (map[string][]domain.ShoppingItem, error) {
	query := `
		SELECT ` + selectShoppingItemFields + `
		FROM shopping_items
		WHERE list_id = ANY($1::uuid[])
		ORDER BY created_at DESC, item_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, listIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping items: %w", err)
	}
	defer rows.Close()

	byList := make(map[string][]domain.ShoppingItem, len(listIDs))
	for rows.Next() {
		m, err := scanShoppingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopping item row: %w", err)
		}
		byList[m.ListID] = append(byList[m.ListID], mapping.ToDomainShoppingItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shopping item rows: %w", err)
	}
	return byList, nil
}

func (r *PgxShoppingRepository) FindShoppingItemByID(ctx context.Context, itemID, userID string) (*domain.ShoppingItem, error) {
	query := `SELECT ` + selectShoppingItemFields + ` FROM shopping_items WHERE item_id = $1 AND user_id = $2;`
	m, err := scanShoppingItem(r.Pool.QueryRow(ctx, query, itemID, userID))
	if err != nil {
		return nil, translateError(err, "shopping item "+itemID)
	}
	item := mapping.ToDomainShoppingItem(m)
	return &item, nil
}

func (r *PgxShoppingRepository) SaveShoppingList(ctx context.Context, list domain.ShoppingList) error {
	return insertShoppingList(ctx, r.Pool, mapping.ToModelShoppingList(list))
}

// SaveShoppingListWithItems inserts a list and all of its items in one database transaction.
func (r *PgxShoppingRepository) SaveShoppingListWithItems(ctx context.Context, list domain.ShoppingList, items []domain.ShoppingItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertShoppingList(ctx, tx, mapping.ToModelShoppingList(list)); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		m := mapping.ToModelShoppingItem(item)
		batch.Queue(insertShoppingItemQuery,
			m.ItemID, m.ListID, m.UserID, m.ProductID, m.Quantity, m.Price, m.Checked, m.CreatedAt, m.UpdatedAt)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return translateError(err, "shopping items of list "+list.ListID)
		}
	}

	return r.Commit(ctx, tx)
}

func insertShoppingList(ctx context.Context, q querier, m models.ShoppingList) error {
	if _, err := q.Exec(ctx, insertShoppingListQuery, m.ListID, m.UserID, m.Name, m.Budget, m.CreatedAt, m.UpdatedAt); err != nil {
		return translateError(err, "shopping list "+m.ListID)
	}
	return nil
}

func (r *PgxShoppingRepository) UpdateShoppingList(ctx context.Context, list domain.ShoppingList) error {
	m := mapping.ToModelShoppingList(list)
	query := `UPDATE shopping_lists SET name = $1, budget = $2, updated_at = $3 WHERE list_id = $4 AND user_id = $5;`
	tag, err := r.Pool.Exec(ctx, query, m.Name, m.Budget, m.UpdatedAt, m.ListID, m.UserID)
	if err != nil {
		return translateError(err, "shopping list "+m.ListID)
	}
	return expectOneRow(tag, "shopping list "+m.ListID)
}

func (r *PgxShoppingRepository) DeleteShoppingList(ctx context.Context, listID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shopping_lists WHERE list_id = $1 AND user_id = $2;`, listID, userID)
	if err != nil {
		return translateError(err, "shopping list "+listID)
	}
	return expectOneRow(tag, "shopping list "+listID)
}

func (r *PgxShoppingRepository) SaveShoppingItem(ctx context.Context, item domain.ShoppingItem) error {
	m := mapping.ToModelShoppingItem(item)
	_, err := r.Pool.Exec(ctx, insertShoppingItemQuery,
		m.ItemID, m.ListID, m.UserID, m.ProductID, m.Quantity, m.Price, m.Checked, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return translateError(err, "shopping item "+m.ItemID)
	}
	return nil
}

func (r *PgxShoppingRepository) UpdateShoppingItem(ctx context.Context, item domain.ShoppingItem) error {
	m := mapping.ToModelShoppingItem(item)
	query := `
		UPDATE shopping_items
		SET product_id = $1, quantity = $2, price = $3, checked = $4, updated_at = $5
		WHERE item_id = $6 AND user_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ProductID, m.Quantity, m.Price, m.Checked, m.UpdatedAt, m.ItemID, m.UserID)
	if err != nil {
		return translateError(err, "shopping item "+m.ItemID)
	}
	return expectOneRow(tag, "shopping item "+m.ItemID)
}

func (r *PgxShoppingRepository) SetShoppingItemChecked(ctx context.Context, itemID, userID string, checked bool, now time.Time) error {
	query := `UPDATE shopping_items SET checked = $1, updated_at = $2 WHERE item_id = $3 AND user_id = $4;`
	tag, err := r.Pool.Exec(ctx, query, checked, now, itemID, userID)
	if err != nil {
		return translateError(err, "shopping item "+itemID)
	}
	return expectOneRow(tag, "shopping item "+itemID)
}

func (r *PgxShoppingRepository) DeleteShoppingItem(ctx context.Context, itemID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shopping_items WHERE item_id = $1 AND user_id = $2;`, itemID, userID)
	if err != nil {
		return translateError(err, "shopping item "+itemID)
	}
	return expectOneRow(tag, "shopping item "+itemID)
}
