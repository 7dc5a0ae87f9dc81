package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/utils/pagination"
)

// ShoppingReader defines read operations for shopping lists and their items.
type ShoppingReader interface {
	// FindShoppingListByID retrieves a list with all of its items.
	FindShoppingListByID(ctx context.Context, listID, userID string) (*domain.ShoppingList, error)

	// ListShoppingLists retrieves one page of lists, newest first, each with its items.
	ListShoppingLists(ctx context.Context, userID string, limit int, cursor *pagination.Cursor) ([]domain.ShoppingList, error)

	// ListAllShoppingLists retrieves every list of the user with its items.
	ListAllShoppingLists(ctx context.Context, userID string) ([]domain.ShoppingList, error)

	FindShoppingItemByID(ctx context.Context, itemID, userID string) (*domain.ShoppingItem, error)
}

// ShoppingWriter defines write operations for shopping lists and their items.
type ShoppingWriter interface {
	SaveShoppingList(ctx context.Context, list domain.ShoppingList) error

	// SaveShoppingListWithItems stores a list and its items atomically.
	SaveShoppingListWithItems(ctx context.Context, list domain.ShoppingList, items []domain.ShoppingItem) error

	UpdateShoppingList(ctx context.Context, list domain.ShoppingList) error
	DeleteShoppingList(ctx context.Context, listID, userID string) error

	SaveShoppingItem(ctx context.Context, item domain.ShoppingItem) error
	UpdateShoppingItem(ctx context.Context, item domain.ShoppingItem) error
	SetShoppingItemChecked(ctx context.Context, itemID, userID string, checked bool, now time.Time) error
	DeleteShoppingItem(ctx context.Context, itemID, userID string) error
}

// ShoppingRepositoryFacade combines all shopping-related repository interfaces
type ShoppingRepositoryFacade interface {
	ShoppingReader
	ShoppingWriter
}

// ShoppingRepositoryWithTx extends ShoppingRepositoryFacade with transaction capabilities
type ShoppingRepositoryWithTx interface {
	ShoppingRepositoryFacade
	TransactionManager
}
