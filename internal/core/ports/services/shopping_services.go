package services

import (
	"context"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/dto"
)

// ShoppingReaderSvc defines read operations for shopping lists
type ShoppingReaderSvc interface {
	// GetShoppingList returns the list, the products its items reference, its totals
	// and the items matching params split into to-buy and purchased.
	GetShoppingList(ctx context.Context, listID string, userID string, params dto.ShoppingViewParams) (*domain.ShoppingListView, error)

	// ListShoppingLists retrieves a page of lists with their totals, or every list whose name matches params.Search.
	ListShoppingLists(ctx context.Context, userID string, params dto.ListParams) ([]domain.ShoppingListSummary, *string, error)
}

// ShoppingWriterSvc defines write operations for shopping lists
type ShoppingWriterSvc interface {
	CreateShoppingList(ctx context.Context, req dto.CreateShoppingListRequest, userID string) (*domain.ShoppingList, error)
	UpdateShoppingList(ctx context.Context, listID string, req dto.UpdateShoppingListRequest, userID string) (*domain.ShoppingList, error)
	DeleteShoppingList(ctx context.Context, listID string, userID string) error

	// DuplicateShoppingList copies a list and its items; the copy starts with every item unchecked.
	DuplicateShoppingList(ctx context.Context, listID string, userID string) (*domain.ShoppingList, error)
}

// ShoppingItemWriterSvc defines write operations for the items of a shopping list
type ShoppingItemWriterSvc interface {
	AddItem(ctx context.Context, listID string, req dto.ShoppingItemRequest, userID string) (*domain.ShoppingItem, error)
	UpdateItem(ctx context.Context, listID string, itemID string, req dto.ShoppingItemRequest, userID string) (*domain.ShoppingItem, error)
	SetItemChecked(ctx context.Context, listID string, itemID string, checked bool, userID string) (*domain.ShoppingItem, error)
	DeleteItem(ctx context.Context, listID string, itemID string, userID string) error
}

// ShoppingSvcFacade combines all shopping-related service interfaces
type ShoppingSvcFacade interface {
	ShoppingReaderSvc
	ShoppingWriterSvc
	ShoppingItemWriterSvc
}
