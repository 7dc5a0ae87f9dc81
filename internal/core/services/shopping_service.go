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
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"github.com/SscSPs/fluxora_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// CopySuffix is appended to the name of a duplicated shopping list.
const CopySuffix = " (Cópia)"

// shoppingService implements the ShoppingSvcFacade interface
type shoppingService struct {
	BaseService
	shoppingRepo portsrepo.ShoppingRepositoryWithTx
	productRepo  portsrepo.ProductRepositoryFacade
}

// NewShoppingService creates a new shopping service. The product repository resolves
// the catalog of a list and records the last price paid for a product.
func NewShoppingService(repo portsrepo.ShoppingRepositoryWithTx, productRepo portsrepo.ProductRepositoryFacade, options ...ServiceOption) portssvc.ShoppingSvcFacade {
	svc := &shoppingService{shoppingRepo: repo, productRepo: productRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.ShoppingSvcFacade = (*shoppingService)(nil)

func (s *shoppingService) GetShoppingList(ctx context.Context, listID string, userID string, params dto.ShoppingViewParams) (*domain.ShoppingListView, error) {
	list, err := s.shoppingRepo.FindShoppingListByID(ctx, listID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shopping list", slog.String("list_id", listID))
		}
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	products, err := s.productRepo.ListProducts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for shopping list", slog.String("list_id", listID))
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	sortField := aggregation.ShoppingSortField(params.SortField)
	if sortField == "" {
		sortField = aggregation.SortByName
	}
	partition := aggregation.FilterShoppingItems(list.Items, products, aggregation.ShoppingFilter{
		SearchTerm:    params.Search,
		CategoryID:    params.Category,
		PurchasedOnly: params.PurchasedOnly,
		SortField:     sortField,
		SortOrder:     aggregation.SortOrder(params.SortOrder),
	})

	return &domain.ShoppingListView{
		List:      *list,
		Products:  referencedProducts(list.Items, products),
		Totals:    aggregation.ComputeShoppingTotals(list.Items, list.Budget),
		ToBuy:     partition.ToBuy,
		Purchased: partition.Purchased,
	}, nil
}

// referencedProducts keeps the catalog entries used by at least one item, in catalog order.
func referencedProducts(items []domain.ShoppingItem, products []domain.Product) []domain.Product {
	used := make(map[string]struct{}, len(items))
	for _, item := range items {
		used[item.ProductID] = struct{}{}
	}
	return aggregation.Filter(products, func(p domain.Product) bool {
		_, ok := used[p.ProductID]
		return ok
	})
}

func (s *shoppingService) ListShoppingLists(ctx context.Context, userID string, params dto.ListParams) ([]domain.ShoppingListSummary, *string, error) {
	if params.Search != "" {
		lists, err := s.shoppingRepo.ListAllShoppingLists(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list shopping lists", slog.String("user_id", userID))
			return nil, nil, fmt.Errorf("failed to list shopping lists: %w", err)
		}
		matched := aggregation.FilterByName(lists, params.Search, func(l domain.ShoppingList) string { return l.Name })
		return summarizeShoppingLists(matched), nil, nil
	}

	cursor, err := pagination.DecodeToken(params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit := pagination.NormalizeLimit(params.Limit)

	lists, err := s.shoppingRepo.ListShoppingLists(ctx, userID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shopping lists", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}

	var nextToken *string
	if len(lists) > limit {
		lists = lists[:limit]
		last := lists[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ListID)
		nextToken = &token
	}
	return summarizeShoppingLists(lists), nextToken, nil
}

func summarizeShoppingLists(lists []domain.ShoppingList) []domain.ShoppingListSummary {
	summaries := make([]domain.ShoppingListSummary, len(lists))
	for i, l := range lists {
		summaries[i] = domain.ShoppingListSummary{List: l, Totals: aggregation.ComputeShoppingTotals(l.Items, l.Budget)}
	}
	return summaries
}

func (s *shoppingService) CreateShoppingList(ctx context.Context, req dto.CreateShoppingListRequest, userID string) (*domain.ShoppingList, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: list name is required", apperrors.ErrValidation)
	}
	if req.Budget.IsNegative() {
		return nil, fmt.Errorf("%w: budget must not be negative", apperrors.ErrValidation)
	}
	now := s.Now()
	list := domain.ShoppingList{
		ListID:      uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Budget:      req.Budget,
		Items:       []domain.ShoppingItem{},
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.shoppingRepo.SaveShoppingList(ctx, list); err != nil {
		s.LogError(ctx, err, "Failed to save shopping list", slog.String("list_id", list.ListID))
		return nil, fmt.Errorf("failed to create shopping list: %w", err)
	}
	s.LogInfo(ctx, "Shopping list created", slog.String("list_id", list.ListID))
	return &list, nil
}

func (s *shoppingService) UpdateShoppingList(ctx context.Context, listID string, req dto.UpdateShoppingListRequest, userID string) (*domain.ShoppingList, error) {
	list, err := s.shoppingRepo.FindShoppingListByID(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shopping list: %w", err)
	}

	updated := false
	if req.Name != nil && *req.Name != list.Name {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: list name is required", apperrors.ErrValidation)
		}
		list.Name = *req.Name
		updated = true
	}
	if req.Budget != nil && !req.Budget.Equal(list.Budget) {
		if req.Budget.IsNegative() {
			return nil, fmt.Errorf("%w: budget must not be negative", apperrors.ErrValidation)
		}
		list.Budget = *req.Budget
		updated = true
	}
	if !updated {
		return list, nil
	}

	list.UpdatedAt = s.Now()
	if err := s.shoppingRepo.UpdateShoppingList(ctx, *list); err != nil {
		s.LogError(ctx, err, "Failed to update shopping list", slog.String("list_id", listID))
		return nil, fmt.Errorf("failed to update shopping list: %w", err)
	}
	return list, nil
}

func (s *shoppingService) DeleteShoppingList(ctx context.Context, listID string, userID string) error {
	if err := s.shoppingRepo.DeleteShoppingList(ctx, listID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete shopping list", slog.String("list_id", listID))
		}
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	s.LogInfo(ctx, "Shopping list deleted", slog.String("list_id", listID))
	return nil
}

func (s *shoppingService) DuplicateShoppingList(ctx context.Context, listID string, userID string) (*domain.ShoppingList, error) {
	source, err := s.shoppingRepo.FindShoppingListByID(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shopping list: %w", err)
	}

	now := s.Now()
	copied := domain.ShoppingList{
		ListID:      uuid.NewString(),
		UserID:      userID,
		Name:        source.Name + CopySuffix,
		Budget:      source.Budget,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	copied.Items = make([]domain.ShoppingItem, len(source.Items))
	for i, item := range source.Items {
		copied.Items[i] = domain.ShoppingItem{
			ItemID:      uuid.NewString(),
			ListID:      copied.ListID,
			UserID:      userID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Checked:     false,
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		}
	}

	if err := s.shoppingRepo.SaveShoppingListWithItems(ctx, copied, copied.Items); err != nil {
		s.LogError(ctx, err, "Failed to duplicate shopping list", slog.String("source_list_id", listID))
		return nil, fmt.Errorf("failed to duplicate shopping list: %w", err)
	}
	s.LogInfo(ctx, "Shopping list duplicated",
		slog.String("source_list_id", listID),
		slog.String("list_id", copied.ListID),
		slog.Int("items", len(copied.Items)))
	return &copied, nil
}

func (s *shoppingService) AddItem(ctx context.Context, listID string, req dto.ShoppingItemRequest, userID string) (*domain.ShoppingItem, error) {
	if _, err := s.shoppingRepo.FindShoppingListByID(ctx, listID, userID); err != nil {
		return nil, fmt.Errorf("failed to find shopping list: %w", err)
	}

	now := s.Now()
	item := domain.ShoppingItem{
		ItemID:      uuid.NewString(),
		ListID:      listID,
		UserID:      userID,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Price:       req.Price,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.validateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := s.shoppingRepo.SaveShoppingItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save shopping item", slog.String("list_id", listID))
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	s.recordLastPrice(ctx, item)
	return &item, nil
}

func (s *shoppingService) UpdateItem(ctx context.Context, listID string, itemID string, req dto.ShoppingItemRequest, userID string) (*domain.ShoppingItem, error) {
	item, err := s.findListItem(ctx, listID, itemID, userID)
	if err != nil {
		return nil, err
	}
	item.ProductID = req.ProductID
	item.Quantity = req.Quantity
	item.Price = req.Price
	if err := s.validateItem(ctx, *item); err != nil {
		return nil, err
	}
	item.UpdatedAt = s.Now()

	if err := s.shoppingRepo.UpdateShoppingItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update shopping item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	s.recordLastPrice(ctx, *item)
	return item, nil
}

func (s *shoppingService) SetItemChecked(ctx context.Context, listID string, itemID string, checked bool, userID string) (*domain.ShoppingItem, error) {
	item, err := s.findListItem(ctx, listID, itemID, userID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	if err := s.shoppingRepo.SetShoppingItemChecked(ctx, itemID, userID, checked, now); err != nil {
		s.LogError(ctx, err, "Failed to set item checked", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to set item checked: %w", err)
	}
	item.Checked = checked
	item.UpdatedAt = now
	return item, nil
}

func (s *shoppingService) DeleteItem(ctx context.Context, listID string, itemID string, userID string) error {
	if _, err := s.findListItem(ctx, listID, itemID, userID); err != nil {
		return err
	}
	if err := s.shoppingRepo.DeleteShoppingItem(ctx, itemID, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete shopping item", slog.String("item_id", itemID))
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (s *shoppingService) findListItem(ctx context.Context, listID, itemID, userID string) (*domain.ShoppingItem, error) {
	item, err := s.shoppingRepo.FindShoppingItemByID(ctx, itemID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	if item.ListID != listID {
		return nil, fmt.Errorf("item %s not found in list %s: %w", itemID, listID, apperrors.ErrNotFound)
	}
	return item, nil
}

// validateItem checks the item invariants and that its product is in the user's catalog.
func (s *shoppingService) validateItem(ctx context.Context, item domain.ShoppingItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, err := s.productRepo.FindProductByID(ctx, item.ProductID, item.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: product %s does not exist", apperrors.ErrValidation, item.ProductID)
		}
		return fmt.Errorf("failed to find product: %w", err)
	}
	return nil
}

// recordLastPrice keeps the catalog price in step with the latest item. A failure here
// does not undo the item write.
func (s *shoppingService) recordLastPrice(ctx context.Context, item domain.ShoppingItem) {
	if !item.Price.IsPositive() {
		return
	}
	if err := s.productRepo.UpdateLastPrice(ctx, item.ProductID, item.UserID, item.Price, item.UpdatedAt); err != nil {
		s.LogError(ctx, err, "Failed to record product last price",
			slog.String("product_id", item.ProductID),
			slog.String("item_id", item.ItemID))
	}
}
