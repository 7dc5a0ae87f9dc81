package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PlanningRepository ---
type MockPlanningRepository struct {
	mock.Mock
}

func (m *MockPlanningRepository) FindPlanningListByID(ctx context.Context, listID, userID string) (*domain.PlanningList, error) {
	args := m.Called(ctx, listID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanningList), args.Error(1)
}

func (m *MockPlanningRepository) ListPlanningLists(ctx context.Context, userID string, limit int, cursor *pagination.Cursor) ([]domain.PlanningList, error) {
	args := m.Called(ctx, userID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlanningList), args.Error(1)
}

func (m *MockPlanningRepository) ListAllPlanningLists(ctx context.Context, userID string) ([]domain.PlanningList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlanningList), args.Error(1)
}

func (m *MockPlanningRepository) FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockPlanningRepository) SavePlanningList(ctx context.Context, list domain.PlanningList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockPlanningRepository) UpdatePlanningList(ctx context.Context, list domain.PlanningList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockPlanningRepository) DeletePlanningList(ctx context.Context, listID, userID string) error {
	return m.Called(ctx, listID, userID).Error(0)
}

func (m *MockPlanningRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockPlanningRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockPlanningRepository) SetTransactionPaid(ctx context.Context, transactionID, userID string, paid bool, now time.Time) error {
	return m.Called(ctx, transactionID, userID, paid, now).Error(0)
}

func (m *MockPlanningRepository) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	return m.Called(ctx, transactionID, userID).Error(0)
}

// --- Mock ShoppingRepository ---
type MockShoppingRepository struct {
	mock.Mock
}

func (m *MockShoppingRepository) FindShoppingListByID(ctx context.Context, listID, userID string) (*domain.ShoppingList, error) {
	args := m.Called(ctx, listID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingRepository) ListShoppingLists(ctx context.Context, userID string, limit int, cursor *pagination.Cursor) ([]domain.ShoppingList, error) {
	args := m.Called(ctx, userID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingRepository) ListAllShoppingLists(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingRepository) FindShoppingItemByID(ctx context.Context, itemID, userID string) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}

func (m *MockShoppingRepository) SaveShoppingList(ctx context.Context, list domain.ShoppingList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockShoppingRepository) SaveShoppingListWithItems(ctx context.Context, list domain.ShoppingList, items []domain.ShoppingItem) error {
	return m.Called(ctx, list, items).Error(0)
}

func (m *MockShoppingRepository) UpdateShoppingList(ctx context.Context, list domain.ShoppingList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockShoppingRepository) DeleteShoppingList(ctx context.Context, listID, userID string) error {
	return m.Called(ctx, listID, userID).Error(0)
}

func (m *MockShoppingRepository) SaveShoppingItem(ctx context.Context, item domain.ShoppingItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockShoppingRepository) UpdateShoppingItem(ctx context.Context, item domain.ShoppingItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockShoppingRepository) SetShoppingItemChecked(ctx context.Context, itemID, userID string, checked bool, now time.Time) error {
	return m.Called(ctx, itemID, userID, checked, now).Error(0)
}

func (m *MockShoppingRepository) DeleteShoppingItem(ctx context.Context, itemID, userID string) error {
	return m.Called(ctx, itemID, userID).Error(0)
}

func (m *MockShoppingRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockShoppingRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockShoppingRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID, userID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) UpdateLastPrice(ctx context.Context, productID, userID string, price decimal.Decimal, now time.Time) error {
	return m.Called(ctx, productID, userID, price, now).Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID, userID string) error {
	return m.Called(ctx, productID, userID).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, expiresAt).Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
