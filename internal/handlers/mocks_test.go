package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed JWT for the given user.
func generateTestToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "fluxora-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

// --- Mock PlanningService ---
type MockPlanningService struct {
	mock.Mock
}

func (m *MockPlanningService) GetPlanningList(ctx context.Context, listID string, userID string, params dto.PlanningViewParams) (*domain.PlanningListView, error) {
	args := m.Called(ctx, listID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanningListView), args.Error(1)
}
func (m *MockPlanningService) ListPlanningLists(ctx context.Context, userID string, params dto.ListParams) ([]domain.PlanningListSummary, *string, error) {
	args := m.Called(ctx, userID, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.PlanningListSummary), next, args.Error(2)
}
func (m *MockPlanningService) CreatePlanningList(ctx context.Context, req dto.PlanningListRequest, userID string) (*domain.PlanningList, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanningList), args.Error(1)
}
func (m *MockPlanningService) RenamePlanningList(ctx context.Context, listID string, req dto.PlanningListRequest, userID string) (*domain.PlanningList, error) {
	args := m.Called(ctx, listID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanningList), args.Error(1)
}
func (m *MockPlanningService) DeletePlanningList(ctx context.Context, listID string, userID string) error {
	args := m.Called(ctx, listID, userID)
	return args.Error(0)
}
func (m *MockPlanningService) AddTransaction(ctx context.Context, listID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, listID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockPlanningService) UpdateTransaction(ctx context.Context, listID string, transactionID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, listID, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockPlanningService) SetTransactionPaid(ctx context.Context, listID string, transactionID string, paid bool, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, listID, transactionID, paid, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockPlanningService) DeleteTransaction(ctx context.Context, listID string, transactionID string, userID string) error {
	args := m.Called(ctx, listID, transactionID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.PlanningSvcFacade = (*MockPlanningService)(nil)

// --- Mock ShoppingService ---
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) GetShoppingList(ctx context.Context, listID string, userID string, params dto.ShoppingViewParams) (*domain.ShoppingListView, error) {
	args := m.Called(ctx, listID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingListView), args.Error(1)
}
func (m *MockShoppingService) ListShoppingLists(ctx context.Context, userID string, params dto.ListParams) ([]domain.ShoppingListSummary, *string, error) {
	args := m.Called(ctx, userID, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.ShoppingListSummary), next, args.Error(2)
}
func (m *MockShoppingService) CreateShoppingList(ctx context.Context, req dto.CreateShoppingListRequest, userID string) (*domain.ShoppingList, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}
func (m *MockShoppingService) UpdateShoppingList(ctx context.Context, listID string, req dto.UpdateShoppingListRequest, userID string) (*domain.ShoppingList, error) {
	args := m.Called(ctx, listID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}
func (m *MockShoppingService) DeleteShoppingList(ctx context.Context, listID string, userID string) error {
	args := m.Called(ctx, listID, userID)
	return args.Error(0)
}
func (m *MockShoppingService) DuplicateShoppingList(ctx context.Context, listID string, userID string) (*domain.ShoppingList, error) {
	args := m.Called(ctx, listID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}
func (m *MockShoppingService) AddItem(ctx context.Context, listID string, req dto.ShoppingItemRequest, userID string) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, listID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}
func (m *MockShoppingService) UpdateItem(ctx context.Context, listID string, itemID string, req dto.ShoppingItemRequest, userID string) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, listID, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}
func (m *MockShoppingService) SetItemChecked(ctx context.Context, listID string, itemID string, checked bool, userID string) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, listID, itemID, checked, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}
func (m *MockShoppingService) DeleteItem(ctx context.Context, listID string, itemID string, userID string) error {
	args := m.Called(ctx, listID, itemID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ShoppingSvcFacade = (*MockShoppingService)(nil)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductService) GetProductByID(ctx context.Context, productID string, userID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) CreateProduct(ctx context.Context, req dto.ProductRequest, userID string) (*domain.Product, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, productID string, req dto.ProductRequest, userID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) DeleteProduct(ctx context.Context, productID string, userID string) error {
	args := m.Called(ctx, productID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email, authProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	args := m.Called(ctx, name, email, authProvider, providerUserID, emailVerified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
