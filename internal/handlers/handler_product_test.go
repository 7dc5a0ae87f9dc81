package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/SscSPs/fluxora_app/internal/handlers"
	"github.com/SscSPs/fluxora_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// ProductHandlerTestSuite covers the catalog, category and dashboard routes.
type ProductHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockProductService   *MockProductService
	mockDashboardService *MockDashboardService
	userID               string
	token                string
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterBindingValidators())

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockProductService = new(MockProductService)
	suite.mockDashboardService = new(MockDashboardService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterProductRoutes(v1, suite.mockProductService)
	handlers.RegisterDashboardRoutes(v1, suite.mockDashboardService)

	suite.userID = uuid.NewString()
	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *ProductHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	raw := []byte(nil)
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) TestListProducts_Success() {
	brand := "Camil"
	price := decimal.RequireFromString("7.49")
	products := []domain.Product{
		{ProductID: uuid.NewString(), Name: "Arroz", Brand: &brand, Category: "graos_cereais", Unit: domain.UnitKilogram, LastPrice: &price},
		{ProductID: uuid.NewString(), Name: "Feijão", Category: "graos_leguminosas", Unit: domain.UnitKilogram},
	}
	suite.mockProductService.On("ListProducts", mock.Anything, suite.userID).Return(products, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ProductResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Require().NotNil(resp[0].LastPrice)
	suite.True(price.Equal(*resp[0].LastPrice))
	suite.Nil(resp[1].Brand)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_UnknownUnit() {
	body := map[string]any{"name": "Leite", "category": "laticinios_leites", "unit": "caixa"}

	w := suite.do(http.MethodPost, "/api/v1/products", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "CreateProduct")
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_Success() {
	body := map[string]any{"name": "Leite", "category": "laticinios_leites", "unit": "l"}
	created := &domain.Product{ProductID: uuid.NewString(), Name: "Leite", Category: "laticinios_leites", Unit: domain.UnitLiter}
	suite.mockProductService.On("CreateProduct", mock.Anything,
		mock.MatchedBy(func(r dto.ProductRequest) bool { return r.Name == "Leite" && r.Unit == "l" }),
		suite.userID,
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProductResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Leites", resp.CategoryLabel)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestDeleteProduct_InUse() {
	productID := uuid.NewString()
	suite.mockProductService.On("DeleteProduct", mock.Anything, productID, suite.userID).
		Return(fmt.Errorf("product is referenced by shopping items: %w", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/products/"+productID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestListCategories() {
	w := suite.do(http.MethodGet, "/api/v1/categories", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Transaction)
	suite.NotEmpty(resp.Product)
	suite.Contains(resp.Units, "kg")
}

func (suite *ProductHandlerTestSuite) TestGetDashboard_Success() {
	summary := &domain.DashboardSummary{
		TotalIncome:    decimal.NewFromInt(5000),
		TotalExpense:   decimal.NewFromInt(1234),
		TotalBalance:   decimal.NewFromInt(3766),
		TotalBudget:    decimal.NewFromInt(800),
		TotalSpent:     decimal.NewFromInt(300),
		TotalRemaining: decimal.NewFromInt(500),
	}
	suite.mockDashboardService.On("GetDashboard", mock.Anything, suite.userID).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(3766).Equal(resp.TotalBalance))
	suite.NotEmpty(resp.BalanceDisplay)
	suite.mockDashboardService.AssertExpectations(suite.T())
}

func TestProductHandler(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
