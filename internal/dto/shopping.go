package dto

import (
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShoppingListRequest defines the data needed to create a shopping list.
type CreateShoppingListRequest struct {
	Name   string          `json:"name" binding:"required,min=1,max=120"`
	Budget decimal.Decimal `json:"budget"`
}

// UpdateShoppingListRequest defines the data allowed for updating a shopping list.
type UpdateShoppingListRequest struct {
	Name   *string          `json:"name" binding:"omitempty,min=1,max=120"`
	Budget *decimal.Decimal `json:"budget"`
}

// ShoppingItemRequest is used to add an item or replace an existing one.
type ShoppingItemRequest struct {
	ProductID string          `json:"productID" binding:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SetCheckedRequest toggles the checked flag of an item.
type SetCheckedRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// ShoppingViewParams defines the query parameters of the shopping list detail endpoint.
type ShoppingViewParams struct {
	Search        string `form:"search" binding:"max=120"`
	Category      string `form:"category" binding:"omitempty,max=64"`
	PurchasedOnly bool   `form:"purchasedOnly"`
	SortField     string `form:"sortField,default=name" binding:"oneof=name price quantity category"`
	SortOrder     string `form:"sortOrder,default=asc" binding:"oneof=asc desc"`
}

type ShoppingItemResponse struct {
	ItemID    string          `json:"itemID"`
	ListID    string          `json:"listID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	Checked   bool            `json:"checked"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ShoppingTotalsResponse struct {
	Budget        decimal.Decimal `json:"budget"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percentage    decimal.Decimal `json:"percentage"`
	ProgressWidth decimal.Decimal `json:"progressWidth"`
	OverBudget    bool            `json:"overBudget"`
}

type ShoppingListResponse struct {
	ListID    string                 `json:"listID"`
	Name      string                 `json:"name"`
	Budget    decimal.Decimal        `json:"budget"`
	ItemCount int                    `json:"itemCount"`
	Totals    ShoppingTotalsResponse `json:"totals"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ShoppingListDetailResponse carries the list totals, the catalog the items reference and the partitioned items.
type ShoppingListDetailResponse struct {
	ShoppingListResponse
	Products  []ProductResponse      `json:"products"`
	ToBuy     []ShoppingItemResponse `json:"toBuy"`
	Purchased []ShoppingItemResponse `json:"purchased"`
}

type ListShoppingListsResponse struct {
	Lists     []ShoppingListResponse `json:"lists"`
	NextToken *string                `json:"nextToken,omitempty"`
}

func ToShoppingItemResponse(i *domain.ShoppingItem) ShoppingItemResponse {
	return ShoppingItemResponse{
		ItemID:    i.ItemID,
		ListID:    i.ListID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     i.Price,
		LineTotal: i.LineTotal(),
		Checked:   i.Checked,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func ToListShoppingItemResponse(items []domain.ShoppingItem) []ShoppingItemResponse {
	res := make([]ShoppingItemResponse, len(items))
	for i := range items {
		res[i] = ToShoppingItemResponse(&items[i])
	}
	return res
}

func ToShoppingTotalsResponse(t domain.ShoppingTotals) ShoppingTotalsResponse {
	return ShoppingTotalsResponse{
		Budget:        t.Budget,
		Spent:         t.Spent,
		Remaining:     t.Remaining,
		Percentage:    t.Percentage,
		ProgressWidth: t.ProgressWidth(),
		OverBudget:    t.IsOverBudget(),
	}
}

func ToShoppingListResponse(list *domain.ShoppingList, totals domain.ShoppingTotals) ShoppingListResponse {
	return ShoppingListResponse{
		ListID:    list.ListID,
		Name:      list.Name,
		Budget:    list.Budget,
		ItemCount: len(list.Items),
		Totals:    ToShoppingTotalsResponse(totals),
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

func ToShoppingListDetailResponse(view *domain.ShoppingListView) ShoppingListDetailResponse {
	return ShoppingListDetailResponse{
		ShoppingListResponse: ToShoppingListResponse(&view.List, view.Totals),
		Products:             ToListProductResponse(view.Products),
		ToBuy:                ToListShoppingItemResponse(view.ToBuy),
		Purchased:            ToListShoppingItemResponse(view.Purchased),
	}
}
