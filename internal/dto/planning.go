package dto

import (
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of a transaction's user-editable date.
const DateLayout = "2006-01-02"

// PlanningListRequest is used to create or rename a planning list.
type PlanningListRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

// TransactionRequest is used to create a transaction or replace an existing one.
type TransactionRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	CategoryID  string          `json:"categoryID" binding:"required,transaction_category"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	IsPaid      bool            `json:"isPaid"`
	Observation *string         `json:"observation" binding:"omitempty,max=1000"`
}

// SetPaidRequest toggles the paid flag of a transaction.
type SetPaidRequest struct {
	IsPaid *bool `json:"isPaid" binding:"required"`
}

// PlanningViewParams defines the query parameters of the planning list detail endpoint.
type PlanningViewParams struct {
	Tab       string `form:"tab,default=all" binding:"oneof=all income expense pending"`
	Search    string `form:"search" binding:"max=120"`
	Category  string `form:"category" binding:"omitempty,max=64"`
	PaidOnly  bool   `form:"paidOnly"`
	SortField string `form:"sortField,default=date" binding:"oneof=date amount description"`
	SortOrder string `form:"sortOrder,default=desc" binding:"oneof=asc desc"`
}

type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	ListID        string          `json:"listID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	CategoryID    string          `json:"categoryID"`
	CategoryLabel string          `json:"categoryLabel"`
	Date          string          `json:"date"`
	IsPaid        bool            `json:"isPaid"`
	Observation   *string         `json:"observation,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type TransactionTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

type PlanningListResponse struct {
	ListID    string                    `json:"listID"`
	Name      string                    `json:"name"`
	Totals    TransactionTotalsResponse `json:"totals"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// PlanningListDetailResponse carries the totals of the whole list and the transactions matching the view parameters.
type PlanningListDetailResponse struct {
	PlanningListResponse
	Transactions []TransactionResponse `json:"transactions"`
}

type ListPlanningListsResponse struct {
	Lists     []PlanningListResponse `json:"lists"`
	NextToken *string                `json:"nextToken,omitempty"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ListID:        t.ListID,
		Description:   t.Description,
		Amount:        t.Amount,
		Type:          string(t.Type),
		CategoryID:    string(t.CategoryID),
		CategoryLabel: transactionCategoryLabel(t.CategoryID),
		Date:          t.Date.Format(DateLayout),
		IsPaid:        t.IsPaid,
		Observation:   t.Observation,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

func ToTransactionTotalsResponse(t domain.TransactionTotals) TransactionTotalsResponse {
	return TransactionTotalsResponse{Income: t.Income, Expense: t.Expense, Balance: t.Balance}
}

func ToPlanningListResponse(list *domain.PlanningList, totals domain.TransactionTotals) PlanningListResponse {
	return PlanningListResponse{
		ListID:    list.ListID,
		Name:      list.Name,
		Totals:    ToTransactionTotalsResponse(totals),
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

func ToPlanningListDetailResponse(view *domain.PlanningListView) PlanningListDetailResponse {
	return PlanningListDetailResponse{
		PlanningListResponse: ToPlanningListResponse(&view.List, view.Totals),
		Transactions:         ToListTransactionResponse(view.Transactions),
	}
}
