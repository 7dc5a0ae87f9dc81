package services

import (
	"context"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/dto"
)

// PlanningReaderSvc defines read operations for planning lists
type PlanningReaderSvc interface {
	// GetPlanningList returns the list with totals over all of its transactions and
	// the transactions matching params, filtered and sorted.
	GetPlanningList(ctx context.Context, listID string, userID string, params dto.PlanningViewParams) (*domain.PlanningListView, error)

	// ListPlanningLists retrieves a page of lists with their totals, or every list whose name matches params.Search.
	ListPlanningLists(ctx context.Context, userID string, params dto.ListParams) ([]domain.PlanningListSummary, *string, error)
}

// PlanningWriterSvc defines write operations for planning lists
type PlanningWriterSvc interface {
	CreatePlanningList(ctx context.Context, req dto.PlanningListRequest, userID string) (*domain.PlanningList, error)
	RenamePlanningList(ctx context.Context, listID string, req dto.PlanningListRequest, userID string) (*domain.PlanningList, error)
	DeletePlanningList(ctx context.Context, listID string, userID string) error
}

// TransactionWriterSvc defines write operations for the transactions of a planning list
type TransactionWriterSvc interface {
	AddTransaction(ctx context.Context, listID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, listID string, transactionID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error)
	SetTransactionPaid(ctx context.Context, listID string, transactionID string, paid bool, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, listID string, transactionID string, userID string) error
}

// PlanningSvcFacade combines all planning-related service interfaces
type PlanningSvcFacade interface {
	PlanningReaderSvc
	PlanningWriterSvc
	TransactionWriterSvc
}
