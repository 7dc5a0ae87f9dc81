package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/utils/pagination"
)

// PlanningReader defines read operations for planning lists and their transactions.
// Every lookup is scoped by userID; rows owned by another user are reported as not found.
type PlanningReader interface {
	// FindPlanningListByID retrieves a list with all of its transactions.
	FindPlanningListByID(ctx context.Context, listID, userID string) (*domain.PlanningList, error)

	// ListPlanningLists retrieves one page of lists, newest first, each with its transactions.
	// A nil cursor starts at the newest list.
	ListPlanningLists(ctx context.Context, userID string, limit int, cursor *pagination.Cursor) ([]domain.PlanningList, error)

	// ListAllPlanningLists retrieves every list of the user with its transactions.
	ListAllPlanningLists(ctx context.Context, userID string) ([]domain.PlanningList, error)

	FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error)
}

// PlanningWriter defines write operations for planning lists and their transactions.
type PlanningWriter interface {
	SavePlanningList(ctx context.Context, list domain.PlanningList) error
	UpdatePlanningList(ctx context.Context, list domain.PlanningList) error
	// DeletePlanningList removes a list and, through the foreign key, its transactions.
	DeletePlanningList(ctx context.Context, listID, userID string) error

	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	SetTransactionPaid(ctx context.Context, transactionID, userID string, paid bool, now time.Time) error
	DeleteTransaction(ctx context.Context, transactionID, userID string) error
}

// PlanningRepositoryFacade combines all planning-related repository interfaces
type PlanningRepositoryFacade interface {
	PlanningReader
	PlanningWriter
}
