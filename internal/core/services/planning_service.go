package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/SscSPs/fluxora_app/internal/utils/aggregation"
	"github.com/SscSPs/fluxora_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// planningService implements the PlanningSvcFacade interface
type planningService struct {
	BaseService
	planningRepo portsrepo.PlanningRepositoryFacade
}

// NewPlanningService creates a new planning service with the provided options
func NewPlanningService(repo portsrepo.PlanningRepositoryFacade, options ...ServiceOption) portssvc.PlanningSvcFacade {
	svc := &planningService{planningRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.PlanningSvcFacade = (*planningService)(nil)

func (s *planningService) GetPlanningList(ctx context.Context, listID string, userID string, params dto.PlanningViewParams) (*domain.PlanningListView, error) {
	list, err := s.planningRepo.FindPlanningListByID(ctx, listID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find planning list", slog.String("list_id", listID))
		}
		return nil, fmt.Errorf("failed to get planning list: %w", err)
	}

	sortField := aggregation.TransactionSortField(params.SortField)
	if sortField == "" {
		sortField = aggregation.SortByDate
	}
	filtered := aggregation.FilterTransactions(list.Transactions, aggregation.TransactionFilter{
		TypeTab:    aggregation.TransactionTab(params.Tab),
		SearchTerm: params.Search,
		CategoryID: params.Category,
		PaidOnly:   params.PaidOnly,
	})

	view := &domain.PlanningListView{
		List:         *list,
		Totals:       aggregation.ComputeTransactionTotals(list.Transactions),
		Transactions: aggregation.SortTransactions(filtered, sortField, aggregation.SortOrder(params.SortOrder)),
	}
	s.LogDebug(ctx, "Planning list view computed",
		slog.String("list_id", listID),
		slog.Int("total", len(list.Transactions)),
		slog.Int("shown", len(view.Transactions)))
	return view, nil
}

func (s *planningService) ListPlanningLists(ctx context.Context, userID string, params dto.ListParams) ([]domain.PlanningListSummary, *string, error) {
	if params.Search != "" {
		lists, err := s.planningRepo.ListAllPlanningLists(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list planning lists", slog.String("user_id", userID))
			return nil, nil, fmt.Errorf("failed to list planning lists: %w", err)
		}
		matched := aggregation.FilterByName(lists, params.Search, func(l domain.PlanningList) string { return l.Name })
		return summarizePlanningLists(matched), nil, nil
	}

	cursor, err := pagination.DecodeToken(params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit := pagination.NormalizeLimit(params.Limit)

	// one extra row tells whether another page exists
	lists, err := s.planningRepo.ListPlanningLists(ctx, userID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list planning lists", slog.String("user_id", userID))
		return nil, nil, fmt.Errorf("failed to list planning lists: %w", err)
	}

	var nextToken *string
	if len(lists) > limit {
		lists = lists[:limit]
		last := lists[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ListID)
		nextToken = &token
	}
	return summarizePlanningLists(lists), nextToken, nil
}

func summarizePlanningLists(lists []domain.PlanningList) []domain.PlanningListSummary {
	summaries := make([]domain.PlanningListSummary, len(lists))
	for i, l := range lists {
		summaries[i] = domain.PlanningListSummary{List: l, Totals: aggregation.ComputeTransactionTotals(l.Transactions)}
	}
	return summaries
}

func (s *planningService) CreatePlanningList(ctx context.Context, req dto.PlanningListRequest, userID string) (*domain.PlanningList, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: list name is required", apperrors.ErrValidation)
	}
	now := s.Now()
	list := domain.PlanningList{
		ListID:       uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Transactions: []domain.Transaction{},
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.planningRepo.SavePlanningList(ctx, list); err != nil {
		s.LogError(ctx, err, "Failed to save planning list", slog.String("list_id", list.ListID))
		return nil, fmt.Errorf("failed to create planning list: %w", err)
	}
	s.LogInfo(ctx, "Planning list created", slog.String("list_id", list.ListID))
	return &list, nil
}

func (s *planningService) RenamePlanningList(ctx context.Context, listID string, req dto.PlanningListRequest, userID string) (*domain.PlanningList, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: list name is required", apperrors.ErrValidation)
	}
	list, err := s.planningRepo.FindPlanningListByID(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find planning list: %w", err)
	}
	list.Name = req.Name
	list.UpdatedAt = s.Now()
	if err := s.planningRepo.UpdatePlanningList(ctx, *list); err != nil {
		s.LogError(ctx, err, "Failed to update planning list", slog.String("list_id", listID))
		return nil, fmt.Errorf("failed to rename planning list: %w", err)
	}
	return list, nil
}

func (s *planningService) DeletePlanningList(ctx context.Context, listID string, userID string) error {
	if err := s.planningRepo.DeletePlanningList(ctx, listID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete planning list", slog.String("list_id", listID))
		}
		return fmt.Errorf("failed to delete planning list: %w", err)
	}
	s.LogInfo(ctx, "Planning list deleted", slog.String("list_id", listID))
	return nil
}

func (s *planningService) AddTransaction(ctx context.Context, listID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.planningRepo.FindPlanningListByID(ctx, listID, userID); err != nil {
		return nil, fmt.Errorf("failed to find planning list: %w", err)
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ListID:        listID,
		UserID:        userID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := applyTransactionRequest(&txn, req); err != nil {
		return nil, err
	}

	if err := s.planningRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("list_id", listID))
		return nil, fmt.Errorf("failed to add transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction added", slog.String("list_id", listID), slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *planningService) UpdateTransaction(ctx context.Context, listID string, transactionID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.findListTransaction(ctx, listID, transactionID, userID)
	if err != nil {
		return nil, err
	}
	if err := applyTransactionRequest(txn, req); err != nil {
		return nil, err
	}
	txn.UpdatedAt = s.Now()

	if err := s.planningRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *planningService) SetTransactionPaid(ctx context.Context, listID string, transactionID string, paid bool, userID string) (*domain.Transaction, error) {
	txn, err := s.findListTransaction(ctx, listID, transactionID, userID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	if err := s.planningRepo.SetTransactionPaid(ctx, transactionID, userID, paid, now); err != nil {
		s.LogError(ctx, err, "Failed to set transaction paid", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to set transaction paid: %w", err)
	}
	txn.IsPaid = paid
	txn.UpdatedAt = now
	return txn, nil
}

func (s *planningService) DeleteTransaction(ctx context.Context, listID string, transactionID string, userID string) error {
	if _, err := s.findListTransaction(ctx, listID, transactionID, userID); err != nil {
		return err
	}
	if err := s.planningRepo.DeleteTransaction(ctx, transactionID, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// findListTransaction reports a transaction of another list as not found.
func (s *planningService) findListTransaction(ctx context.Context, listID, transactionID, userID string) (*domain.Transaction, error) {
	txn, err := s.planningRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if txn.ListID != listID {
		return nil, fmt.Errorf("transaction %s not found in list %s: %w", transactionID, listID, apperrors.ErrNotFound)
	}
	return txn, nil
}

func applyTransactionRequest(txn *domain.Transaction, req dto.TransactionRequest) error {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return fmt.Errorf("%w: date must use the %s layout", apperrors.ErrValidation, dto.DateLayout)
	}
	txn.Description = req.Description
	txn.Amount = req.Amount
	txn.Type = domain.TransactionType(req.Type)
	txn.CategoryID = domain.TransactionCategory(req.CategoryID)
	txn.Date = date
	txn.IsPaid = req.IsPaid
	txn.Observation = req.Observation
	if txn.Observation != nil && *txn.Observation == "" {
		txn.Observation = nil
	}
	return txn.Validate()
}
