package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	"github.com/SscSPs/fluxora_app/internal/models"
	"github.com/SscSPs/fluxora_app/internal/utils/mapping"
	"github.com/SscSPs/fluxora_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPlanningRepository struct {
	BaseRepository
}

func newPgxPlanningRepository(pool *pgxpool.Pool) portsrepo.PlanningRepositoryFacade {
	return &PgxPlanningRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PlanningRepositoryFacade = (*PgxPlanningRepository)(nil)

const (
	selectPlanningListFields = `list_id, user_id, name, created_at, updated_at`

	selectTransactionFields = `
		transaction_id, list_id, user_id, description, amount, transaction_type,
		category_id, transaction_date, is_paid, observation, created_at, updated_at
	`
)

func scanPlanningList(row pgx.Row) (models.PlanningList, error) {
	var m models.PlanningList
	err := row.Scan(&m.ListID, &m.UserID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.ListID,
		&m.UserID,
		&m.Description,
		&m.Amount,
		&m.TransactionType,
		&m.CategoryID,
		&m.TransactionDate,
		&m.IsPaid,
		&m.Observation,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxPlanningRepository) FindPlanningListByID(ctx context.Context, listID, userID string) (*domain.PlanningList, error) {
	query := `SELECT ` + selectPlanningListFields + ` FROM planning_lists WHERE list_id = $1 AND user_id = $2;`
	m, err := scanPlanningList(r.Pool.QueryRow(ctx, query, listID, userID))
	if err != nil {
		return nil, translateError(err, "planning list "+listID)
	}

	list := mapping.ToDomainPlanningList(m)
	byList, err := r.transactionsByList(ctx, []string{listID})
	if err != nil {
		return nil, err
	}
	if txns, ok := byList[listID]; ok {
		list.Transactions = txns
	}
	return &list, nil
}

// ListPlanningLists pages through lists ordered by created_at desc, list_id desc.
func (r *PgxPlanningRepository) ListPlanningLists(ctx context.Context, userID string, limit int, cursor *pagination.Cursor) ([]domain.PlanningList, error) {
	args := []any{userID}
	query := `SELECT ` + selectPlanningListFields + ` FROM planning_lists WHERE user_id = $1`
	if cursor != nil {
		query += ` AND (created_at, list_id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY created_at DESC, list_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit)

	return r.queryLists(ctx, query, args...)
}

func (r *PgxPlanningRepository) ListAllPlanningLists(ctx context.Context, userID string) ([]domain.PlanningList, error) {
	query := `SELECT ` + selectPlanningListFields + ` FROM planning_lists WHERE user_id = $1 ORDER BY created_at DESC, list_id DESC;`
	return r.queryLists(ctx, query, userID)
}

// queryLists runs a list query and attaches every list's transactions with a second query.
func (r *PgxPlanningRepository) queryLists(ctx context.Context, query string, args ...any) ([]domain.PlanningList, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query planning lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.PlanningList{}
	ids := []string{}
	for rows.Next() {
		m, err := scanPlanningList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planning list row: %w", err)
		}
		lists = append(lists, mapping.ToDomainPlanningList(m))
		ids = append(ids, m.ListID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating planning list rows: %w", err)
	}
	if len(ids) == 0 {
		return lists, nil
	}

	byList, err := r.transactionsByList(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range lists {
		if txns, ok := byList[lists[i].ListID]; ok {
			lists[i].Transactions = txns
		}
	}
	return lists, nil
}

// transactionsByList loads the transactions of the given lists, newest first within each list.
func (r *PgxPlanningRepository) transactionsByList(ctx context.Context, listIDs []string) (map[string][]domain.Transaction, error) {
	query := `
		SELECT ` + selectTransactionFields + `
		FROM planning_transactions
		WHERE list_id = ANY($1::uuid[])
		ORDER BY created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, listIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	byList := make(map[string][]domain.Transaction, len(listIDs))
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		byList[m.ListID] = append(byList[m.ListID], mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return byList, nil
}

func (r *PgxPlanningRepository) FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	query := `SELECT ` + selectTransactionFields + ` FROM planning_transactions WHERE transaction_id = $1 AND user_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		return nil, translateError(err, "transaction "+transactionID)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxPlanningRepository) SavePlanningList(ctx context.Context, list domain.PlanningList) error {
	m := mapping.ToModelPlanningList(list)
	query := `
		INSERT INTO planning_lists (list_id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.Pool.Exec(ctx, query, m.ListID, m.UserID, m.Name, m.CreatedAt, m.UpdatedAt); err != nil {
		return translateError(err, "planning list "+m.ListID)
	}
	return nil
}

func (r *PgxPlanningRepository) UpdatePlanningList(ctx context.Context, list domain.PlanningList) error {
	m := mapping.ToModelPlanningList(list)
	query := `UPDATE planning_lists SET name = $1, updated_at = $2 WHERE list_id = $3 AND user_id = $4;`
	tag, err := r.Pool.Exec(ctx, query, m.Name, m.UpdatedAt, m.ListID, m.UserID)
	if err != nil {
		return translateError(err, "planning list "+m.ListID)
	}
	return expectOneRow(tag, "planning list "+m.ListID)
}

func (r *PgxPlanningRepository) DeletePlanningList(ctx context.Context, listID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM planning_lists WHERE list_id = $1 AND user_id = $2;`, listID, userID)
	if err != nil {
		return translateError(err, "planning list "+listID)
	}
	return expectOneRow(tag, "planning list "+listID)
}

func (r *PgxPlanningRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO planning_transactions (
			transaction_id, list_id, user_id, description, amount, transaction_type,
			category_id, transaction_date, is_paid, observation, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.ListID,
		m.UserID,
		m.Description,
		m.Amount,
		m.TransactionType,
		m.CategoryID,
		m.TransactionDate,
		m.IsPaid,
		m.Observation,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "transaction "+m.TransactionID)
	}
	return nil
}

// UpdateTransaction replaces the editable fields. created_at is never touched, so the
// recency order of the list is stable across edits.
func (r *PgxPlanningRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE planning_transactions
		SET description = $1, amount = $2, transaction_type = $3, category_id = $4,
			transaction_date = $5, is_paid = $6, observation = $7, updated_at = $8
		WHERE transaction_id = $9 AND user_id = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Description,
		m.Amount,
		m.TransactionType,
		m.CategoryID,
		m.TransactionDate,
		m.IsPaid,
		m.Observation,
		m.UpdatedAt,
		m.TransactionID,
		m.UserID,
	)
	if err != nil {
		return translateError(err, "transaction "+m.TransactionID)
	}
	return expectOneRow(tag, "transaction "+m.TransactionID)
}

func (r *PgxPlanningRepository) SetTransactionPaid(ctx context.Context, transactionID, userID string, paid bool, now time.Time) error {
	query := `UPDATE planning_transactions SET is_paid = $1, updated_at = $2 WHERE transaction_id = $3 AND user_id = $4;`
	tag, err := r.Pool.Exec(ctx, query, paid, now, transactionID, userID)
	if err != nil {
		return translateError(err, "transaction "+transactionID)
	}
	return expectOneRow(tag, "transaction "+transactionID)
}

func (r *PgxPlanningRepository) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM planning_transactions WHERE transaction_id = $1 AND user_id = $2;`, transactionID, userID)
	if err != nil {
		return translateError(err, "transaction "+transactionID)
	}
	return expectOneRow(tag, "transaction "+transactionID)
}
