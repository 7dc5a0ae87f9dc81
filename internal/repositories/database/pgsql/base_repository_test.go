package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/fluxora_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperrors.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_username_key"}, apperrors.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "shopping_items_product_id_fkey"}, apperrors.ErrConflict},
		{"other driver error", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "product p1")
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "product p1")
		})
	}
}

func TestExpectOneRow(t *testing.T) {
	assert.NoError(t, expectOneRow(pgconn.NewCommandTag("UPDATE 1"), "user u1"))
	assert.ErrorIs(t, expectOneRow(pgconn.NewCommandTag("DELETE 0"), "user u1"), apperrors.ErrNotFound)
}
