package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fluxora_app/internal/core/ports/repositories"
	"github.com/SscSPs/fluxora_app/internal/models"
	"github.com/SscSPs/fluxora_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const selectUserFields = `
	user_id, username, email, name, password_hash, auth_provider, provider_user_id, email_verified,
	refresh_token_hash, refresh_token_expiry_time, created_at, updated_at
`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.EmailVerified,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxUserRepository) findOne(ctx context.Context, what, where string, args ...any) (*domain.User, error) {
	query := `SELECT ` + selectUserFields + ` FROM users WHERE ` + where + `;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, what)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user "+userID, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "user "+username, "username = $1", username)
}

// FindUserByEmail compares case-insensitively; emails are stored lowercased.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "user with email", "email = $1", strings.ToLower(email))
}

func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "user of provider "+string(provider), "auth_provider = $1 AND provider_user_id = $2", string(provider), providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, username, email, name, password_hash, auth_provider, provider_user_id,
			email_verified, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.EmailVerified,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "user "+m.Username)
	}
	return nil
}

// UpdateUser writes the profile and provider link fields. Credentials and refresh tokens
// have their own methods.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET name = $1, email = $2, auth_provider = $3, provider_user_id = $4, email_verified = $5, updated_at = $6
		WHERE user_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Email,
		m.AuthProvider,
		m.ProviderUserID,
		m.EmailVerified,
		m.UpdatedAt,
		m.UserID,
	)
	if err != nil {
		return translateError(err, "user "+m.UserID)
	}
	return expectOneRow(tag, "user "+m.UserID)
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	query := `UPDATE users SET refresh_token_hash = $1, refresh_token_expiry_time = $2 WHERE user_id = $3;`
	tag, err := r.Pool.Exec(ctx, query, refreshTokenHash, expiresAt, userID)
	if err != nil {
		return translateError(err, "user "+userID)
	}
	return expectOneRow(tag, "user "+userID)
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return translateError(err, "user "+userID)
	}
	return expectOneRow(tag, "user "+userID)
}
