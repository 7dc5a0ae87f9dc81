package models

import (
	"database/sql"
)

// User is a row of the users table.
// Users created through an external provider have no password hash.
type User struct {
	UserID         string         `json:"userID" db:"user_id"`
	Username       string         `json:"username" db:"username"`
	Email          sql.NullString `json:"email" db:"email"`
	Name           string         `json:"name" db:"name"`
	PasswordHash   sql.NullString `json:"-" db:"password_hash"`
	AuthProvider   string         `json:"authProvider" db:"auth_provider"`
	ProviderUserID sql.NullString `json:"-" db:"provider_user_id"`
	EmailVerified  bool           `json:"emailVerified" db:"email_verified"`
	AuditFields

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Store hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token
}
