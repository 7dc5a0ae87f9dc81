package domain

import "time"

// AuthProvider identifies how a user signed up.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user of the application in the domain.
type User struct {
	UserID                 string       `json:"userID"`
	Username               string       `json:"username"`
	Email                  string       `json:"email"`
	Name                   string       `json:"name"`
	PasswordHash           string       `json:"-"`
	AuthProvider           AuthProvider `json:"authProvider"`
	ProviderUserID         string       `json:"-"`
	EmailVerified          bool         `json:"emailVerified"`
	RefreshTokenHash       string       `json:"-"`
	RefreshTokenExpiryTime *time.Time   `json:"-"`
	AuditFields
}
