package mapping

import (
	"database/sql"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
	"github.com/SscSPs/fluxora_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:           d.UserID,
		Username:         d.Username,
		Email:            nullIfEmpty(d.Email),
		Name:             d.Name,
		PasswordHash:     nullIfEmpty(d.PasswordHash),
		AuthProvider:     string(d.AuthProvider),
		ProviderUserID:   nullIfEmpty(d.ProviderUserID),
		EmailVerified:    d.EmailVerified,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		RefreshTokenHash: nullIfEmpty(d.RefreshTokenHash),
	}
	if m.AuthProvider == "" {
		m.AuthProvider = string(domain.ProviderLocal)
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:           m.UserID,
		Username:         m.Username,
		Email:            m.Email.String,
		Name:             m.Name,
		PasswordHash:     m.PasswordHash.String,
		AuthProvider:     domain.AuthProvider(m.AuthProvider),
		ProviderUserID:   m.ProviderUserID.String,
		EmailVerified:    m.EmailVerified,
		RefreshTokenHash: m.RefreshTokenHash.String,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}
