package models

import "time"

// AuditFields holds the timestamps every table carries.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
