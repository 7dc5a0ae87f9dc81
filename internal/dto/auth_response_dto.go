package dto

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// RefreshTokenRequest carries the user whose refresh cookie is being exchanged.
type RefreshTokenRequest struct {
	UserID string `json:"userID" binding:"required,uuid"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
