package dto

import (
	"time"

	"github.com/SscSPs/fluxora_app/internal/core/domain"
)

type UserResponse struct {
	UserID        string    `json:"userID"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	AuthProvider  string    `json:"authProvider"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		Name:          user.Name,
		AuthProvider:  string(user.AuthProvider),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}
