// File: internal/dto/user_response.go
package dto

import (
	"time"

	"auth-api/internal/model"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID          int        `json:"id" example:"1"`
	FullName    string     `json:"fullName" example:"Alice Chen"`
	Email       string     `json:"email" example:"alice@example.com"`
	CreatedAt   time.Time  `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   time.Time  `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" example:"2025-05-02T08:00:00Z"`
}

// NewUserResponse 由 model.User 組裝回應，不含密碼哈希
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
