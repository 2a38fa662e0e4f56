// File: internal/dto/signup_request.go
package dto

// swagger:model dto.SignupRequest
type SignupRequest struct {
	FullName string `json:"fullName" form:"fullName" validate:"required,max=100" example:"Alice Chen"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	// max 以字元計算，72 bytes 上限由 service.HashPassword 檢查
	Password string `json:"password" form:"password" validate:"required,min=8,max=72" example:"Secret123!"`
}
