// File: internal/dto/login_response.go
package dto

// LoginResponse 登入成功後回傳的存取令牌與有效秒數
// swagger:model dto.LoginResponse
type LoginResponse struct {
	// 不透明的 Bearer 令牌，本結構不檢查其內容
	Token string `json:"token" example:"eyJhbGciOi..."`
	// 自簽發起算的剩餘有效秒數 (非絕對時間)
	ExpiresIn int64 `json:"expiresIn" example:"3600"`
}

// SetToken 原樣存入令牌並回傳自身以便串接
func (r *LoginResponse) SetToken(token string) *LoginResponse {
	r.Token = token
	return r
}

// GetToken 回傳令牌
func (r *LoginResponse) GetToken() string {
	return r.Token
}

// SetExpiresIn 原樣存入有效秒數並回傳自身以便串接
func (r *LoginResponse) SetExpiresIn(expiresIn int64) *LoginResponse {
	r.ExpiresIn = expiresIn
	return r
}

// GetExpiresIn 回傳有效秒數
func (r *LoginResponse) GetExpiresIn() int64 {
	return r.ExpiresIn
}
