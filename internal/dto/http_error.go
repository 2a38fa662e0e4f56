// File: internal/dto/http_error.go
package dto

// HTTPError 所有 4xx/5xx 回應的 JSON 內容，例如 {"message":"invalid credentials"}。
// 不回傳內部錯誤細節，5xx 的原因只寫入 log。
// swagger:model dto.HTTPError
type HTTPError struct {
	// 給 client 顯示的錯誤訊息
	Message string `json:"message" example:"invalid credentials"`
}

// Error 讓 HTTPError 可直接作為 error 記錄
func (e HTTPError) Error() string {
	return e.Message
}
