// File: internal/service/password.go
package service

import (
	"errors"

	"auth-api/internal/apperrors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes bcrypt 只處理前 72 bytes，超過即拒絕
const MaxPasswordBytes = 72

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// dummyHash 用於查無帳號時的比對，使其耗時與密碼錯誤相同
var dummyHash = mustDummyHash()

func mustDummyHash() string {
	h, err := bcrypt.GenerateFromPassword([]byte("auth-api:no-such-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串。
// 長度以 bytes 計算，超過 MaxPasswordBytes 回傳 apperrors.ErrPasswordTooLong。
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", apperrors.ErrPasswordTooLong
	}
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.ErrPasswordTooLong
		}
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}
