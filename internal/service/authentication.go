// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"auth-api/internal/apperrors"
	"auth-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int    `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	newTokenID      = func() string { return uuid.NewString() }
	parseWithClaims = jwt.ParseWithClaims
)

// AuthenticateUser 比對明文密碼與使用者的 bcrypt 哈希。
// user 為 nil (查無帳號) 時仍對 dummyHash 做一次比對再回傳錯誤。
func AuthenticateUser(user *model.User, password string) error {
	if user == nil || user.PasswordHash == "" {
		_ = ComparePassword(dummyHash, password)
		return apperrors.ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// JWTManager 以 HS256 簽發與驗證存取令牌
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewJWTManager secret 不可為空，ttl 必須大於 0
func NewJWTManager(secret string, ttl time.Duration, issuer string) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("JWT secret not set")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid token ttl: %s", ttl)
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, issuer: issuer}, nil
}

// ExpiresIn 回傳令牌有效秒數，即 LoginResponse.expiresIn
func (m *JWTManager) ExpiresIn() int64 {
	return int64(m.ttl / time.Second)
}

// Issue 依據使用者產生簽章後的 JWT 與其 claims
func (m *JWTManager) Issue(user model.User) (string, *CustomClaims, error) {
	now := timeNow()
	claims := &CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Issuer:    m.issuer,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Verify 驗證並解析 JWT，只接受 HMAC 演算法
func (m *JWTManager) Verify(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(timeNow), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
