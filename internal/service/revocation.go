// File: internal/service/revocation.go
package service

import (
	"context"
	"errors"
	"fmt"

	"auth-api/internal/apperrors"
	"auth-api/internal/cache"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

func revokedKey(jti string) string {
	return revokedKeyPrefix + jti
}

// RevokeToken 把 jti 寫入撤銷清單，保留到令牌原本的到期時間為止。
// 已過期的令牌不需記錄。
func RevokeToken(ctx context.Context, c cache.Cache, claims *CustomClaims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return errors.New("RevokeToken: missing expiry")
	}
	ttl := claims.ExpiresAt.Time.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := c.Set(ctx, revokedKey(claims.ID), claims.UserID, ttl).Err(); err != nil {
		return fmt.Errorf("RevokeToken: %w", err)
	}
	return nil
}

// IsRevoked 查詢 jti 是否已被撤銷
func IsRevoked(ctx context.Context, c cache.Cache, jti string) (bool, error) {
	err := c.Get(ctx, revokedKey(jti)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("IsRevoked: %w", err)
	}
}

// EnsureNotRevoked 已撤銷時回傳 apperrors.ErrTokenRevoked，查詢失敗時回傳包裝後的錯誤
func EnsureNotRevoked(ctx context.Context, c cache.Cache, jti string) error {
	revoked, err := IsRevoked(ctx, c, jti)
	if err != nil {
		return err
	}
	if revoked {
		return apperrors.ErrTokenRevoked
	}
	return nil
}
