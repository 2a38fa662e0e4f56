package middleware

import (
	"errors"
	"net/http"
	"strings"

	"auth-api/internal/apperrors"
	"auth-api/internal/cache"
	"auth-api/internal/dto"
	"auth-api/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const ContextUserKey = "user"

// bearerToken 取出 Authorization: Bearer <token> 中的 token
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// RequireAuth 驗證 JWT 並確認未被撤銷，成功後把 claims 放入 context
func RequireAuth(jwtm *service.JWTManager, rc cache.Cache, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "missing or malformed bearer token"})
			}
			claims, err := jwtm.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid token"})
			}
			if err := service.EnsureNotRevoked(c.Request().Context(), rc, claims.ID); err != nil {
				if errors.Is(err, apperrors.ErrTokenRevoked) {
					return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: err.Error()})
				}
				log.Error("revocation lookup failed", zap.Error(err), zap.String("jti", claims.ID))
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to verify token"})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom 取出 RequireAuth 放入的 claims
func ClaimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}
