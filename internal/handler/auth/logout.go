// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"auth-api/internal/cache"
	"auth-api/internal/dto"
	"auth-api/internal/metrics"
	"auth-api/internal/middleware"
	"auth-api/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LogoutHandler 撤銷目前使用的存取令牌
// @Summary     登出
// @Description 將目前的 JWT 加入撤銷清單直到其原本到期
// @Tags        auth
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(rc cache.Cache, m *metrics.Metrics, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}
		if err := service.RevokeToken(c.Request().Context(), rc, claims); err != nil {
			log.Error("revoke token failed", zap.Error(err), zap.String("jti", claims.ID))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to revoke token"})
		}
		m.TokensRevokedTotal.Inc()
		return c.NoContent(http.StatusNoContent)
	}
}
