// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"auth-api/internal/apperrors"
	"auth-api/internal/database"
	"auth-api/internal/dto"
	"auth-api/internal/metrics"
	"auth-api/internal/repository"
	"auth-api/internal/service"
	"auth-api/internal/worker"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const lastLoginTimeout = 5 * time.Second

var authenticateUser = service.AuthenticateUser

// LoginHandler 使用 Email/Password 驗證並回傳 JWT 與有效秒數
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與有效秒數 (expiresIn)
// @Tags        auth
// @Accept      json,application/x-www-form-urlencoded
// @Produce     json
// @Param       body body dto.LoginRequest true "登入資訊"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, jwtm *service.JWTManager, wp worker.Pool, m *metrics.Metrics, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			m.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := c.Validate(&req); err != nil {
			m.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := repository.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				// 查無帳號也跑一次 bcrypt，回應時間與密碼錯誤一致
				_ = authenticateUser(nil, req.Password)
				m.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
			}
			m.LoginsTotal.WithLabelValues("error").Inc()
			log.Error("lookup user failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to look up user"})
		}

		if err := authenticateUser(user, req.Password); err != nil {
			m.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		token, _, err := jwtm.Issue(*user)
		if err != nil {
			m.LoginsTotal.WithLabelValues("error").Inc()
			log.Error("issue token failed", zap.Error(err), zap.Int("user_id", user.ID))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}
		m.LoginsTotal.WithLabelValues("success").Inc()
		m.TokensIssuedTotal.Inc()

		// 最後登入時間在背景更新；佇列滿時放棄這次更新
		userID, at := user.ID, time.Now()
		accepted := wp.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), lastLoginTimeout)
			defer cancel()
			if err := repository.TouchLastLogin(ctx, db, userID, at); err != nil {
				log.Warn("update last login failed", zap.Error(err), zap.Int("user_id", userID))
			}
		})
		if !accepted {
			log.Warn("last login update dropped", zap.Int("user_id", userID))
		}

		resp := new(dto.LoginResponse).
			SetToken(token).
			SetExpiresIn(jwtm.ExpiresIn())
		return c.JSON(http.StatusOK, resp)
	}
}
