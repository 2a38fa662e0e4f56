// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"auth-api/internal/apperrors"
	"auth-api/internal/database"
	"auth-api/internal/dto"
	"auth-api/internal/metrics"
	"auth-api/internal/model"
	"auth-api/internal/repository"
	"auth-api/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SignupHandler 註冊新帳號
// @Summary     註冊使用者
// @Description 建立新帳號 (Email 會自動轉小寫)，回傳使用者資訊
// @Tags        auth
// @Accept      json,application/x-www-form-urlencoded
// @Produce     json
// @Param       body body dto.SignupRequest true "註冊資訊"
// @Success     201  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/signup [post]
func SignupHandler(db database.DB, m *metrics.Metrics, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		req.FullName = strings.TrimSpace(req.FullName)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := c.Validate(&req); err != nil {
			m.SignupsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			if errors.Is(err, apperrors.ErrPasswordTooLong) {
				m.SignupsTotal.WithLabelValues("invalid").Inc()
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
			}
			m.SignupsTotal.WithLabelValues("error").Inc()
			log.Error("hash password failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		created, err := repository.CreateUser(c.Request().Context(), db, &model.User{
			FullName:     req.FullName,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailTaken) {
				m.SignupsTotal.WithLabelValues("conflict").Inc()
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "email already registered"})
			}
			m.SignupsTotal.WithLabelValues("error").Inc()
			log.Error("create user failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to create user"})
		}

		m.SignupsTotal.WithLabelValues("success").Inc()
		return c.JSON(http.StatusCreated, dto.NewUserResponse(created))
	}
}
