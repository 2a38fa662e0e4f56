// File: internal/handler/users/me.go
package users

import (
	"errors"
	"net/http"

	"auth-api/internal/apperrors"
	"auth-api/internal/database"
	"auth-api/internal/dto"
	"auth-api/internal/middleware"
	"auth-api/internal/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetMeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		user, err := repository.GetUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "user not found"})
			}
			log.Error("get user failed", zap.Error(err), zap.Int("user_id", claims.UserID))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load user"})
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
