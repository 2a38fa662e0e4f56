// File: internal/handler/users/list.go
package users

import (
	"net/http"

	"auth-api/internal/database"
	"auth-api/internal/dto"
	"auth-api/internal/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListUsersHandler 列出所有使用者
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array}  dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := repository.ListUsers(c.Request().Context(), db)
		if err != nil {
			log.Error("list users failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to list users"})
		}

		resp := make([]dto.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, dto.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
