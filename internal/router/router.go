// File: internal/router/router.go
package router

import (
	"auth-api/internal/cache"
	"auth-api/internal/database"
	"auth-api/internal/handler"
	"auth-api/internal/handler/auth"
	"auth-api/internal/handler/users"
	"auth-api/internal/metrics"
	"auth-api/internal/middleware"
	"auth-api/internal/service"
	"auth-api/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps 路由所需的依賴
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	JWT      *service.JWTManager
	Workers  worker.Pool
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Log      *zap.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	requireAuth := middleware.RequireAuth(d.JWT, d.Cache, d.Log)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊、登入、登出
	api.POST("/auth/signup", auth.SignupHandler(d.DB, d.Metrics, d.Log))
	api.POST("/auth/login", auth.LoginHandler(d.DB, d.JWT, d.Workers, d.Metrics, d.Log))
	api.POST("/auth/logout", auth.LogoutHandler(d.Cache, d.Metrics, d.Log), requireAuth)

	// 需登入的使用者查詢
	apiUsers := api.Group("/users", requireAuth)
	apiUsers.GET("", users.ListUsersHandler(d.DB, d.Log))
	apiUsers.GET("/me", users.GetMeHandler(d.DB, d.Log))
}
