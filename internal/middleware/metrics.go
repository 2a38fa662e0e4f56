package middleware

import (
	"strconv"
	"time"

	"auth-api/internal/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute 未命中任何路由的請求共用此 path label
const unmatchedRoute = "unmatched"

// Metrics 記錄請求次數與延遲，path 使用路由樣板以避免高基數
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/metrics" {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			method := c.Request().Method
			path := routeLabel(c)
			m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
			m.HTTPRequestDurationSeconds.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// routeLabel 回傳已註冊的路由樣板；未註冊者 (echo 會退回原始 URL path) 一律為 unmatchedRoute
func routeLabel(c echo.Context) string {
	path := c.Path()
	for _, r := range c.Echo().Routes() {
		if r.Path == path {
			return path
		}
	}
	return unmatchedRoute
}
