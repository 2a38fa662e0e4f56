package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"auth-api/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/api/users/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusUnauthorized) })
	e.GET("/metrics", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, path := range []string{"/api/users/1", "/api/users/2", "/fail", "/metrics"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/users/:id", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/fail", "401")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
}

func TestMetricsUnmatchedRoutesShareOneSeries(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/api/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, path := range []string{"/a1", "/a2", "/a3", "/api/ping"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestsTotal))
	require.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/ping", "200")))
	require.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDurationSeconds))
}
