// @title        Auth API
// @version      1.0
// @description  使用者註冊、登入與 JWT 存取令牌服務
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auth-api/internal/cache"
	"auth-api/internal/config"
	"auth-api/internal/database"
	"auth-api/internal/logger"
	"auth-api/internal/metrics"
	appmw "auth-api/internal/middleware"
	"auth-api/internal/router"
	"auth-api/internal/service"
	"auth-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "auth-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = func() (*config.Config, error) { return config.Load() }
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc        = os.Exit
)

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	zl := newLogger(cfg.Server.LogLevel)
	defer func() { _ = zl.Sync() }()

	if cfg.Database.MigrateDown {
		if err := rollbackAllFn(cfg.Database.URL); err != nil {
			return fmt.Errorf("Migration 回滾失敗: %w", err)
		}
		zl.Info("migrations rolled back")
		return nil
	}

	db, err := newPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rc, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rc.Close()

	if cfg.Database.RunMigrations {
		if err := runMigrationsFn(cfg.Database.URL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
	}

	jwtm, err := service.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer)
	if err != nil {
		return err
	}

	wp := newWorkerPool(cfg.Server.WorkerCount, zl)
	defer wp.Stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Server.Debug
	e.Use(middleware.RequestID())
	e.Use(appmw.RequestLogger(zl))
	e.Use(appmw.Metrics(m))
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rc,
		JWT:      jwtm,
		Workers:  wp,
		Metrics:  m,
		Gatherer: reg,
		Log:      zl,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	serverErr := make(chan error, 1)
	go func() { serverErr <- startServer(e, cfg.Server.Addr) }()
	zl.Info("server started", zap.String("addr", cfg.Server.Addr))

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		zl.Info("shutting down")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownServer(shCtx, e); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		zl := newLogger("error")
		zl.Error("service exited", zap.Error(err))
		_ = zl.Sync()
		exitFunc(1)
	}
}
