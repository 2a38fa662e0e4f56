// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config 服務啟動所需的全部設定，皆由環境變數讀取
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Addr        string `envconfig:"SERVER_ADDR" default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	WorkerCount int    `envconfig:"WORKER_COUNT" default:"1"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
}

type DatabaseConfig struct {
	URL           string `envconfig:"DATABASE_URL" required:"true"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"`
	// MigrateDown 為 true 時只退回所有 migration 後結束，不啟動服務
	MigrateDown bool `envconfig:"MIGRATE_DOWN" default:"false"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type JWTConfig struct {
	Secret     string        `envconfig:"JWT_SECRET" required:"true"`
	Expiration time.Duration `envconfig:"JWT_EXPIRATION" default:"1h"`
	Issuer     string        `envconfig:"JWT_ISSUER" default:"auth-api"`
}

// Load 先嘗試載入 .env 檔 (不存在時忽略)，再從環境變數填入 Config 並檢查
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Server.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_COUNT must be positive, got %d", c.Server.WorkerCount)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", c.Redis.DB)
	}
	if c.JWT.Expiration < time.Second {
		return fmt.Errorf("JWT_EXPIRATION must be at least 1s, got %s", c.JWT.Expiration)
	}
	return nil
}
