package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Log backends supported by the interaction log.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Store    StoreConfig
	Personas PersonaConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Port         string `env:"PORT" envDefault:"5000"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"Contra.AI Backend"`
	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"50"`

	// Addr is derived from Port.
	Addr string
}

// LoggingConfig 描述结构化日志输出。
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// StoreConfig 描述交互日志的存储后端。
type StoreConfig struct {
	Backend       string `env:"LOG_BACKEND" envDefault:"sqlite"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"contra.db"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_KEY_PREFIX" envDefault:"contra"`
}

// PersonaConfig points at an optional YAML persona catalog.
type PersonaConfig struct {
	CatalogPath string `env:"PERSONA_CATALOG_PATH"`
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	addr, err := listenAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr

	if cfg.Server.HistoryLimit < 1 {
		return nil, fmt.Errorf("invalid HISTORY_LIMIT value %d: must be positive", cfg.Server.HistoryLimit)
	}

	cfg.Store.Backend = orDefault(strings.ToLower(strings.TrimSpace(cfg.Store.Backend)), BackendSQLite)
	switch cfg.Store.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid LOG_BACKEND value %q", cfg.Store.Backend)
	}

	cfg.Logging.Format = orDefault(strings.ToLower(strings.TrimSpace(cfg.Logging.Format)), "json")
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		return nil, fmt.Errorf("invalid LOG_FORMAT value %q", cfg.Logging.Format)
	}

	return &cfg, nil
}

// listenAddr 解析服务器监听地址。
func listenAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "5000"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
