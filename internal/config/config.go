package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Пустой DATABASE_URL включает каталог инцидентов в памяти
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Live events
	LiveEventsChannel string `env:"LIVE_EVENTS_CHANNEL" envDefault:"live_events"`
	LiveLogCapacity   int    `env:"LIVE_LOG_CAPACITY" envDefault:"10"`

	// Workflow
	DefaultWorkflowCategory string `env:"DEFAULT_WORKFLOW_CATEGORY" envDefault:"SOS"`

	// Dispatch Config
	DispatchURL        string        `env:"DISPATCH_URL"`
	DispatchSecret     string        `env:"DISPATCH_SECRET"`
	DispatchTimeout    time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"5s"`
	DispatchMaxRetries int           `env:"DISPATCH_MAX_RETRIES" envDefault:"3"`
	DispatchBaseDelay  time.Duration `env:"DISPATCH_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		DBMaxConns:              getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		CacheTTL:                getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		LiveEventsChannel:       getEnv("LIVE_EVENTS_CHANNEL", "live_events"),
		LiveLogCapacity:         getEnvAsInt("LIVE_LOG_CAPACITY", 10),
		DefaultWorkflowCategory: strings.ToUpper(getEnv("DEFAULT_WORKFLOW_CATEGORY", "SOS")),
		DispatchURL:             os.Getenv("DISPATCH_URL"),
		DispatchSecret:          os.Getenv("DISPATCH_SECRET"),
		DispatchTimeout:         getEnvAsDuration("DISPATCH_TIMEOUT", 5*time.Second),
		DispatchMaxRetries:      getEnvAsInt("DISPATCH_MAX_RETRIES", 3),
		DispatchBaseDelay:       getEnvAsDuration("DISPATCH_BASE_DELAY", time.Second),
		APIKeys:                 splitList(os.Getenv("API_KEYS")),
	}

	if cfg.LiveLogCapacity <= 0 {
		return nil, fmt.Errorf("LIVE_LOG_CAPACITY must be positive, got %d", cfg.LiveLogCapacity)
	}
	if cfg.DBMaxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}
	if cfg.DispatchMaxRetries < 1 {
		return nil, fmt.Errorf("DISPATCH_MAX_RETRIES must be at least 1, got %d", cfg.DispatchMaxRetries)
	}

	return cfg, nil
}

// splitList разбирает список через запятую, пропуская пустые элементы
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
