package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the gateway.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Storage  StorageConfig
	Session  SessionConfig
	Logger   LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// UpstreamConfig points at the helpdesk REST backend.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// StorageConfig holds object storage connection values for attachments.
type StorageConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UseSSL           bool
	PresignTTLHours  int
	UploadPathPrefix string
}

// SessionConfig holds Redis connection values for the session store.
type SessionConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTLMinutes    int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("SESSION_REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "helpdesk-gateway"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "http://127.0.0.1:3000"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15),
		},
		Storage: StorageConfig{
			Endpoint:         getEnv("STORAGE_ENDPOINT", "127.0.0.1:9000"),
			AccessKey:        os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey:        os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:           getEnv("STORAGE_BUCKET", "providesk-media"),
			UseSSL:           getEnvAsBool("STORAGE_USE_SSL", false),
			PresignTTLHours:  getEnvAsInt("STORAGE_PRESIGN_TTL_HOURS", 6),
			UploadPathPrefix: getEnv("STORAGE_UPLOAD_PATH_PREFIX", "attachments"),
		},
		Session: SessionConfig{
			RedisAddr:     getEnv("SESSION_REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword: os.Getenv("SESSION_REDIS_PASSWORD"),
			RedisDB:       redisDB,
			TTLMinutes:    getEnvAsInt("SESSION_TTL_MINUTES", 720),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the upstream HTTP client timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// PresignTTL returns the lifetime of generated retrieval URLs.
func (s StorageConfig) PresignTTL() time.Duration {
	if s.PresignTTLHours <= 0 {
		return 6 * time.Hour
	}
	return time.Duration(s.PresignTTLHours) * time.Hour
}

// TTL returns the session lifetime.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
