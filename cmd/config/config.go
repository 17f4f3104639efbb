package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Etsy        EtsyConfig
	Sync        SyncConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type EtsyConfig struct {
	APIBaseURL     string
	OAuthTokenURL  string
	APIKey         string
	ShopID         string
	AccessToken    string
	RefreshToken   string
	RequestTimeout time.Duration
	// RateLimit is requests per second against the Etsy API.
	RateLimit float64
}

type SyncConfig struct {
	// CronSecret authorizes the scheduled trigger on /internal endpoints.
	CronSecret string
	// OverwritePending restores last-writer-wins pulls: products with
	// unpushed local edits get overwritten instead of skipped.
	OverwritePending bool
	CacheTTL         time.Duration
}

// Load reads configuration from environment variables, loading .env first
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "storesync"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Etsy: EtsyConfig{
			APIBaseURL:     getEnv("ETSY_API_BASE_URL", "https://openapi.etsy.com/v3"),
			OAuthTokenURL:  getEnv("ETSY_OAUTH_TOKEN_URL", "https://api.etsy.com/v3/public/oauth/token"),
			APIKey:         getEnv("ETSY_API_KEY", ""),
			ShopID:         getEnv("ETSY_SHOP_ID", ""),
			AccessToken:    getEnv("ETSY_ACCESS_TOKEN", ""),
			RefreshToken:   getEnv("ETSY_REFRESH_TOKEN", ""),
			RequestTimeout: getEnvDuration("ETSY_REQUEST_TIMEOUT", 30*time.Second),
			RateLimit:      getEnvFloat("ETSY_RATE_LIMIT", 5),
		},
		Sync: SyncConfig{
			CronSecret:       getEnv("CRON_SECRET", ""),
			OverwritePending: getEnvBool("SYNC_OVERWRITE_PENDING", false),
			CacheTTL:         getEnvDuration("SYNC_CACHE_TTL", time.Minute),
		},
	}
}

// GetDSN builds the MySQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
