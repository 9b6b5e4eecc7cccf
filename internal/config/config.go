// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	CatalogAPI  CatalogAPIConfig
	JWT         JWTConfig
	Admin       AdminConfig
	AWS         AWSConfig
	Refresher   RefresherConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// CatalogAPIConfig points at the upstream catalog API that owns every
// record this service manages.
type CatalogAPIConfig struct {
	BaseURL string
	Token   string
	Timeout int // in seconds
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  int // in hours
	RefreshTokenTTL int // in hours
}

// AdminConfig holds the credentials of the administrator account and
// the company it manages. Authentication is deliberately thin; the
// upstream is the system of record for everything else.
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt
	CompanyID    string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

// RefresherConfig tunes the consistency refresher: how long to wait
// before the single retry on an inconsistent read, and how often an
// open detail view re-marks its query stale.
type RefresherConfig struct {
	RetryDelayMs    int
	PollIntervalSec int
}

func (c RefresherConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

func (c RefresherConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSec) * time.Second
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		CatalogAPI: CatalogAPIConfig{
			BaseURL: getEnv("CATALOG_API_URL", "http://localhost:3000"),
			Token:   getEnv("CATALOG_API_TOKEN", ""),
			Timeout: getEnvAsInt("CATALOG_API_TIMEOUT", 10),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL:  getEnvAsInt("JWT_ACCESS_TTL", 24),   // 24 hours
			RefreshTokenTTL: getEnvAsInt("JWT_REFRESH_TTL", 168), // 7 days
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			CompanyID:    getEnv("ADMIN_COMPANY_ID", ""),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "ango-storefront-assets"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Refresher: RefresherConfig{
			RetryDelayMs:    getEnvAsInt("REFRESHER_RETRY_DELAY_MS", 500),
			PollIntervalSec: getEnvAsInt("REFRESHER_POLL_INTERVAL", 5),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "pt_BR"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Environment == "production" {
		if c.Admin.PasswordHash == "" {
			return fmt.Errorf("admin password hash is required in production")
		}
		if c.Admin.CompanyID == "" {
			return fmt.Errorf("admin company id is required in production")
		}
	}

	if c.Refresher.RetryDelayMs <= 0 {
		return fmt.Errorf("refresher retry delay must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
