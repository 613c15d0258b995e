package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "your-access-secret-change-in-production"

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Storage StorageConfig
	NATS    NATSConfig
	Export  ExportConfig
	Auth    AuthConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// SessionConfig selects where logged-in user records live
type SessionConfig struct {
	Backend string        `envconfig:"SESSION_BACKEND" default:"memory"` // "memory" or "redis"
	TTL     time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret string        `envconfig:"JWT_ACCESS_SECRET" default:"your-access-secret-change-in-production"`
	AccessExpiry time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"24h"`
}

// StorageConfig holds storage configuration for the export archive
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"notulensi"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string `envconfig:"STORAGE_PUBLIC_URL"`
}

// NATSConfig holds the meeting event broker address. Empty disables publishing.
type NATSConfig struct {
	URL string `envconfig:"NATS_URL"`
}

// ExportConfig holds document export settings
type ExportConfig struct {
	Locale string `envconfig:"EXPORT_LOCALE" default:"id"`
}

// AuthConfig holds password hashing settings
type AuthConfig struct {
	BcryptCost int `envconfig:"AUTH_BCRYPT_COST" default:"10"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv populates a Config from the process environment without reading .env
func FromEnv() (*Config, error) {
	config := &Config{}
	sections := []struct {
		name string
		spec interface{}
	}{
		{"server", &config.Server},
		{"session", &config.Session},
		{"redis", &config.Redis},
		{"jwt", &config.JWT},
		{"storage", &config.Storage},
		{"nats", &config.NATS},
		{"export", &config.Export},
		{"auth", &config.Auth},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.spec); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("SESSION_BACKEND must be memory or redis, got %q", c.Session.Backend)
	}
	switch c.Export.Locale {
	case "id", "en":
	default:
		return fmt.Errorf("EXPORT_LOCALE must be id or en, got %q", c.Export.Locale)
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.IsProduction() && c.JWT.AccessSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET must be changed in production")
	}
	if c.Storage.Enabled && c.Storage.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_ENABLED is set")
	}
	return nil
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
