package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when CONFIG_PATH is not set.
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		SecureCookies bool   `yaml:"secure_cookies" env:"SERVER_SECURE_COOKIES"`
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Auth struct {
		SessionSecret            string `yaml:"session_secret" env:"JWT_SECRET"`
		SessionTTL               string `yaml:"session_ttl" env:"SESSION_TTL"`
		RefreshWindow            string `yaml:"refresh_window" env:"SESSION_REFRESH_WINDOW"`
		Issuer                   string `yaml:"issuer" env:"JWT_ISSUER"`
		BcryptCost               int    `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
		LegacyPlaintextMigration bool   `yaml:"legacy_plaintext_migration" env:"AUTH_LEGACY_PLAINTEXT_MIGRATION"`
	} `yaml:"auth"`

	Bootstrap struct {
		Username    string `yaml:"username" env:"BOOTSTRAP_USERNAME"`
		Password    string `yaml:"password" env:"BOOTSTRAP_PASSWORD"`
		Name        string `yaml:"name" env:"BOOTSTRAP_NAME"`
		PhoneNumber string `yaml:"phone_number" env:"BOOTSTRAP_PHONE_NUMBER"`
	} `yaml:"bootstrap"`

	Export struct {
		CSVStrict bool `yaml:"csv_strict" env:"EXPORT_CSV_STRICT"`
	} `yaml:"export"`

	App struct {
		Name  string `yaml:"name" env:"APP_NAME"`
		Brand string `yaml:"brand" env:"APP_BRAND"`
		Year  int    `yaml:"year" env:"APP_YEAR"`
	} `yaml:"app"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// ErrMissingSessionSecret is returned when no signing secret is configured.
var ErrMissingSessionSecret = errors.New("session secret is required (set JWT_SECRET or auth.session_secret)")

// ResolvePath returns the config file path from CONFIG_PATH or the default.
func ResolvePath() string {
	return GetEnv("CONFIG_PATH", DefaultConfigPath)
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; env vars alone are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "ramadan_data"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Auth.SessionTTL = "24h"
	config.Auth.RefreshWindow = "12h"
	config.Auth.Issuer = "ramadan-data"
	config.Auth.BcryptCost = 10

	config.Bootstrap.Username = "admin"
	config.Bootstrap.Name = "Administrator"
	config.Bootstrap.PhoneNumber = "0000000000"

	config.App.Name = "Ramadan Data Collection"
	config.App.Brand = "qmexai"
	config.App.Year = 2026

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Auth.SessionSecret) == "" {
		return ErrMissingSessionSecret
	}

	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database url or host is required")
	}

	if _, err := time.ParseDuration(config.Auth.SessionTTL); err != nil {
		return fmt.Errorf("invalid session ttl format: %w", err)
	}

	if _, err := time.ParseDuration(config.Auth.RefreshWindow); err != nil {
		return fmt.Errorf("invalid session refresh window format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime format: %w", err)
	}

	if config.Auth.BcryptCost < 4 || config.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31, got %d", config.Auth.BcryptCost)
	}

	if strings.TrimSpace(config.Bootstrap.Username) == "" {
		return fmt.Errorf("bootstrap username is required")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
