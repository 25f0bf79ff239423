package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	API        APIConfig
	Pagination PaginationConfig
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"gt=0,lte=65535"`
	User     string `validate:"required"`
	Password string
	DBName   string `validate:"required"`
	SSLMode  string `validate:"oneof=disable require verify-ca verify-full"`
}

// RedisConfig holds the event log's Redis settings
type RedisConfig struct {
	URL       string `validate:"required,url"`
	EventsKey string `validate:"required"`
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port int `validate:"gt=0,lte=65535"`
}

// PaginationConfig holds the page sizes of the list endpoints
type PaginationConfig struct {
	PageSize     int `validate:"gt=0"`
	MaxPageSize  int `validate:"gtefield=PageSize"`
	DefaultLimit int `validate:"gt=0"`
	MaxLimit     int `validate:"gtefield=DefaultLimit"`

	CursorPageSize     int `validate:"gt=0,ltefield=MaxPageSize"`
	CursorOffsetCutoff int `validate:"gt=0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	ints := map[string]int{}
	for key, def := range map[string]string{
		"DB_PORT":              "5432",
		"API_PORT":             "8080",
		"PAGE_SIZE":            "20",
		"MAX_PAGE_SIZE":        "100",
		"DEFAULT_LIMIT":        "20",
		"MAX_LIMIT":            "100",
		"CURSOR_PAGE_SIZE":     "20",
		"CURSOR_OFFSET_CUTOFF": "1000",
	} {
		n, err := strconv.Atoi(getEnv(key, def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		ints[key] = n
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     ints["DB_PORT"],
			User:     getEnv("DB_USER", "linkpager"),
			Password: getEnv("DB_PASSWORD", "linkpager"),
			DBName:   getEnv("DB_NAME", "linkpager"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
			EventsKey: getEnv("EVENTS_KEY", "linkpager:events"),
		},
		API: APIConfig{
			Port: ints["API_PORT"],
		},
		Pagination: PaginationConfig{
			PageSize:           ints["PAGE_SIZE"],
			MaxPageSize:        ints["MAX_PAGE_SIZE"],
			DefaultLimit:       ints["DEFAULT_LIMIT"],
			MaxLimit:           ints["MAX_LIMIT"],
			CursorPageSize:     ints["CURSOR_PAGE_SIZE"],
			CursorOffsetCutoff: ints["CURSOR_OFFSET_CUTOFF"],
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every section against its constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
