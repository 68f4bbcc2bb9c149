package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Trip sources
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Dataset  DatasetConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// DatasetConfig selects where trips come from and how they are paged.
type DatasetConfig struct {
	Source   string
	DataDir  string
	PageSize int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LoggingConfig struct {
	Level    string
	FilePath string
	Console  bool
}

// LoadEnvFile loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		Dataset: DatasetConfig{
			Source:   strings.ToLower(getEnv("BIKESHARE_SOURCE", SourceCSV)),
			DataDir:  getEnv("BIKESHARE_DATA_DIR", "."),
			PageSize: getIntEnv("BIKESHARE_PAGE_SIZE", 5),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "bikeshare"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", "bikeshare.log"),
			Console:  getBoolEnv("LOG_CONSOLE", false),
		},
	}

	return cfg, nil
}

// Validate checks the settings a session needs before it starts.
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceCSV:
		if c.Dataset.DataDir == "" {
			return fmt.Errorf("%w: data directory is empty", ErrInvalidConfig)
		}
	case SourcePostgres:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, c.Dataset.Source)
	}
	if c.Dataset.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidConfig, c.Dataset.PageSize)
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: DB_HOST is empty", ErrInvalidConfig)
	}
	if c.DBName == "" {
		return fmt.Errorf("%w: DB_NAME is empty", ErrInvalidConfig)
	}
	return nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
