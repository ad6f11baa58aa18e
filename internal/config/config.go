package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// HTTP server
	Port            string
	ShutdownTimeout time.Duration

	// Database
	DBDriver           string
	DBConnectionString string

	// Auth
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Background jobs
	RevocationCleanupSpec string

	SeedSampleData bool
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, continuing with system environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DBDriver:           getEnv("DB_DRIVER", DriverPostgres),
		DBConnectionString: getEnv("DB_CONNECTION_STRING", ""),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 720*time.Hour),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		RevocationCleanupSpec: getEnv("REVOCATION_CLEANUP_SPEC", "@every 10m"),

		SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", true),
	}
}

// Validate returns every configuration problem in a single error.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("invalid database driver '%s': must be one of [%s %s]", c.DBDriver, DriverPostgres, DriverSQLite))
	}

	if c.DBConnectionString == "" {
		problems = append(problems, "missing DB_CONNECTION_STRING")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "missing JWT_SECRET")
	}

	if c.AccessTokenTTL <= 0 {
		problems = append(problems, fmt.Sprintf("invalid access token ttl %v: must be positive", c.AccessTokenTTL))
	}
	if c.RefreshTokenTTL < c.AccessTokenTTL {
		problems = append(problems, fmt.Sprintf("invalid refresh token ttl %v: must not be shorter than the access token ttl", c.RefreshTokenTTL))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if _, err := cron.ParseStandard(c.RevocationCleanupSpec); err != nil {
		problems = append(problems, fmt.Sprintf("invalid revocation cleanup schedule '%s': %v", c.RevocationCleanupSpec, err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
