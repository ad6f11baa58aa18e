package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Port:                  "8080",
		DBDriver:              DriverSQLite,
		DBConnectionString:    "file:budget.db",
		JWTSecret:             "secret",
		AccessTokenTTL:        15 * time.Minute,
		RefreshTokenTTL:       720 * time.Hour,
		LogFormat:             "text",
		RevocationCleanupSpec: "@every 10m",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "unknown driver",
			mutate:      func(c *Config) { c.DBDriver = "mysql" },
			wantErr:     true,
			errorString: "invalid database driver 'mysql'",
		},
		{
			name:        "missing jwt secret",
			mutate:      func(c *Config) { c.JWTSecret = "" },
			wantErr:     true,
			errorString: "missing JWT_SECRET",
		},
		{
			name:        "refresh shorter than access",
			mutate:      func(c *Config) { c.RefreshTokenTTL = time.Minute },
			wantErr:     true,
			errorString: "invalid refresh token ttl",
		},
		{
			name:        "bad cron spec",
			mutate:      func(c *Config) { c.RevocationCleanupSpec = "every now and then" },
			wantErr:     true,
			errorString: "invalid revocation cleanup schedule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateCollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.JWTSecret = ""
	cfg.DBConnectionString = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
	assert.Contains(t, err.Error(), "missing JWT_SECRET")
	assert.Contains(t, err.Error(), "missing DB_CONNECTION_STRING")
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_CONNECTION_STRING", "file:test.db")
	t.Setenv("JWT_SECRET", "top-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("SEED_SAMPLE_DATA", "false")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:test.db", cfg.DBConnectionString)
	assert.Equal(t, "top-secret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenTTL)
	assert.False(t, cfg.SeedSampleData)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "soon")
	t.Setenv("SEED_SAMPLE_DATA", "maybe")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.True(t, cfg.SeedSampleData)
}
