package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "shuttle"

[auth]
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 12, cfg.Booking.DefaultCapacity)
	assert.Equal(t, 30, cfg.Booking.GenerationWindowDays)
	assert.Equal(t, 35.0, cfg.Pricing.DefaultBasePrice)
	assert.Equal(t, 10.0, cfg.Pricing.DefaultExtraLuggageFee)
	assert.Equal(t, 15.0, cfg.Pricing.DefaultPetFee)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "jwt-from-env")

	path := writeConfig(t, `
[database]
dbname = "shuttle"
password = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "jwt-from-env", cfg.Auth.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing dbname",
			body: "[auth]\njwt_secret = \"s\"\n",
		},
		{
			name: "missing jwt secret",
			body: "[database]\ndbname = \"shuttle\"\n",
		},
		{
			name: "capacity out of range",
			body: "[database]\ndbname = \"shuttle\"\n[auth]\njwt_secret = \"s\"\n[booking]\ndefault_capacity = 500\n",
		},
		{
			name: "admin without hash",
			body: "[database]\ndbname = \"shuttle\"\n[auth]\njwt_secret = \"s\"\n[[auth.admins]]\nusername = \"admin\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[database\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p@ss",
		DBName:   "shuttle",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://u:p%40ss@db:5433/shuttle?sslmode=disable", c.DSN())
}
