package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"fleetdispatch/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8082", cfg.HTTPPort)
	assert.Equal(t, cmd.StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.False(t, cfg.MigrateOnStart)
	assert.Empty(t, cfg.AuthJWTSecret)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("CORS_ORIGINS", "http://localhost:3001, http://example.com")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, cmd.StoreDriverMemory, cfg.StoreDriver)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, []string{"http://localhost:3001", "http://example.com"}, cfg.CORSOrigins)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_JWT_SECRET=from-file\nLOG_FORMAT=text\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("AUTH_JWT_SECRET")
		_ = os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := cmd.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.AuthJWTSecret)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "fleet",
		DBPassword: "p@ss",
		DBName:     "dispatch",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "postgres://fleet:p%40ss@db:5432/dispatch?sslmode=disable", cfg.DSN())
}
