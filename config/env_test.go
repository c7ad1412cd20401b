package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/warehouse/config"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.LoadFrom(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "warehouse.db?_foreign_keys=on", cfg.Database.DSN)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadFrom_LayeringOrder(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "app.json", `{"app_port": "7000", "db_driver": "postgres", "db_max_open_conns": 7}`)
	envPath := writeFile(t, dir, ".env", "APP_PORT=7100\nDB_SLOW_QUERY=1s\n# comment\nCORS_ALLOWED_ORIGINS=\"https://a.example, https://b.example\"\n")

	t.Setenv("APP_PORT", "7200")

	cfg, err := config.LoadFrom(jsonPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, "7200", cfg.App.Port, "process environment wins")
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN, "dbname=warehouse")
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Second, cfg.Database.SlowQuery)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadFrom_UnsupportedDriver(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "DB_DRIVER=oracle\n")

	_, err := config.LoadFrom(filepath.Join(dir, "none.json"), envPath)
	assert.Error(t, err)
}

func TestLoadFrom_ProductionLogLevel(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "APP_ENV=production\nSHUTDOWN_TIMEOUT=3\n")

	cfg, err := config.LoadFrom(filepath.Join(dir, "none.json"), envPath)
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoadFrom_EmptyGRPCPortDisables(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "GRPC_PORT=\n")

	cfg, err := config.LoadFrom(filepath.Join(dir, "none.json"), envPath)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.App.GRPCPort)
}
