// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY":    "integrity",
		"APP_VERSION":     "1.4.0",
		"APP_DEVICE_NAME": "pixel",
		"APP_CURRENCY":    "EUR",
		"APP_LOG_LEVEL":   "info",

		"SERVER_ADDRESS":         "0.0.0.0:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DSN":        "/data/ledger.db",
		"STORAGE_BACKUP_DIR":    "/data/backups",
		"STORAGE_BACKUP_KEEP":   "5",
		"STORAGE_POOL_IDLE_TTL": "2m",

		"ADAPTER_ADDRESS":         "192.168.1.20:8080",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_RETRY_COUNT":     "4",

		"WORKERS_BACKUP_PRUNE_INTERVAL": "1h",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "integrity", cfg.App.HashKey)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "pixel", cfg.App.DeviceName)
	assert.Equal(t, "EUR", cfg.App.Currency)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/data/ledger.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/backups", cfg.Storage.Backup.Dir)
	assert.Equal(t, 5, cfg.Storage.Backup.Keep)
	assert.Equal(t, 2*time.Minute, cfg.Storage.Pool.IdleTTL)

	assert.Equal(t, "192.168.1.20:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Adapter.RetryCount)

	assert.Equal(t, time.Hour, cfg.Workers.BackupPruneInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_BACKUP_KEEP": "many"})

	assert.Error(t, parseEnv(&StructuredConfig{}))
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	withDotEnvFile(t, filepath.Join(t.TempDir(), ".env"))

	assert.NoError(t, loadDotEnv())
}

func TestLoadDotEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_DEVICE_NAME=from-file\nAPP_VERSION=from-file\n"), 0o600))
	withDotEnvFile(t, path)
	t.Setenv("APP_VERSION", "from-env")

	require.NoError(t, loadDotEnv())

	assert.Equal(t, "from-file", os.Getenv("APP_DEVICE_NAME"))
	assert.Equal(t, "from-env", os.Getenv("APP_VERSION"))
}

// Helpers

func withDotEnvFile(t *testing.T, path string) {
	t.Helper()
	prev := dotEnvFile
	dotEnvFile = path
	t.Cleanup(func() { dotEnvFile = prev })
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_HASH_KEY",
		"APP_VERSION",
		"APP_DEVICE_NAME",
		"APP_CURRENCY",
		"APP_LOG_LEVEL",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"STORAGE_DB_DSN",
		"STORAGE_BACKUP_DIR",
		"STORAGE_BACKUP_KEEP",
		"STORAGE_POOL_IDLE_TTL",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_RETRY_COUNT",

		"WORKERS_BACKUP_PRUNE_INTERVAL",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
