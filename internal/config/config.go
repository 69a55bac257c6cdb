// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration of both binaries. The mobile
// server reads it directly; the desktop CLI reads the [ClientConfig] view.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and integrity settings.
	App App `envPrefix:"APP_"`

	// Storage holds the ledger database, backup and handle pool settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the mobile HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the desktop's view of the mobile server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// HashKey is the shared secret for the HashSHA256 request integrity
	// header. Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /info.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DeviceName is reported by GET /ping.
	// Env: APP_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`

	// Currency is the ISO 4217 code used to format amounts in the desktop
	// CLI output.
	// Env: APP_CURRENCY
	Currency string `env:"CURRENCY"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups persistence settings.
type Storage struct {
	DB     DB     `envPrefix:"DB_"`
	Backup Backup `envPrefix:"BACKUP_"`
	Pool   Pool   `envPrefix:"POOL_"`
}

// DB holds the ledger database connection settings.
type DB struct {
	// DSN is a SQLite file path (default) or a postgres:// URL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Backup holds the snapshot directory settings.
type Backup struct {
	// Dir is where pre-sync snapshots are written.
	// Env: STORAGE_BACKUP_DIR
	Dir string `env:"DIR"`

	// Keep is how many snapshots the pruner retains. Zero keeps all.
	// Env: STORAGE_BACKUP_KEEP
	Keep int `env:"KEEP"`
}

// Pool holds the per-account store handle pool settings.
type Pool struct {
	// IdleTTL is how long an unused account handle stays cached.
	// Env: STORAGE_POOL_IDLE_TTL
	IdleTTL time.Duration `env:"IDLE_TTL"`
}

// Server holds the mobile HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the desktop's outbound settings.
type Adapter struct {
	// HTTPAddress is the mobile server address, host:port or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries for idempotent GET requests.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Workers holds background worker settings.
type Workers struct {
	// BackupPruneInterval is how often old snapshots are pruned. Zero
	// disables the pruner.
	// Env: WORKERS_BACKUP_PRUNE_INTERVAL
	BackupPruneInterval time.Duration `env:"BACKUP_PRUNE_INTERVAL"`
}

// GetStructuredConfig loads the mobile server configuration from, in order
// of precedence, environment variables (a .env file included), command-line
// flags, the JSON file and built-in defaults, then validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults(serverDefaults()).
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DeviceName: hostname(),
		},
		Storage: Storage{
			DB:     DB{DSN: "ledger.db"},
			Backup: Backup{Dir: "backups", Keep: 20},
			Pool:   Pool{IdleTTL: 10 * time.Minute},
		},
		Server: Server{
			HTTPAddress: ":8080",
		},
		Workers: Workers{
			BackupPruneInterval: time.Hour,
		},
	}
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "ledger-device"
	}
	return name
}
