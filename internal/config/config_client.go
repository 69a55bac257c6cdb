package config

import (
	"fmt"
	"time"
)

// ClientApp holds desktop application settings.
type ClientApp struct {
	// HashKey signs requests to the mobile server.
	HashKey string
	// Currency formats amounts in CLI output.
	Currency string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ClientAdapter holds the mobile server address and transport limits.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	RetryCount     int
}

// ClientConfig is the desktop view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	// Storage is the desktop's own ledger. The desktop keeps a full ledger
	// because MobileToDesktop syncs are applied locally.
	Storage Storage
}

// ClientFlags are the desktop CLI global flags. They take precedence over
// the JSON file but not over environment variables, like server flags do.
type ClientFlags struct {
	ServerAddress string
	DSN           string
	BackupDir     string
	ConfigPath    string
	HashKey       string
}

func (f ClientFlags) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App:          App{HashKey: f.HashKey},
		Storage:      Storage{DB: DB{DSN: f.DSN}, Backup: Backup{Dir: f.BackupDir}},
		Adapter:      Adapter{HTTPAddress: f.ServerAddress},
		JSONFilePath: f.ConfigPath,
	}
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Currency: "USD"},
		Storage: Storage{
			DB:     DB{DSN: "desktop-ledger.db"},
			Backup: Backup{Dir: "desktop-backups"},
			Pool:   Pool{IdleTTL: 10 * time.Minute},
		},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
			RetryCount:     3,
		},
	}
}

// GetClientConfig builds and validates the desktop configuration.
func GetClientConfig(flags ClientFlags) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withValues(flags.toStructured()).
		withJSON().
		withDefaults(clientDefaults()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			Currency: cfg.App.Currency,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: cfg.Storage,
	}

	return clientCfg, clientCfg.validate()
}
