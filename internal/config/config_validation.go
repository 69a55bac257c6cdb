// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strings"

	"github.com/Rhymond/go-money"
)

// validate checks the merged mobile server configuration.
func (cfg *StructuredConfig) validate() error {
	if !validDSN(cfg.Storage.DB.DSN) || cfg.Storage.Backup.Dir == "" || cfg.Storage.Backup.Keep < 0 {
		return ErrInvalidStorageConfigs
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.BackupPruneInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !validDSN(cfg.Storage.DB.DSN) || cfg.Storage.Backup.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if money.GetCurrency(strings.ToUpper(cfg.App.Currency)) == nil {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validDSN rejects empty and in-memory DSNs: an in-memory ledger would lose
// every synced transaction on exit.
func validDSN(dsn string) bool {
	return dsn != "" && !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory")
}
