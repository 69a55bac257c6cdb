package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

// Storages groups everything the service layer needs from one ledger
// database. The mobile server and the desktop client each open their own.
type Storages struct {
	DB            *DB
	Accounts      AccountDirectory
	AccountStores AccountStoreProvider
	Backups       BackupManager
}

// NewStorages connects to cfg.DB, applies migrations and wires the
// repositories, the per-account store pool and the backup manager.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	accounts := NewAccountDirectory(db, logger)
	pool := NewAccountStorePool(db, accounts, cfg.Pool.IdleTTL, logger)

	backups, err := NewFileBackupManager(cfg.Backup.Dir, db, pool, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("backup manager: %w", err)
	}

	return &Storages{
		DB:            db,
		Accounts:      accounts,
		AccountStores: pool,
		Backups:       backups,
	}, nil
}

// Close closes the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
