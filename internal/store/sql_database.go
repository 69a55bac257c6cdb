package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/migrations"
)

// DB is the ledger database shared by every repository.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewConnect opens the ledger database named by the DSN: PostgreSQL for
// postgres:// URLs, a SQLite file otherwise.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect reports which SQL dialect the connection speaks.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

func (db *DB) queries() queryBuilder {
	return newQueryBuilder(db.dialect)
}

// classify maps a driver error onto the package sentinels, keeping the
// original error in the chain.
func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}

	switch db.errorClassificator.Classify(err) {
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case Retryable:
		return fmt.Errorf("%w: %w", ErrDatabaseBusy, err)
	default:
		return err
	}
}

func newQueryBuilder(dialect migrations.Dialect) queryBuilder {
	format := sq.PlaceholderFormat(sq.Question)
	if dialect == migrations.DialectPostgres {
		format = sq.Dollar
	}

	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

// DeviceIDPath is where the device id lives: next to a SQLite file, or in
// the backup directory for server databases.
func DeviceIDPath(cfg config.Storage) string {
	if isPostgresDSN(cfg.DB.DSN) {
		return filepath.Join(cfg.Backup.Dir, "device_id")
	}
	return sqliteFilePath(cfg.DB.DSN) + ".device"
}
