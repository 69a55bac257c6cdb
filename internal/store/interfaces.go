// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountDirectory is the device-local list of accounts. Account ids are
// only ever resolved here; ids from the other device are never assumed to
// match.
type AccountDirectory interface {
	GetAllAccounts(ctx context.Context) ([]models.Account, error)
	GetAccountByID(ctx context.Context, id int64) (models.Account, error)
	InsertAccount(ctx context.Context, account models.Account) (int64, error)
}

// AccountStore is a handle to the transactions of exactly one account.
// Handles are obtained from an [AccountStoreProvider] and are only valid
// until released.
type AccountStore interface {
	AccountID() int64
	GetAllTransactions(ctx context.Context) ([]models.Transaction, error)
	InsertTransaction(ctx context.Context, transaction models.Transaction) (int64, error)
	DeleteTransaction(ctx context.Context, id int64) error
	GetTotalBalance(ctx context.Context, openingBalance decimal.Decimal) (decimal.Decimal, error)
	// WithinTx runs fn against a handle whose reads and writes share one
	// database transaction; any error from fn rolls all of them back.
	WithinTx(ctx context.Context, fn func(tx AccountStore) error) error
}

// AccountStoreProvider hands out exclusive per-account handles. The returned
// release func must be called exactly once; extra calls are no-ops.
type AccountStoreProvider interface {
	Acquire(ctx context.Context, accountID int64) (AccountStore, func(), error)
}

// BackupManager snapshots and restores the whole ledger.
type BackupManager interface {
	// CreateBackup writes a snapshot labeled with reason and tag.
	CreateBackup(ctx context.Context, reason, tag string) (models.BackupResult, error)
	// RestoreBackup replaces the ledger with the snapshot at path. A
	// pre_restore snapshot of the current state is taken first.
	RestoreBackup(ctx context.Context, path string) (bool, error)
	GetBackupBasePath() string
	// ListBackups returns snapshots newest first.
	ListBackups(ctx context.Context) ([]models.BackupInfo, error)
	// Prune deletes all but the newest keep snapshots and returns how many
	// were removed. keep <= 0 keeps everything.
	Prune(ctx context.Context, keep int) (int, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
