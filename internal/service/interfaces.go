// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SyncCoordinatorWrapper

// TransactionReconciler decides whether two transactions describe the same
// real-world event. No identifier travels between devices, so identity is
// structural.
type TransactionReconciler interface {
	// IsDuplicate reports whether candidate matches any of existing.
	IsDuplicate(candidate models.SyncTransaction, existing []models.SyncTransaction) bool
	// Filter returns the incoming transactions that duplicate nothing in
	// existing, and how many were skipped.
	Filter(existing, incoming []models.SyncTransaction) (toInsert []models.SyncTransaction, skipped int)
	// NewerThan returns the incoming transactions dated strictly after the
	// latest existing one. cutoff is nil when existing is empty.
	NewerThan(existing, incoming []models.SyncTransaction) (toInsert []models.SyncTransaction, cutoff *models.Date)
}

// AccountMapper resolves a wire account to an account of this device.
type AccountMapper interface {
	// Resolve looks up TargetAccountID. A missing or unknown id yields
	// ErrTargetAccountNotResolved.
	Resolve(ctx context.Context, account models.SyncAccount) (models.Account, error)
	// Create inserts a new local account described by account.
	Create(ctx context.Context, account models.SyncAccount) (models.Account, error)
}

// WarningPolicy produces the human-readable risk note of a comparison.
type WarningPolicy interface {
	Warn(comparison models.SyncComparison, mode models.SyncMode) (string, bool)
}

// SyncCoordinator runs the two-phase sync protocol on one device.
type SyncCoordinator interface {
	// Prepare backs up the ledger and compares the request against local
	// state. It never changes transactions.
	Prepare(ctx context.Context, request models.SyncPrepareRequest) (models.SyncPrepareResponse, error)
	// Execute applies a confirmed request. MobileToDesktop only packages
	// local data; DesktopToMobile mutates this device.
	Execute(ctx context.Context, request models.SyncExecuteRequest) (models.SyncExecuteResponse, error)
	// ApplyAsDestination runs the destination strategy of mode for every
	// account. Failures are reported per account.
	ApplyAsDestination(ctx context.Context, mode models.SyncMode, accounts []models.SyncAccount) (models.SyncExecuteResponse, error)
}

// SyncCoordinatorWrapper decorates a SyncCoordinator, e.g. with validation.
type SyncCoordinatorWrapper interface {
	Wrap(SyncCoordinator) SyncCoordinator
}

// AccountService serves the read-only ledger endpoints.
type AccountService interface {
	GetAccounts(ctx context.Context) ([]models.AccountSummary, error)
	GetAccountTransactions(ctx context.Context, accountID int64) ([]models.SyncTransaction, error)
	GetAllTransactions(ctx context.Context) ([]models.AccountTransactions, error)
}

// AppInfoService describes this device and build.
type AppInfoService interface {
	Ping(ctx context.Context) models.PingResponse
	Info(ctx context.Context) models.InfoResponse
	GetAppVersion(ctx context.Context) string
}

// BackupService exposes ledger snapshots.
type BackupService interface {
	CreateBackup(ctx context.Context, reason, tag string) (models.BackupResult, error)
	ListBackups(ctx context.Context) ([]models.BackupInfo, error)
	Restore(ctx context.Context, path string) (models.RestoreResponse, error)
	// Prune keeps the newest keep snapshots.
	Prune(ctx context.Context, keep int) (int, error)
}
