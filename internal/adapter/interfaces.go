// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the desktop's transport to the mobile ledger server.
//
// [ServerAdapter] decouples the desktop services from HTTP. Error values in
// errors.go are mapped from HTTP status codes by mapHTTPError so callers can
// use [errors.Is] without looking at status codes (e.g. [ErrBadRequest] for
// a rejected sync request).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to one mobile device.
//
// Read calls may be retried by the implementation. Prepare, Execute and
// Restore are sent exactly once: the server takes a backup on every one of
// them and an Execute replay could double-apply a Merge.
type ServerAdapter interface {
	Ping(ctx context.Context) (models.PingResponse, error)
	Info(ctx context.Context) (models.InfoResponse, error)

	// GetAccounts lists the mobile accounts with counts and balances.
	GetAccounts(ctx context.Context) ([]models.AccountSummary, error)
	GetAccountTransactions(ctx context.Context, accountID int64) ([]models.SyncTransaction, error)
	GetAllTransactions(ctx context.Context) ([]models.AccountTransactions, error)

	Prepare(ctx context.Context, request models.SyncPrepareRequest) (models.SyncPrepareResponse, error)
	// Execute sends a confirmed request. For MobileToDesktop the response
	// carries account_data for the desktop to apply.
	Execute(ctx context.Context, request models.SyncExecuteRequest) (models.SyncExecuteResponse, error)

	ListBackups(ctx context.Context) ([]models.BackupInfo, error)
	Restore(ctx context.Context, path string) (models.RestoreResponse, error)
}
