package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService drives a sync from the desktop.
//
// The desktop always initiates: the plan names the direction, the mode and
// which desktop account maps to which mobile account. For MobileToDesktop
// the mobile device only packages data and the desktop applies it to its
// own ledger.
type ClientSyncService interface {
	// Prepare asks the mobile device to back up and assess the plan.
	// Nothing is changed on either device.
	Prepare(ctx context.Context, plan models.SyncPlan) (models.SyncPrepareResponse, error)

	// Execute commits the plan. confirmed must be true; the operator's
	// answer is passed through as is and never defaulted.
	//
	// For MobileToDesktop a local pre_sync backup is written before the
	// returned account data is applied. If that backup fails, nothing is
	// applied locally.
	Execute(ctx context.Context, plan models.SyncPlan, confirmed bool) (models.ClientSyncResult, error)
}

// ClientRemoteService is the desktop's read and backup view of the mobile
// device. Transport errors are mapped onto service and store sentinels.
type ClientRemoteService interface {
	Ping(ctx context.Context) (models.PingResponse, error)
	Info(ctx context.Context) (models.InfoResponse, error)
	GetAccounts(ctx context.Context) ([]models.AccountSummary, error)
	GetAccountTransactions(ctx context.Context, accountID int64) ([]models.SyncTransaction, error)
	ListBackups(ctx context.Context) ([]models.BackupInfo, error)
	Restore(ctx context.Context, path string) (models.RestoreResponse, error)
}
