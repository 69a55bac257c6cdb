package service

import (
	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
)

// ClientServices is everything the desktop CLI needs: its own ledger, the
// mobile device, and the sync between them.
type ClientServices struct {
	SyncService   ClientSyncService
	RemoteService ClientRemoteService

	// AccountService and BackupService serve the desktop's own ledger.
	AccountService AccountService
	BackupService  BackupService
}

func NewClientServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	backupSvc := NewBackupService(storages.Backups, logger)
	local := NewSyncValidationService().Wrap(
		NewSyncCoordinator(storages.Accounts, storages.AccountStores, storages.Backups, NewWarningPolicy(), logger),
	)

	return &ClientServices{
		SyncService:    NewClientSyncService(storages.Accounts, storages.AccountStores, backupSvc, local, serverAdapter, logger),
		RemoteService:  NewClientRemoteService(serverAdapter),
		AccountService: NewAccountService(storages.Accounts, storages.AccountStores, logger),
		BackupService:  backupSvc,
	}
}
