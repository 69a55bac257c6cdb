package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// Services is the mobile server's service layer.
type Services struct {
	SyncCoordinator SyncCoordinator
	AccountService  AccountService
	AppInfoService  AppInfoService
	BackupService   BackupService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	coordinator := NewSyncCoordinator(storages.Accounts, storages.AccountStores, storages.Backups, NewWarningPolicy(), logger)

	return &Services{
		SyncCoordinator: NewSyncValidationService().Wrap(coordinator),
		AccountService:  NewAccountService(storages.Accounts, storages.AccountStores, logger),
		AppInfoService:  appInfo,
		BackupService:   NewBackupService(storages.Backups, logger),
	}, nil
}
