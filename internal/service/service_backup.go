package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type backupService struct {
	backups   store.BackupManager
	validator validators.Validator
	logger    *logger.Logger
}

func NewBackupService(backups store.BackupManager, logger *logger.Logger) BackupService {
	return &backupService{
		backups:   backups,
		validator: validators.NewSyncValidator(),
		logger:    logger,
	}
}

func (s *backupService) CreateBackup(ctx context.Context, reason, tag string) (models.BackupResult, error) {
	result, err := s.backups.CreateBackup(ctx, reason, tag)
	if err != nil {
		return models.BackupResult{}, fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}
	if !result.Success {
		return result, ErrBackupFailed
	}
	return result, nil
}

func (s *backupService) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	return s.backups.ListBackups(ctx)
}

func (s *backupService) Restore(ctx context.Context, path string) (models.RestoreResponse, error) {
	if err := s.validator.Validate(ctx, models.RestoreRequest{Path: path}); err != nil {
		return models.RestoreResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := s.backups.RestoreBackup(ctx, path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "backupService.Restore").Str("path", path).Msg("restore failed")
		return models.RestoreResponse{Path: path}, fmt.Errorf("%w: %w", ErrRestoreFailed, err)
	}
	if !ok {
		return models.RestoreResponse{Path: path}, ErrRestoreFailed
	}

	return models.RestoreResponse{Success: true, Path: path}, nil
}

func (s *backupService) Prune(ctx context.Context, keep int) (int, error) {
	return s.backups.Prune(ctx, keep)
}
