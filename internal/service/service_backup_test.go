package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/mock"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBackupService_RestoreUndoesSync(t *testing.T) {
	l := newTestLedger(t)
	id := l.addAccount(t, "Wallet", tx("2024-01-01", "-1", "original"))
	svc := NewBackupService(l.storages.Backups, logger.Nop())
	ctx := context.Background()

	prepared, err := l.coordinator.Prepare(ctx, models.SyncPrepareRequest{
		Direction:      models.DesktopToMobile,
		Mode:           models.Replace,
		SourceAccounts: []models.SyncAccount{incomingAccount(id, tx("2024-02-01", "-2", "replacement"))},
	})
	require.NoError(t, err)
	require.True(t, prepared.BackupCreated)

	_, err = l.coordinator.Execute(ctx, models.SyncExecuteRequest{
		Confirmed: confirmed(),
		Direction: models.DesktopToMobile,
		Mode:      models.Replace,
		Accounts:  []models.SyncAccount{incomingAccount(id, tx("2024-02-01", "-2", "replacement"))},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"replacement"}, descriptions(l.transactions(t, id)))

	resp, err := svc.Restore(ctx, filepath.Base(prepared.BackupPath))
	require.NoError(t, err)
	assert.True(t, resp.Success)

	assert.Equal(t, []string{"original"}, descriptions(l.transactions(t, id)))

	backups, err := svc.ListBackups(ctx)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "pre_restore", backups[0].Reason)
}

func TestBackupService_RestoreMissing(t *testing.T) {
	l := newTestLedger(t)
	svc := NewBackupService(l.storages.Backups, logger.Nop())

	resp, err := svc.Restore(context.Background(), "nothing.json.gz")

	assert.False(t, resp.Success)
	assert.ErrorIs(t, err, ErrRestoreFailed)
	assert.ErrorIs(t, err, store.ErrBackupNotFound)
}

func TestBackupService_RestoreEmptyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	backups := mock.NewMockBackupManager(ctrl)
	svc := NewBackupService(backups, logger.Nop())

	_, err := svc.Restore(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyBackupPath)
}

func TestBackupService_CreateBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backups := mock.NewMockBackupManager(ctrl)
	svc := NewBackupService(backups, logger.Nop())
	ctx := context.Background()

	backups.EXPECT().CreateBackup(ctx, "manual", "cli").Return(models.BackupResult{Success: true, Path: "/b/x.json.gz"}, nil)
	result, err := svc.CreateBackup(ctx, "manual", "cli")
	require.NoError(t, err)
	assert.Equal(t, "/b/x.json.gz", result.Path)

	backups.EXPECT().CreateBackup(ctx, "manual", "cli").Return(models.BackupResult{}, errors.New("read-only fs"))
	_, err = svc.CreateBackup(ctx, "manual", "cli")
	assert.ErrorIs(t, err, ErrBackupFailed)

	backups.EXPECT().CreateBackup(ctx, "manual", "cli").Return(models.BackupResult{Success: false}, nil)
	_, err = svc.CreateBackup(ctx, "manual", "cli")
	assert.ErrorIs(t, err, ErrBackupFailed)
}

func TestBackupService_Prune(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backups := mock.NewMockBackupManager(ctrl)
	backups.EXPECT().Prune(gomock.Any(), 5).Return(3, nil)

	removed, err := NewBackupService(backups, logger.Nop()).Prune(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}
