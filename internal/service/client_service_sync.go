package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type clientSyncService struct {
	directory store.AccountDirectory
	stores    store.AccountStoreProvider
	backups   BackupService
	local     SyncCoordinator
	remote    adapter.ServerAdapter
	logger    *logger.Logger
}

// NewClientSyncService wires the desktop side of a sync. local applies
// MobileToDesktop data to the desktop ledger.
func NewClientSyncService(
	directory store.AccountDirectory,
	stores store.AccountStoreProvider,
	backups BackupService,
	local SyncCoordinator,
	remote adapter.ServerAdapter,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		directory: directory,
		stores:    stores,
		backups:   backups,
		local:     local,
		remote:    remote,
		logger:    logger,
	}
}

func (s *clientSyncService) Prepare(ctx context.Context, plan models.SyncPlan) (models.SyncPrepareResponse, error) {
	if err := checkPlan(plan); err != nil {
		return models.SyncPrepareResponse{}, err
	}

	accounts, err := s.buildAccounts(ctx, plan)
	if err != nil {
		return models.SyncPrepareResponse{}, err
	}

	response, err := s.remote.Prepare(ctx, models.SyncPrepareRequest{
		Direction:      plan.Direction,
		Mode:           plan.Mode,
		SourceAccounts: accounts,
	})
	if err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "clientSyncService.Prepare").Msg("remote prepare failed")
		return models.SyncPrepareResponse{}, fmt.Errorf("%w: %w", ErrRemoteSync, mapAdapterError(err))
	}

	return response, nil
}

func (s *clientSyncService) Execute(ctx context.Context, plan models.SyncPlan, confirmed bool) (models.ClientSyncResult, error) {
	if !confirmed {
		return models.ClientSyncResult{}, ErrSyncNotConfirmed
	}
	if err := checkPlan(plan); err != nil {
		return models.ClientSyncResult{}, err
	}

	log := logger.FromContextOr(ctx, s.logger).With().
		Str("direction", plan.Direction.String()).
		Str("mode", plan.Mode.String()).
		Logger()

	accounts, err := s.buildAccounts(ctx, plan)
	if err != nil {
		return models.ClientSyncResult{}, err
	}

	remote, err := s.remote.Execute(ctx, models.SyncExecuteRequest{
		Confirmed: &confirmed,
		Direction: plan.Direction,
		Mode:      plan.Mode,
		Accounts:  accounts,
	})
	if err != nil {
		log.Err(err).Str("func", "clientSyncService.Execute").Msg("remote execute failed")
		return models.ClientSyncResult{}, fmt.Errorf("%w: %w", ErrRemoteSync, mapAdapterError(err))
	}

	result := models.ClientSyncResult{Remote: remote}
	if plan.Direction == models.DesktopToMobile {
		return result, nil
	}

	packaged := make([]models.SyncAccount, 0, len(remote.Results))
	for _, r := range remote.Results {
		if r.Status == models.StatusSourceOnly && r.AccountData != nil {
			packaged = append(packaged, *r.AccountData)
		}
	}
	if len(packaged) == 0 {
		log.Warn().Str("func", "clientSyncService.Execute").Msg("mobile returned no account data to apply")
		return result, nil
	}

	backup, err := s.backups.CreateBackup(ctx, preSyncReason, plan.Direction.String())
	if err != nil {
		log.Err(err).Str("func", "clientSyncService.Execute").Msg("local pre-sync backup failed, nothing applied")
		return result, err
	}
	result.BackupResult = &backup

	local, err := s.local.ApplyAsDestination(ctx, plan.Mode, packaged)
	if err != nil {
		log.Err(err).Str("func", "clientSyncService.Execute").Msg("local apply failed")
		return result, fmt.Errorf("%w: %w", ErrLocalApplyFailed, err)
	}
	result.Local = &local

	log.Info().
		Str("func", "clientSyncService.Execute").
		Int("accounts", len(packaged)).
		Bool("success", local.Success).
		Str("backup", backup.Path).
		Msg("mobile data applied locally")

	return result, nil
}

func checkPlan(plan models.SyncPlan) error {
	if !plan.Direction.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, plan.Direction)
	}
	if !plan.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, plan.Mode)
	}
	if len(plan.Accounts) == 0 {
		return ErrNoPlanAccounts
	}
	return nil
}

// buildAccounts describes every mapping in wire form. SourceID is always
// the id on the source device and TargetAccountID the id on the
// destination, so the mobile side can resolve both without guessing.
func (s *clientSyncService) buildAccounts(ctx context.Context, plan models.SyncPlan) ([]models.SyncAccount, error) {
	if plan.Direction == models.DesktopToMobile {
		return s.outgoingAccounts(ctx, plan)
	}
	return s.incomingAccounts(ctx, plan)
}

// outgoingAccounts packages desktop accounts with their transactions.
func (s *clientSyncService) outgoingAccounts(ctx context.Context, plan models.SyncPlan) ([]models.SyncAccount, error) {
	accounts := make([]models.SyncAccount, 0, len(plan.Accounts))
	for _, mapping := range plan.Accounts {
		account, transactions, err := s.loadLocal(ctx, mapping.LocalAccountID)
		if err != nil {
			return nil, err
		}

		wire := account.ToSyncAccount(transactions)
		if plan.Mode != models.CreateNew {
			wire.TargetAccountID = mapping.RemoteAccountID
		}
		accounts = append(accounts, wire)
	}
	return accounts, nil
}

// incomingAccounts describes what the desktop already holds for each mobile
// account. Transactions stay home: the mobile side only needs the counts to
// warn, and returns its own data in Execute.
func (s *clientSyncService) incomingAccounts(ctx context.Context, plan models.SyncPlan) ([]models.SyncAccount, error) {
	remoteAccounts, err := s.remote.GetAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteSync, mapAdapterError(err))
	}
	names := make(map[int64]models.Account, len(remoteAccounts))
	for _, a := range remoteAccounts {
		names[a.ID] = a.Account
	}

	accounts := make([]models.SyncAccount, 0, len(plan.Accounts))
	for _, mapping := range plan.Accounts {
		if mapping.RemoteAccountID == nil {
			return nil, fmt.Errorf("%w: mobile account id is required for %s", ErrInvalidAccountID, plan.Direction)
		}
		remote, ok := names[*mapping.RemoteAccountID]
		if !ok {
			return nil, fmt.Errorf("%w: mobile account %d", store.ErrAccountNotFound, *mapping.RemoteAccountID)
		}

		wire := models.SyncAccount{
			SourceID:       remote.ID,
			Name:           remote.Name,
			OpeningBalance: remote.OpeningBalance,
			Icon:           remote.Icon,
			Color:          remote.Color,
		}

		if plan.Mode != models.CreateNew {
			local, transactions, err := s.loadLocal(ctx, mapping.LocalAccountID)
			if err != nil {
				return nil, err
			}
			summary := local.ToSyncAccount(transactions)
			wire.TransactionCount = summary.TransactionCount
			wire.LatestTransactionDate = summary.LatestTransactionDate
			wire.ClassifiedCount = summary.ClassifiedCount
			wire.TargetAccountID = &local.ID
		}

		accounts = append(accounts, wire)
	}
	return accounts, nil
}

func (s *clientSyncService) loadLocal(ctx context.Context, id int64) (models.Account, []models.Transaction, error) {
	if id <= 0 {
		return models.Account{}, nil, fmt.Errorf("%w: desktop account id %d", ErrInvalidAccountID, id)
	}

	account, err := s.directory.GetAccountByID(ctx, id)
	if err != nil {
		return models.Account{}, nil, err
	}

	accountStore, release, err := s.stores.Acquire(ctx, id)
	if err != nil {
		return models.Account{}, nil, err
	}
	defer release()

	transactions, err := accountStore.GetAllTransactions(ctx)
	if err != nil {
		return models.Account{}, nil, fmt.Errorf("load desktop account %d: %w", id, err)
	}

	return account, transactions, nil
}
