// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const preSyncReason = "pre_sync"

// syncCoordinator holds no state between calls. Nothing links a Prepare to
// the Execute that follows it; the operator's confirmation is the only gate.
type syncCoordinator struct {
	directory  store.AccountDirectory
	stores     store.AccountStoreProvider
	backups    store.BackupManager
	mapper     AccountMapper
	reconciler TransactionReconciler
	policy     WarningPolicy
	logger     *logger.Logger

	now func() time.Time
}

func NewSyncCoordinator(
	directory store.AccountDirectory,
	stores store.AccountStoreProvider,
	backups store.BackupManager,
	policy WarningPolicy,
	logger *logger.Logger,
) SyncCoordinator {
	if policy == nil {
		policy = NewWarningPolicy()
	}

	return &syncCoordinator{
		directory:  directory,
		stores:     stores,
		backups:    backups,
		mapper:     NewAccountMapper(directory),
		reconciler: NewTransactionReconciler(),
		policy:     policy,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ── Prepare ──

func (c *syncCoordinator) Prepare(ctx context.Context, request models.SyncPrepareRequest) (models.SyncPrepareResponse, error) {
	log := logger.FromContextOr(ctx, c.logger).With().
		Str("direction", request.Direction.String()).
		Str("mode", request.Mode.String()).
		Logger()

	if !request.Direction.IsValid() {
		return models.SyncPrepareResponse{}, fmt.Errorf("%w: %q", ErrInvalidDirection, request.Direction)
	}
	if !request.Mode.IsValid() {
		return models.SyncPrepareResponse{}, fmt.Errorf("%w: %q", ErrInvalidMode, request.Mode)
	}

	response := models.SyncPrepareResponse{
		Success:     true,
		Comparisons: make([]models.SyncComparison, 0, len(request.SourceAccounts)),
	}

	// a failed backup does not block Prepare; the operator sees backup_created=false
	backup, err := c.backups.CreateBackup(ctx, preSyncReason, request.Direction.String())
	switch {
	case err != nil:
		log.Warn().Err(err).Str("func", "syncCoordinator.Prepare").Msg("pre-sync backup failed")
	case !backup.Success:
		log.Warn().Str("func", "syncCoordinator.Prepare").Msg("pre-sync backup reported failure")
	default:
		response.BackupCreated = true
		response.BackupPath = backup.Path
	}

	for _, account := range request.SourceAccounts {
		comparison, err := c.compare(ctx, request.Direction, request.Mode, account)
		if err != nil {
			log.Err(err).Str("func", "syncCoordinator.Prepare").Int64("source_id", account.SourceID).Msg("failed to compare account")
			return models.SyncPrepareResponse{}, err
		}

		if comparison.HasWarning {
			response.RequiresConfirmation = true
		}
		if request.Direction == models.MobileToDesktop {
			response.TotalClassifiedTransactions += account.ClassifiedCount
			if request.Mode == models.Replace && account.ClassifiedCount > 0 {
				response.HasClassificationWarning = true
			}
		}

		response.Comparisons = append(response.Comparisons, comparison)
	}

	log.Info().
		Str("func", "syncCoordinator.Prepare").
		Int("accounts", len(response.Comparisons)).
		Bool("backup_created", response.BackupCreated).
		Bool("requires_confirmation", response.RequiresConfirmation).
		Msg("sync prepared")

	return response, nil
}

// compare orients the request account and the local account by direction.
// The request account always describes the remote device.
func (c *syncCoordinator) compare(ctx context.Context, direction models.SyncDirection, mode models.SyncMode, account models.SyncAccount) (models.SyncComparison, error) {
	lookupID := &account.SourceID
	if direction == models.DesktopToMobile {
		lookupID = account.TargetAccountID
	}

	local, transactions, err := c.loadLocal(ctx, lookupID)
	if err != nil {
		return models.SyncComparison{}, err
	}

	comparison := models.SyncComparison{
		AccountID:   account.SourceID,
		AccountName: account.Name,
	}
	if local != nil {
		comparison.AccountID = local.ID
		comparison.AccountName = local.Name
	}

	localCount, localLatest := len(transactions), models.LatestTransactionDate(transactions)

	if direction == models.MobileToDesktop {
		comparison.SourceCount = localCount
		comparison.SourceLatestDate = localLatest
		comparison.DestCount = account.Count()
		comparison.DestLatestDate = account.LatestDate()
		comparison.DestClassifiedCount = account.ClassifiedCount
	} else {
		comparison.SourceCount = account.Count()
		comparison.SourceLatestDate = account.LatestDate()
		comparison.DestCount = localCount
		comparison.DestLatestDate = localLatest
	}

	message, warn := c.policy.Warn(comparison, mode)

	if direction == models.MobileToDesktop && mode == models.Replace && account.ClassifiedCount > 0 {
		classified := fmt.Sprintf(classificationWarning, account.ClassifiedCount)
		if warn {
			classified += " " + message
		}
		message, warn = classified, true
	}

	comparison.HasWarning = warn
	comparison.WarningMessage = message
	return comparison, nil
}

// loadLocal returns nil when id is nil or names no local account.
func (c *syncCoordinator) loadLocal(ctx context.Context, id *int64) (*models.Account, []models.Transaction, error) {
	if id == nil {
		return nil, nil, nil
	}

	account, err := c.directory.GetAccountByID(ctx, *id)
	if errors.Is(err, store.ErrAccountNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	accountStore, release, err := c.stores.Acquire(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	transactions, err := accountStore.GetAllTransactions(ctx)
	if err != nil {
		return nil, nil, err
	}

	return &account, transactions, nil
}

// ── Execute ──

func (c *syncCoordinator) Execute(ctx context.Context, request models.SyncExecuteRequest) (models.SyncExecuteResponse, error) {
	if !request.IsConfirmed() {
		return models.SyncExecuteResponse{}, ErrSyncNotConfirmed
	}
	if !request.Mode.IsValid() {
		return models.SyncExecuteResponse{}, fmt.Errorf("%w: %q", ErrInvalidMode, request.Mode)
	}

	switch request.Direction {
	case models.MobileToDesktop:
		results := make([]models.SyncAccountResult, 0, len(request.Accounts))
		for _, account := range request.Accounts {
			results = append(results, c.packageSource(ctx, account))
		}
		return aggregate(results), nil

	case models.DesktopToMobile:
		return c.ApplyAsDestination(ctx, request.Mode, request.Accounts)

	default:
		return models.SyncExecuteResponse{}, fmt.Errorf("%w: %q", ErrInvalidDirection, request.Direction)
	}
}

// packageSource hands this device's copy of an account back to the caller.
// The mode is applied on the other device; nothing changes here.
func (c *syncCoordinator) packageSource(ctx context.Context, account models.SyncAccount) models.SyncAccountResult {
	log := logger.FromContextOr(ctx, c.logger).WithAccount(account.SourceID)

	local, transactions, err := c.loadLocal(ctx, &account.SourceID)
	if err == nil && local == nil {
		err = fmt.Errorf("%w: account %d does not exist on this device", store.ErrAccountNotFound, account.SourceID)
	}
	if err != nil {
		log.Err(err).Str("func", "syncCoordinator.packageSource").Msg("failed to package source account")
		return errorResult(account.SourceID, account.Name, err)
	}

	data := local.ToSyncAccount(transactions)
	data.TargetAccountID = account.TargetAccountID

	log.Info().
		Str("func", "syncCoordinator.packageSource").
		Int("transactions", len(transactions)).
		Msg("account packaged as source")

	return models.SyncAccountResult{
		AccountID:                local.ID,
		AccountName:              local.Name,
		Status:                   models.StatusSourceOnly,
		PreviousTransactionCount: len(transactions),
		NewTransactionCount:      len(transactions),
		AccountData:              &data,
	}
}

// ── ApplyAsDestination ──

func (c *syncCoordinator) ApplyAsDestination(ctx context.Context, mode models.SyncMode, accounts []models.SyncAccount) (models.SyncExecuteResponse, error) {
	if !mode.IsValid() {
		return models.SyncExecuteResponse{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	// sequential on purpose: one account failing must not affect the others
	results := make([]models.SyncAccountResult, 0, len(accounts))
	for _, account := range accounts {
		results = append(results, c.applyAccount(ctx, mode, account))
	}

	response := aggregate(results)

	logger.FromContextOr(ctx, c.logger).Info().
		Str("func", "syncCoordinator.ApplyAsDestination").
		Str("mode", mode.String()).
		Int("accounts", len(results)).
		Bool("success", response.Success).
		Msg(response.Message)

	return response, nil
}

func (c *syncCoordinator) applyAccount(ctx context.Context, mode models.SyncMode, account models.SyncAccount) models.SyncAccountResult {
	log := logger.FromContextOr(ctx, c.logger).With().
		Int64("source_id", account.SourceID).
		Str("mode", mode.String()).
		Logger()

	var (
		target models.Account
		err    error
	)
	if mode == models.CreateNew {
		target, err = c.mapper.Create(ctx, account)
	} else {
		target, err = c.mapper.Resolve(ctx, account)
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "syncCoordinator.applyAccount").Msg("target account not available")
		return errorResult(0, account.Name, err)
	}

	accountStore, release, err := c.stores.Acquire(ctx, target.ID)
	if err != nil {
		log.Err(err).Str("func", "syncCoordinator.applyAccount").Int64("account_id", target.ID).Msg("failed to acquire account store")
		return errorResult(target.ID, target.Name, err)
	}
	defer release()

	result, err := c.applyStrategy(ctx, accountStore, mode, account.Transactions)
	result.AccountID = target.ID
	result.AccountName = target.Name
	if err != nil {
		log.Err(err).Str("func", "syncCoordinator.applyAccount").Int64("account_id", target.ID).Msg("sync strategy failed")
		result.Status = models.StatusError
		result.ErrorMessage = err.Error()
		return result
	}

	log.Info().
		Str("func", "syncCoordinator.applyAccount").
		Int64("account_id", target.ID).
		Int("previous", result.PreviousTransactionCount).
		Int("current", result.NewTransactionCount).
		Msg("account synced")

	return result
}

// applyStrategy runs while the account's handle is held. Reads, deletes and
// inserts share one database transaction, so a failure leaves the account
// exactly as it was and the result reports it unchanged.
func (c *syncCoordinator) applyStrategy(ctx context.Context, accountStore store.AccountStore, mode models.SyncMode, incoming []models.SyncTransaction) (models.SyncAccountResult, error) {
	var result models.SyncAccountResult
	err := accountStore.WithinTx(ctx, func(tx store.AccountStore) error {
		var err error
		result, err = c.applyInTx(ctx, tx, mode, incoming)
		return err
	})
	if err != nil {
		result.NewTransactionCount = result.PreviousTransactionCount
		result.DuplicatesSkipped = 0
		result.NewOnlyAdded = 0
		return result, err
	}

	return result, nil
}

func (c *syncCoordinator) applyInTx(ctx context.Context, accountStore store.AccountStore, mode models.SyncMode, incoming []models.SyncTransaction) (models.SyncAccountResult, error) {
	existing, err := accountStore.GetAllTransactions(ctx)
	if err != nil {
		return models.SyncAccountResult{}, err
	}

	result := models.SyncAccountResult{
		Status:                   models.StatusForMode(mode),
		PreviousTransactionCount: len(existing),
		NewTransactionCount:      len(existing),
	}

	var toInsert []models.SyncTransaction
	switch mode {
	case models.CreateNew, models.Replace:
		// no survivorship: the pre-sync backup is the only way back once committed
		for _, t := range existing {
			if err := accountStore.DeleteTransaction(ctx, t.ID); err != nil {
				return result, err
			}
			result.NewTransactionCount--
		}
		toInsert = incoming

	case models.Merge:
		toInsert, result.DuplicatesSkipped = c.reconciler.Filter(models.ToSyncTransactions(existing), incoming)

	case models.NewOnly:
		toInsert, _ = c.reconciler.NewerThan(models.ToSyncTransactions(existing), incoming)
	}

	now := c.now()
	for _, t := range toInsert {
		if _, err := accountStore.InsertTransaction(ctx, t.ToTransaction(accountStore.AccountID(), now)); err != nil {
			return result, err
		}
		result.NewTransactionCount++
		if mode == models.NewOnly {
			result.NewOnlyAdded++
		}
	}

	return result, nil
}

func errorResult(accountID int64, name string, err error) models.SyncAccountResult {
	return models.SyncAccountResult{
		AccountID:    accountID,
		AccountName:  name,
		Status:       models.StatusError,
		ErrorMessage: err.Error(),
	}
}

// ── aggregation ──

var statusOrder = []models.SyncStatus{
	models.StatusSourceOnly,
	models.StatusCreated,
	models.StatusReplaced,
	models.StatusMerged,
	models.StatusNewOnly,
}

func aggregate(results []models.SyncAccountResult) models.SyncExecuteResponse {
	response := models.SyncExecuteResponse{
		Success: true,
		Results: results,
	}

	counts := make(map[models.SyncStatus]int, len(statusOrder))
	failed := 0
	added := 0

	for _, r := range results {
		if r.Status == models.StatusError {
			response.Success = false
			failed++
			continue
		}

		counts[r.Status]++
		response.TotalProcessed += r.NewTransactionCount

		switch r.Status {
		case models.StatusMerged:
			response.TotalDuplicatesSkipped += r.DuplicatesSkipped
			added += r.NewTransactionCount - r.PreviousTransactionCount
		case models.StatusNewOnly:
			response.TotalNewAdded += r.NewOnlyAdded
		}
	}

	var dominant models.SyncStatus
	for _, status := range statusOrder {
		if counts[status] > counts[dominant] {
			dominant = status
		}
	}

	response.Message = summary(dominant, counts[dominant], response, added)
	if failed > 0 {
		response.Message += fmt.Sprintf("; %d account(s) failed", failed)
	}

	return response
}

func summary(status models.SyncStatus, accounts int, r models.SyncExecuteResponse, mergedAdded int) string {
	switch status {
	case models.StatusSourceOnly:
		return fmt.Sprintf("Packaged %d account(s) with %d transaction(s)", accounts, r.TotalProcessed)
	case models.StatusCreated:
		return fmt.Sprintf("Created %d account(s) with %d transaction(s)", accounts, r.TotalProcessed)
	case models.StatusReplaced:
		return fmt.Sprintf("Replaced transactions in %d account(s), %d transaction(s) now stored", accounts, r.TotalProcessed)
	case models.StatusMerged:
		return fmt.Sprintf("Merged %d account(s): %d added, %d duplicate(s) skipped", accounts, mergedAdded, r.TotalDuplicatesSkipped)
	case models.StatusNewOnly:
		return fmt.Sprintf("Added %d new transaction(s) to %d account(s)", r.TotalNewAdded, accounts)
	default:
		return "No accounts were synced"
	}
}
