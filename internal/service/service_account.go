package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type accountService struct {
	directory store.AccountDirectory
	stores    store.AccountStoreProvider
	logger    *logger.Logger
}

func NewAccountService(directory store.AccountDirectory, stores store.AccountStoreProvider, logger *logger.Logger) AccountService {
	return &accountService{
		directory: directory,
		stores:    stores,
		logger:    logger,
	}
}

// GetAccounts lists every account with its count, latest date and balance.
func (s *accountService) GetAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	accounts, err := s.directory.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summary, err := s.summarize(ctx, account)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "accountService.GetAccounts").
				Int64("account_id", account.ID).
				Msg("failed to summarize account")
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *accountService) summarize(ctx context.Context, account models.Account) (models.AccountSummary, error) {
	accountStore, release, err := s.stores.Acquire(ctx, account.ID)
	if err != nil {
		return models.AccountSummary{}, err
	}
	defer release()

	transactions, err := accountStore.GetAllTransactions(ctx)
	if err != nil {
		return models.AccountSummary{}, err
	}

	balance, err := accountStore.GetTotalBalance(ctx, account.OpeningBalance)
	if err != nil {
		return models.AccountSummary{}, err
	}

	return models.AccountSummary{
		Account:               account,
		TransactionCount:      len(transactions),
		LatestTransactionDate: models.LatestTransactionDate(transactions),
		Balance:               balance,
	}, nil
}

func (s *accountService) GetAccountTransactions(ctx context.Context, accountID int64) ([]models.SyncTransaction, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAccountID, accountID)
	}

	accountStore, release, err := s.stores.Acquire(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	transactions, err := accountStore.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	return models.ToSyncTransactions(transactions), nil
}

func (s *accountService) GetAllTransactions(ctx context.Context) ([]models.AccountTransactions, error) {
	accounts, err := s.directory.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.AccountTransactions, 0, len(accounts))
	for _, account := range accounts {
		transactions, err := s.GetAccountTransactions(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.AccountTransactions{
			AccountID:    account.ID,
			AccountName:  account.Name,
			Transactions: transactions,
		})
	}

	return out, nil
}
