package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// accountMapper only ever resolves ids against the local directory. An id
// from the other device is never assumed to be valid here.
type accountMapper struct {
	directory store.AccountDirectory
}

func NewAccountMapper(directory store.AccountDirectory) AccountMapper {
	return &accountMapper{directory: directory}
}

func (m *accountMapper) Resolve(ctx context.Context, account models.SyncAccount) (models.Account, error) {
	if account.TargetAccountID == nil {
		return models.Account{}, fmt.Errorf("%w: account %q has no target account", ErrTargetAccountNotResolved, account.Name)
	}

	local, err := m.directory.GetAccountByID(ctx, *account.TargetAccountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, fmt.Errorf("%w: account %d does not exist on this device", ErrTargetAccountNotResolved, *account.TargetAccountID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountMapper.Resolve").
			Int64("target_account_id", *account.TargetAccountID).
			Msg("failed to look up target account")
		return models.Account{}, err
	}

	return local, nil
}

func (m *accountMapper) Create(ctx context.Context, account models.SyncAccount) (models.Account, error) {
	local := models.Account{
		Name:           account.Name,
		OpeningBalance: account.OpeningBalance,
		Icon:           account.Icon,
		Color:          account.Color,
	}

	id, err := m.directory.InsertAccount(ctx, local)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountMapper.Create").
			Str("name", account.Name).
			Msg("failed to create account")
		return models.Account{}, err
	}

	local.ID = id
	return local, nil
}
