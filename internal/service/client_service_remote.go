package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type clientRemoteService struct {
	remote adapter.ServerAdapter
}

func NewClientRemoteService(remote adapter.ServerAdapter) ClientRemoteService {
	return &clientRemoteService{remote: remote}
}

func (s *clientRemoteService) Ping(ctx context.Context) (models.PingResponse, error) {
	resp, err := s.remote.Ping(ctx)
	return resp, mapAdapterError(err)
}

func (s *clientRemoteService) Info(ctx context.Context) (models.InfoResponse, error) {
	resp, err := s.remote.Info(ctx)
	return resp, mapAdapterError(err)
}

func (s *clientRemoteService) GetAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	resp, err := s.remote.GetAccounts(ctx)
	return resp, mapAdapterError(err)
}

func (s *clientRemoteService) GetAccountTransactions(ctx context.Context, accountID int64) ([]models.SyncTransaction, error) {
	resp, err := s.remote.GetAccountTransactions(ctx, accountID)
	return resp, mapAdapterError(err)
}

func (s *clientRemoteService) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	resp, err := s.remote.ListBackups(ctx)
	return resp, mapAdapterError(err)
}

func (s *clientRemoteService) Restore(ctx context.Context, path string) (models.RestoreResponse, error) {
	resp, err := s.remote.Restore(ctx, path)
	return resp, mapAdapterError(err)
}
