package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ledger-sync/internal/mock"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validAccount() models.SyncAccount {
	target := int64(2)
	return models.SyncAccount{
		SourceID:        1,
		Name:            "Wallet",
		Transactions:    []models.SyncTransaction{tx("2024-01-01", "-1", "a")},
		TargetAccountID: &target,
	}
}

func TestSyncValidationService_Prepare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockSyncCoordinator(ctrl)
	svc := NewSyncValidationService().Wrap(inner)
	ctx := context.Background()

	valid := models.SyncPrepareRequest{Direction: models.DesktopToMobile, Mode: models.Merge, SourceAccounts: []models.SyncAccount{validAccount()}}
	inner.EXPECT().Prepare(ctx, valid).Return(models.SyncPrepareResponse{Success: true}, nil)

	resp, err := svc.Prepare(ctx, valid)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	tests := []struct {
		name    string
		mutate  func(r *models.SyncPrepareRequest)
		wantErr error
	}{
		{name: "no accounts", mutate: func(r *models.SyncPrepareRequest) { r.SourceAccounts = nil }, wantErr: validators.ErrNoAccountsProvided},
		{name: "bad direction", mutate: func(r *models.SyncPrepareRequest) { r.Direction = "x" }, wantErr: validators.ErrInvalidDirection},
		{name: "bad mode", mutate: func(r *models.SyncPrepareRequest) { r.Mode = "x" }, wantErr: validators.ErrInvalidMode},
		{name: "empty name", mutate: func(r *models.SyncPrepareRequest) { r.SourceAccounts[0].Name = " " }, wantErr: validators.ErrEmptyAccountName},
		{name: "zero date", mutate: func(r *models.SyncPrepareRequest) { r.SourceAccounts[0].Transactions[0].Date = models.Date{} }, wantErr: validators.ErrInvalidTransactionDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := models.SyncPrepareRequest{Direction: models.DesktopToMobile, Mode: models.Merge, SourceAccounts: []models.SyncAccount{validAccount()}}
			tt.mutate(&request)

			_, err := svc.Prepare(ctx, request)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSyncValidationService_Execute_ConfirmationBeforeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no calls expected on inner
	svc := NewSyncValidationService().Wrap(mock.NewMockSyncCoordinator(ctrl))

	_, err := svc.Execute(context.Background(), models.SyncExecuteRequest{Direction: "garbage"})

	assert.ErrorIs(t, err, ErrSyncNotConfirmed)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSyncValidationService_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockSyncCoordinator(ctrl)
	svc := NewSyncValidationService().Wrap(inner)
	ctx := context.Background()

	request := models.SyncExecuteRequest{Confirmed: confirmed(), Direction: models.DesktopToMobile, Mode: models.Replace, Accounts: []models.SyncAccount{validAccount()}}
	inner.EXPECT().Execute(ctx, request).Return(models.SyncExecuteResponse{Success: true}, nil)

	_, err := svc.Execute(ctx, request)
	require.NoError(t, err)

	bad := request
	bad.Accounts = []models.SyncAccount{validAccount(), {SourceID: -1, Name: "x"}}
	_, err = svc.Execute(ctx, bad)
	assert.ErrorIs(t, err, validators.ErrInvalidSourceID)
	assert.Contains(t, err.Error(), "account index 1")
}

func TestSyncValidationService_ApplyAsDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockSyncCoordinator(ctrl)
	svc := NewSyncValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.ApplyAsDestination(ctx, "nope", nil)
	assert.ErrorIs(t, err, ErrInvalidMode)

	zero := int64(0)
	broken := validAccount()
	broken.TargetAccountID = &zero
	_, err = svc.ApplyAsDestination(ctx, models.Merge, []models.SyncAccount{broken})
	assert.ErrorIs(t, err, validators.ErrInvalidTargetAccountID)

	accounts := []models.SyncAccount{validAccount()}
	inner.EXPECT().ApplyAsDestination(ctx, models.Merge, accounts).Return(models.SyncExecuteResponse{Success: true}, nil)
	resp, err := svc.ApplyAsDestination(ctx, models.Merge, accounts)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}
