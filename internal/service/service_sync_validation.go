package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/validators"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// SyncValidationService rejects malformed requests before they reach the
// wrapped coordinator.
type SyncValidationService struct {
	inner     SyncCoordinator
	validator validators.Validator
}

func NewSyncValidationService() SyncCoordinatorWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncValidator(),
	}
}

func (v *SyncValidationService) Prepare(ctx context.Context, request models.SyncPrepareRequest) (models.SyncPrepareResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.SyncPrepareResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Prepare(ctx, request)
}

// Execute checks confirmation first so an unconfirmed request is always
// reported as such, whatever else is wrong with it.
func (v *SyncValidationService) Execute(ctx context.Context, request models.SyncExecuteRequest) (models.SyncExecuteResponse, error) {
	if !request.IsConfirmed() {
		return models.SyncExecuteResponse{}, ErrSyncNotConfirmed
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.SyncExecuteResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Execute(ctx, request)
}

func (v *SyncValidationService) ApplyAsDestination(ctx context.Context, mode models.SyncMode, accounts []models.SyncAccount) (models.SyncExecuteResponse, error) {
	if !mode.IsValid() {
		return models.SyncExecuteResponse{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	for i, account := range accounts {
		if err := v.validator.Validate(ctx, account); err != nil {
			return models.SyncExecuteResponse{}, fmt.Errorf("%w: account index %d: %w", ErrInvalidDataProvided, i, err)
		}
	}

	return v.inner.ApplyAsDestination(ctx, mode, accounts)
}

func (v *SyncValidationService) Wrap(inner SyncCoordinator) SyncCoordinator {
	v.inner = inner
	return v
}
