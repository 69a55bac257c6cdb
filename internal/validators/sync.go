package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldDirection       = "direction"
	FieldMode            = "mode"
	FieldAccounts        = "accounts"
	FieldSourceID        = "source_id"
	FieldTargetAccountID = "target_account_id"
	FieldName            = "name"
	FieldCounts          = "counts"
	FieldTransactions    = "transactions"
	FieldDate            = "date"
	FieldPath            = "path"
)

// SyncValidator checks the structure of sync protocol requests. It does
// not look at the ledger: whether a target account exists is decided per
// account during execution.
type SyncValidator struct {
}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncPrepareRequest:
		return v.validatePrepareRequest(ctx, value, fields...)
	case *models.SyncPrepareRequest:
		return v.validatePrepareRequest(ctx, *value, fields...)

	case models.SyncExecuteRequest:
		return v.validateExecuteRequest(ctx, value, fields...)
	case *models.SyncExecuteRequest:
		return v.validateExecuteRequest(ctx, *value, fields...)

	case models.SyncAccount:
		return v.validateSyncAccount(ctx, value, fields...)
	case *models.SyncAccount:
		return v.validateSyncAccount(ctx, *value, fields...)

	case models.SyncTransaction:
		return v.validateSyncTransaction(ctx, value, fields...)

	case models.RestoreRequest:
		return v.validateRestoreRequest(ctx, value, fields...)
	case *models.RestoreRequest:
		return v.validateRestoreRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validatePrepareRequest(ctx context.Context, request models.SyncPrepareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirection, FieldMode, FieldAccounts}
	}

	for _, f := range fields {
		switch f {
		case FieldDirection:
			if !request.Direction.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidDirection, request.Direction)
			}
		case FieldMode:
			if !request.Mode.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidMode, request.Mode)
			}
		case FieldAccounts:
			if err := v.validateAccounts(ctx, request.SourceAccounts); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateExecuteRequest(ctx context.Context, request models.SyncExecuteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirection, FieldMode, FieldAccounts}
	}

	for _, f := range fields {
		switch f {
		case FieldDirection:
			if !request.Direction.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidDirection, request.Direction)
			}
		case FieldMode:
			if !request.Mode.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidMode, request.Mode)
			}
		case FieldAccounts:
			if err := v.validateAccounts(ctx, request.Accounts); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateAccounts(ctx context.Context, accounts []models.SyncAccount) error {
	if len(accounts) == 0 {
		return ErrNoAccountsProvided
	}

	for i, account := range accounts {
		if err := v.validateSyncAccount(ctx, account); err != nil {
			return fmt.Errorf("validation error at account index %d: %w", i, err)
		}
	}

	return nil
}

// validateSyncAccount accepts a missing target id: an unmapped account is
// reported per account by the coordinator, not as a malformed request.
func (v *SyncValidator) validateSyncAccount(ctx context.Context, account models.SyncAccount, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSourceID, FieldTargetAccountID, FieldName, FieldCounts, FieldTransactions}
	}

	for _, f := range fields {
		switch f {
		case FieldSourceID:
			if account.SourceID <= 0 {
				return ErrInvalidSourceID
			}
		case FieldTargetAccountID:
			if account.TargetAccountID != nil && *account.TargetAccountID <= 0 {
				return ErrInvalidTargetAccountID
			}
		case FieldName:
			if strings.TrimSpace(account.Name) == "" {
				return ErrEmptyAccountName
			}
		case FieldCounts:
			if account.TransactionCount < 0 || account.ClassifiedCount < 0 {
				return ErrNegativeCount
			}
		case FieldTransactions:
			for i, t := range account.Transactions {
				if err := v.validateSyncTransaction(ctx, t); err != nil {
					return fmt.Errorf("validation error at transaction index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateSyncTransaction(ctx context.Context, t models.SyncTransaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if t.Date.IsZero() {
				return ErrInvalidTransactionDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateRestoreRequest(ctx context.Context, request models.RestoreRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if strings.TrimSpace(request.Path) == "" {
				return ErrEmptyBackupPath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
