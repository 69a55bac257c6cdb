package service

import "errors"

var (
	ErrSyncNotConfirmed         = errors.New("sync not confirmed")
	ErrInvalidDirection         = errors.New("invalid sync direction")
	ErrInvalidMode              = errors.New("invalid sync mode")
	ErrTargetAccountNotResolved = errors.New("target account not resolved")
	ErrInvalidAccountID         = errors.New("invalid account id")
	ErrInvalidDataProvided      = errors.New("invalid data provided")
	ErrIntegrityCheckFailed     = errors.New("integrity check failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDeviceIDUnavailable   = errors.New("device id unavailable")

	ErrBackupFailed     = errors.New("backup failed")
	ErrRestoreFailed    = errors.New("restore failed")
	ErrNoPlanAccounts   = errors.New("sync plan has no accounts")
	ErrRemoteSync       = errors.New("remote sync failed")
	ErrLocalApplyFailed = errors.New("applying synced data locally failed")
)
