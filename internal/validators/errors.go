package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDirection       = errors.New("invalid sync direction")
	ErrInvalidMode            = errors.New("invalid sync mode")
	ErrNoAccountsProvided     = errors.New("no accounts provided")
	ErrInvalidSourceID        = errors.New("invalid source account id")
	ErrInvalidTargetAccountID = errors.New("invalid target account id")
	ErrEmptyAccountName       = errors.New("account name is required")
	ErrInvalidTransactionDate = errors.New("transaction date is required")
	ErrNegativeCount          = errors.New("transaction count cannot be negative")
	ErrEmptyBackupPath        = errors.New("backup path is required")
)
