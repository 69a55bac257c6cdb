package store

import "errors"

// Sentinel errors returned by repositories, the handle pool and the backup
// manager. Callers match them with [errors.Is].
var (
	// ErrAccountNotFound is returned when an account id does not exist in
	// the local directory. Driver foreign key violations on transactions are
	// mapped to it as well.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when a delete targets a
	// transaction that is not in the account.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAlreadyExists is returned on unique constraint violations.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrDatabaseBusy wraps transient driver errors (locked SQLite file,
	// serialization failures, dropped connections).
	ErrDatabaseBusy = errors.New("database is busy")

	// ErrAcquiringAccountStore is returned when a pooled account handle
	// cannot be acquired, either because the account is unknown or because
	// the caller gave up waiting for the account lock.
	ErrAcquiringAccountStore = errors.New("failed to acquire account store")
)

// Backup errors.
var (
	// ErrBackupOutsideBase is returned when a restore path points outside
	// the backup directory.
	ErrBackupOutsideBase = errors.New("backup path is outside the backup directory")

	// ErrBackupNotFound is returned when the snapshot file does not exist.
	ErrBackupNotFound = errors.New("backup not found")

	// ErrBackupCorrupted is returned when a snapshot cannot be decoded.
	ErrBackupCorrupted = errors.New("backup file is corrupted")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
