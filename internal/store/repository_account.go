package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// accountDirectory is the SQL-backed [AccountDirectory].
type accountDirectory struct {
	db     *DB
	logger *logger.Logger
}

func NewAccountDirectory(db *DB, logger *logger.Logger) AccountDirectory {
	logger.Debug().Msg("creating account directory")
	return &accountDirectory{
		db:     db,
		logger: logger,
	}
}

func (r *accountDirectory) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	return queryAccounts(ctx, r.db, r.db)
}

// queryAccounts lists accounts through conn, which is db itself or one of
// its transactions.
func queryAccounts(ctx context.Context, db *DB, conn querier) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := db.queries().selectAccounts()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accountDirectory.GetAllAccounts").Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, db.classify(err))
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 8)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "accountDirectory.GetAllAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "accountDirectory.GetAllAccounts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountDirectory) GetAccountByID(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().selectAccountByID(id)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "accountDirectory.GetAccountByID").Int64("account_id", id).Msg("failed to load account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	return account, nil
}

// InsertAccount stores a new account and returns its id. A zero CreatedAt
// is set to now.
func (r *accountDirectory) InsertAccount(ctx context.Context, account models.Account) (int64, error) {
	log := logger.FromContext(ctx)

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.queries().insertAccount(account)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "accountDirectory.InsertAccount").Str("name", account.Name).Msg("failed to insert account")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	log.Info().Str("func", "accountDirectory.InsertAccount").Int64("account_id", id).Str("name", account.Name).Msg("account created")
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Name, &a.OpeningBalance, &a.Icon, &a.Color, &a.CreatedAt)
	return a, err
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID,
		&t.AccountID,
		&t.Date,
		&t.Amount,
		&t.Description,
		&t.Reason,
		&t.Classification,
		&t.CreatedAt,
		&t.ModifiedAt,
	)
	return t, err
}
