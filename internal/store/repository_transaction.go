package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/shopspring/decimal"
)

// accountStore reads and writes the transactions of a single account. It is
// only reachable through [AccountStorePool.Acquire]. conn is either the
// shared pool or, inside WithinTx, a single transaction.
type accountStore struct {
	db        *DB
	conn      querier
	accountID int64
}

func newAccountStore(db *DB, accountID int64) *accountStore {
	return &accountStore{db: db, conn: db, accountID: accountID}
}

func (s *accountStore) AccountID() int64 {
	return s.accountID
}

// WithinTx runs fn with a store bound to one database transaction. The
// transaction commits when fn returns nil and rolls back otherwise. Calls
// made on a store that is already transactional reuse that transaction.
func (s *accountStore) WithinTx(ctx context.Context, fn func(AccountStore) error) error {
	if _, ok := s.conn.(*sql.Tx); ok {
		return fn(s)
	}

	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "accountStore.WithinTx").
			Int64("account_id", s.accountID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, s.db.classify(err))
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(&accountStore{db: s.db, conn: tx, accountID: s.accountID}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "accountStore.WithinTx").
			Int64("account_id", s.accountID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, s.db.classify(err))
	}

	return nil
}

// GetAllTransactions returns the account's transactions ordered by date.
func (s *accountStore) GetAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.queries().selectTransactions(s.accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountStore.GetAllTransactions").
			Int64("account_id", s.accountID).
			Msg("failed to query transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.classify(err))
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, 64)
	for rows.Next() {
		t, scanErr := scanTransaction(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "accountStore.GetAllTransactions").
				Int64("account_id", s.accountID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "accountStore.GetAllTransactions").
			Int64("account_id", s.accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, nil
}

// InsertTransaction stores t under this account regardless of t.AccountID.
func (s *accountStore) InsertTransaction(ctx context.Context, t models.Transaction) (int64, error) {
	log := logger.FromContext(ctx)

	t.AccountID = s.accountID
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.ModifiedAt.IsZero() {
		t.ModifiedAt = t.CreatedAt
	}

	query, args, err := s.db.queries().insertTransaction(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := s.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "accountStore.InsertTransaction").
			Int64("account_id", s.accountID).
			Str("date", t.Date.String()).
			Msg("failed to insert transaction")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.classify(err))
	}

	return id, nil
}

func (s *accountStore) DeleteTransaction(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.queries().deleteTransaction(s.accountID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountStore.DeleteTransaction").
			Int64("account_id", s.accountID).
			Int64("transaction_id", id).
			Msg("failed to delete transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, s.db.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrTransactionNotFound, id)
	}

	return nil
}

// GetTotalBalance returns openingBalance plus the sum of all amounts. The
// sum is taken in Go so SQLite's TEXT amounts keep full precision.
func (s *accountStore) GetTotalBalance(ctx context.Context, openingBalance decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.queries().selectAmounts(s.accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountStore.GetTotalBalance").
			Int64("account_id", s.accountID).
			Msg("failed to query amounts")
		return decimal.Zero, fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.classify(err))
	}
	defer rows.Close()

	total := openingBalance
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		total = total.Add(amount)
	}

	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return total, nil
}
