package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/migrations"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// snapshotRepository exports and imports the whole ledger. It backs the
// file backup manager.
type snapshotRepository struct {
	db *DB
}

func newSnapshotRepository(db *DB) *snapshotRepository {
	return &snapshotRepository{db: db}
}

// Export reads every account and transaction inside one read-only
// transaction so both lists come from the same state of the ledger.
func (r *snapshotRepository) Export(ctx context.Context) (models.LedgerSnapshot, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, r.snapshotTxOptions())
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.Export").Msg("failed to begin transaction")
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback() //nolint:errcheck

	accounts, err := queryAccounts(ctx, r.db, tx)
	if err != nil {
		return models.LedgerSnapshot{}, err
	}

	query, args, err := r.db.queries().selectAllTransactions()
	if err != nil {
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.Export").Msg("failed to query transactions")
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, 256)
	for rows.Next() {
		t, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.Export").Msg("failed to commit transaction")
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(err))
	}

	return models.LedgerSnapshot{
		CreatedAt:    time.Now().UTC(),
		Accounts:     accounts,
		Transactions: transactions,
	}, nil
}

// snapshotTxOptions asks PostgreSQL for a repeatable-read snapshot. The
// SQLite driver ignores the options; its transactions already see one
// consistent state.
func (r *snapshotRepository) snapshotTxOptions() *sql.TxOptions {
	if r.db.dialect == migrations.DialectPostgres {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return nil
}

// Import replaces the ledger with snapshot in one database transaction.
// Ids are preserved.
func (r *snapshotRepository) Import(ctx context.Context, snapshot models.LedgerSnapshot) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.Import").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback() //nolint:errcheck

	q := r.db.queries()

	for _, table := range []string{transactionsTable, accountsTable} {
		query, args, err := q.deleteAll(table)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "snapshotRepository.Import").Str("table", table).Msg("failed to clear table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
	}

	for _, account := range snapshot.Accounts {
		query, args, err := q.insertAccountWithID(account)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "snapshotRepository.Import").Int64("account_id", account.ID).Msg("failed to restore account")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
	}

	for _, t := range snapshot.Transactions {
		query, args, err := q.insertTransactionWithID(t)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "snapshotRepository.Import").Int64("transaction_id", t.ID).Msg("failed to restore transaction")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
	}

	if r.db.dialect == migrations.DialectPostgres {
		if err := resetPostgresSequences(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.Import").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "snapshotRepository.Import").
		Int("accounts", len(snapshot.Accounts)).
		Int("transactions", len(snapshot.Transactions)).
		Msg("ledger restored")
	return nil
}

// resetPostgresSequences moves identity sequences past the restored ids.
func resetPostgresSequences(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{accountsTable, transactionsTable} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table,
		)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}
