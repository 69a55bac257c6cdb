package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-sync/models"
)

const (
	accountsTable     = "accounts"
	transactionsTable = "transactions"
)

var accountColumns = []string{
	"id",
	"name",
	"opening_balance",
	"icon",
	"color",
	"created_at",
}

var transactionColumns = []string{
	"id",
	"account_id",
	"date",
	"amount",
	"description",
	"reason",
	"classification",
	"created_at",
	"modified_at",
}

// queryBuilder renders dialect-specific SQL: "?" placeholders for SQLite,
// "$n" for PostgreSQL. Both dialects support RETURNING.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func (q queryBuilder) selectAccounts() (string, []any, error) {
	return q.sb.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("id").
		ToSql()
}

func (q queryBuilder) selectAccountByID(id int64) (string, []any, error) {
	return q.sb.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queryBuilder) insertAccount(account models.Account) (string, []any, error) {
	return q.sb.
		Insert(accountsTable).
		Columns("name", "opening_balance", "icon", "color", "created_at").
		Values(account.Name, account.OpeningBalance, account.Icon, account.Color, account.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// insertAccountWithID keeps the original id; used when restoring a backup.
func (q queryBuilder) insertAccountWithID(account models.Account) (string, []any, error) {
	return q.sb.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(account.ID, account.Name, account.OpeningBalance, account.Icon, account.Color, account.CreatedAt).
		ToSql()
}

func (q queryBuilder) selectTransactions(accountID int64) (string, []any, error) {
	return q.sb.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("date", "id").
		ToSql()
}

func (q queryBuilder) selectAllTransactions() (string, []any, error) {
	return q.sb.
		Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("account_id", "date", "id").
		ToSql()
}

func (q queryBuilder) selectAmounts(accountID int64) (string, []any, error) {
	return q.sb.
		Select("amount").
		From(transactionsTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func (q queryBuilder) insertTransaction(t models.Transaction) (string, []any, error) {
	return q.sb.
		Insert(transactionsTable).
		Columns("account_id", "date", "amount", "description", "reason", "classification", "created_at", "modified_at").
		Values(t.AccountID, t.Date, t.Amount, t.Description, t.Reason, t.Classification, t.CreatedAt, t.ModifiedAt).
		Suffix("RETURNING id").
		ToSql()
}

// insertTransactionWithID keeps the original id; used when restoring a backup.
func (q queryBuilder) insertTransactionWithID(t models.Transaction) (string, []any, error) {
	return q.sb.
		Insert(transactionsTable).
		Columns(transactionColumns...).
		Values(t.ID, t.AccountID, t.Date, t.Amount, t.Description, t.Reason, t.Classification, t.CreatedAt, t.ModifiedAt).
		ToSql()
}

func (q queryBuilder) deleteTransaction(accountID, id int64) (string, []any, error) {
	return q.sb.
		Delete(transactionsTable).
		Where(sq.Eq{"id": id, "account_id": accountID}).
		ToSql()
}

func (q queryBuilder) deleteAll(table string) (string, []any, error) {
	return q.sb.Delete(table).ToSql()
}
