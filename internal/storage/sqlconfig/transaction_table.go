package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "account_id", "raw_description", "clean_description", "category",
	"amount", "transaction_date", "status", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable is the PostgreSQL implementation of ITransactionTable.
type TransactionsTable struct {
	db bob.DB
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: bob.NewDB(db)}
}

type transactionRow struct {
	ID               uuid.UUID           `db:"id"`
	AccountID        uuid.UUID           `db:"account_id"`
	RawDescription   null.Val[string]    `db:"raw_description"`
	CleanDescription null.Val[string]    `db:"clean_description"`
	Category         null.Val[string]    `db:"category"`
	Amount           decimal.NullDecimal `db:"amount"`
	TransactionDate  time.Time           `db:"transaction_date"`
	Status           null.Val[string]    `db:"status"`
	CreatedAt        time.Time           `db:"created_at"`
}

// FindByDateRange returns transactions dated in [start, end] ordered by date.
func (t *TransactionsTable) FindByDateRange(ctx context.Context, start, end time.Time, accountID *uuid.UUID) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(end))),
	}
	if accountID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*accountID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transaction_date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, t.db, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowsToTransactions(rows), nil
}

// FindPage returns one sorted page and the total number of matching rows.
func (t *TransactionsTable) FindPage(ctx context.Context, filter *TransactionPageFilter) (*TransactionPage, error) {
	if !filter.Sort.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, filter.Sort)
	}

	var whereMods []bob.Mod[*dialect.SelectQuery]
	if category, ok := filter.Category.Get(); ok {
		whereMods = append(whereMods, sm.Where(psql.Raw("lower(category) = ?", category)))
	}

	countMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns("count(*)"),
		sm.From(transactionsTableName),
	}, whereMods...)
	total, err := bob.One(ctx, t.db, psql.Select(countMods...), scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, err
	}

	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}, whereMods...)
	if filter.Descending {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote(string(filter.Sort))).Desc().NullsLast(),
			sm.OrderBy(psql.Quote("id")).Desc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote(string(filter.Sort))).Asc().NullsLast(),
			sm.OrderBy(psql.Quote("id")).Asc(),
		)
	}
	queryMods = append(queryMods,
		sm.Limit(filter.Limit),
		sm.Offset(filter.Offset),
	)

	rows, err := bob.All(ctx, t.db, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	return &TransactionPage{Transactions: rowsToTransactions(rows), Total: total}, nil
}

// Count returns the number of stored transactions.
func (t *TransactionsTable) Count(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From(transactionsTableName),
	)
	return bob.One(ctx, t.db, q, scan.SingleColumnMapper[int64])
}

// Begin opens a store transaction for writes.
func (t *TransactionsTable) Begin(ctx context.Context) (ITransactionWriter, error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &TransactionsWriter{tx: tx}, nil
}

var _ ITransactionWriter = (*TransactionsWriter)(nil)

// TransactionsWriter inserts transactions inside a bob.Tx.
type TransactionsWriter struct {
	tx bob.Tx
}

// Insert creates a new transaction and returns its generated ID.
func (w *TransactionsWriter) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	q := psql.Insert(
		im.Into(transactionsTableName,
			"id", "account_id", "raw_description", "clean_description", "category",
			"amount", "transaction_date", "status", "created_at",
		),
		im.Values(
			psql.Arg(id), psql.Arg(create.AccountID), psql.Arg(create.RawDescription),
			psql.Arg(create.CleanDescription), psql.Arg(create.Category), psql.Arg(create.Amount),
			psql.Arg(transactionDate), psql.Arg(create.Status), psql.Arg(time.Now()),
		),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *TransactionsWriter) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *TransactionsWriter) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}

func rowsToTransactions(rows []transactionRow) []*Transaction {
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = rowToTransaction(&rows[i])
	}
	return result
}

func rowToTransaction(row *transactionRow) *Transaction {
	return &Transaction{
		ID:               row.ID,
		AccountID:        row.AccountID,
		RawDescription:   row.RawDescription,
		CleanDescription: row.CleanDescription,
		Category:         row.Category,
		Amount:           row.Amount,
		TransactionDate:  row.TransactionDate,
		Status:           row.Status,
		CreatedAt:        row.CreatedAt,
	}
}
