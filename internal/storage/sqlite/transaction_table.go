// Package sqlite stores transactions in a local SQLite database. Amounts are
// kept as decimal text and timestamps as fixed-width UTC text so that string
// comparison matches chronological order.
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	sqlitedriver "modernc.org/sqlite"

	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

// timeLayout is RFC 3339 with a fixed nine-digit fraction.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const selectColumns = `id, account_id, raw_description, clean_description, category,
	amount, transaction_date, status, created_at`

// foldCaseFunction folds text with sqlconfig.FoldCase. SQLite's lower() only
// folds ASCII.
const foldCaseFunction = "fold_case"

func init() {
	sqlitedriver.MustRegisterDeterministicScalarFunction(foldCaseFunction, 1, foldCase)
}

func foldCase(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return sqlconfig.FoldCase(v), nil
	case []byte:
		return sqlconfig.FoldCase(string(v)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", foldCaseFunction, v)
	}
}

var _ sqlconfig.ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	db *sql.DB
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: db}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// FindByDateRange returns transactions dated in [start, end] ordered by date.
func (t *TransactionsTable) FindByDateRange(ctx context.Context, start, end time.Time, accountID *uuid.UUID) ([]*sqlconfig.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions
		WHERE transaction_date >= ? AND transaction_date <= ?`
	args := []any{formatTime(start), formatTime(end)}
	if accountID != nil {
		query += ` AND account_id = ?`
		args = append(args, accountID.String())
	}
	query += ` ORDER BY transaction_date ASC, id ASC`

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// FindPage returns one sorted page and the total number of matching rows.
func (t *TransactionsTable) FindPage(ctx context.Context, filter *sqlconfig.TransactionPageFilter) (*sqlconfig.TransactionPage, error) {
	if !filter.Sort.Valid() {
		return nil, fmt.Errorf("%w: %q", sqlconfig.ErrUnknownSortField, filter.Sort)
	}

	where := ""
	var args []any
	if category, ok := filter.Category.Get(); ok {
		where = ` WHERE ` + foldCaseFunction + `(category) = ?`
		args = append(args, category)
	}

	var total int64
	if err := t.db.QueryRowContext(ctx, `SELECT count(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	orderExpr := string(filter.Sort)
	if filter.Sort == sqlconfig.SortByAmount {
		orderExpr = "CAST(amount AS REAL)"
	}

	var query strings.Builder
	query.WriteString(`SELECT ` + selectColumns + ` FROM transactions`)
	query.WriteString(where)
	fmt.Fprintf(&query, ` ORDER BY %s %s NULLS LAST, id %s LIMIT ? OFFSET ?`, orderExpr, direction, direction)

	rows, err := t.db.QueryContext(ctx, query.String(), append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions, err := scanTransactions(rows)
	if err != nil {
		return nil, err
	}
	return &sqlconfig.TransactionPage{Transactions: transactions, Total: total}, nil
}

// Count returns the number of stored transactions.
func (t *TransactionsTable) Count(ctx context.Context) (int64, error) {
	var total int64
	err := t.db.QueryRowContext(ctx, `SELECT count(*) FROM transactions`).Scan(&total)
	return total, err
}

// Begin opens a store transaction for writes.
func (t *TransactionsTable) Begin(ctx context.Context) (sqlconfig.ITransactionWriter, error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &TransactionsWriter{tx: tx}, nil
}

var _ sqlconfig.ITransactionWriter = (*TransactionsWriter)(nil)

type TransactionsWriter struct {
	tx *sql.Tx
}

// Insert creates a new transaction and returns its generated ID.
func (w *TransactionsWriter) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	_, err = w.tx.ExecContext(ctx, `INSERT INTO transactions (
		id, account_id, raw_description, clean_description, category,
		amount, transaction_date, status, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(),
		create.AccountID.String(),
		create.RawDescription,
		create.CleanDescription,
		create.Category,
		create.Amount,
		formatTime(transactionDate),
		create.Status,
		formatTime(time.Now()),
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (w *TransactionsWriter) Commit(_ context.Context) error {
	return w.tx.Commit()
}

func (w *TransactionsWriter) Rollback(_ context.Context) error {
	return w.tx.Rollback()
}

func scanTransactions(rows *sql.Rows) ([]*sqlconfig.Transaction, error) {
	var result []*sqlconfig.Transaction
	for rows.Next() {
		var (
			tx              sqlconfig.Transaction
			transactionDate string
			createdAt       string
		)
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.RawDescription, &tx.CleanDescription, &tx.Category,
			&tx.Amount, &transactionDate, &tx.Status, &createdAt)
		if err != nil {
			return nil, err
		}

		tx.TransactionDate, err = time.Parse(timeLayout, transactionDate)
		if err != nil {
			return nil, fmt.Errorf("parse transaction_date %q: %w", transactionDate, err)
		}
		tx.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}

		result = append(result, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
