package sqlconfig

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrUnknownSortField is returned when a page filter names a column the
// table does not know how to order by.
var ErrUnknownSortField = errors.New("unknown sort field")

// FoldCase folds a category value for case-insensitive comparison. Callers
// fold filters with it, and tables that cannot rely on the database's
// lower() fold stored values with it too.
func FoldCase(s string) string {
	return strings.ToLower(s)
}

// Transaction represents a transaction record.
type Transaction struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	RawDescription   null.Val[string]
	CleanDescription null.Val[string]
	Category         null.Val[string]
	Amount           decimal.NullDecimal
	TransactionDate  time.Time
	Status           null.Val[string]
	CreatedAt        time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	AccountID        uuid.UUID
	RawDescription   null.Val[string]
	CleanDescription null.Val[string]
	Category         null.Val[string]
	Amount           decimal.NullDecimal
	TransactionDate  time.Time // defaults to now if zero
	Status           null.Val[string]
}

// SortField names an orderable transaction column independent of the backend.
type SortField string

const (
	SortByID               SortField = "id"
	SortByTransactionDate  SortField = "transaction_date"
	SortByAmount           SortField = "amount"
	SortByCategory         SortField = "category"
	SortByRawDescription   SortField = "raw_description"
	SortByCleanDescription SortField = "clean_description"
	SortByStatus           SortField = "status"
)

// Valid reports whether f names a known column.
func (f SortField) Valid() bool {
	switch f {
	case SortByID, SortByTransactionDate, SortByAmount, SortByCategory,
		SortByRawDescription, SortByCleanDescription, SortByStatus:
		return true
	}
	return false
}

// TransactionPageFilter specifies one page of a filtered, sorted listing.
// Category, when set, must already be folded with FoldCase; it is matched
// against the folded column value. NULLs sort last in either direction.
// A Limit of 0 returns no rows, only the total.
type TransactionPageFilter struct {
	Category   null.Val[string]
	Sort       SortField
	Descending bool
	Limit      int
	Offset     int
}

// TransactionPage is one page of rows plus the count of every matching row.
type TransactionPage struct {
	Transactions []*Transaction
	Total        int64
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	// FindByDateRange returns transactions dated in [start, end], both ends
	// inclusive, optionally scoped to one account.
	FindByDateRange(ctx context.Context, start, end time.Time, accountID *uuid.UUID) ([]*Transaction, error)
	FindPage(ctx context.Context, filter *TransactionPageFilter) (*TransactionPage, error)
	Count(ctx context.Context) (int64, error)
	Begin(ctx context.Context) (ITransactionWriter, error)
}

// ITransactionWriter writes inside a single store transaction.
//
//go:generate mockery --name ITransactionWriter --output mock_ITransactionWriter.go
type ITransactionWriter interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
