package service

import (
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionSummary is a stored transaction with its status resolved.
type TransactionSummary struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	RawDescription   null.Val[string]
	CleanDescription null.Val[string]
	Category         null.Val[string]
	Amount           decimal.NullDecimal
	TransactionDate  time.Time
	Status           string
}

// NewTransaction is the input for recording a transaction.
type NewTransaction struct {
	AccountID        uuid.UUID
	RawDescription   null.Val[string]
	CleanDescription null.Val[string]
	Category         null.Val[string]
	Amount           decimal.NullDecimal
	TransactionDate  time.Time // defaults to now if zero
	Status           null.Val[string]
}

// PageRequest selects one zero-indexed page of the transaction listing.
// Category and SortDirection are matched case-insensitively.
type PageRequest struct {
	Page          int
	Size          int
	Category      string
	SortField     string
	SortDirection string
}

// Page is one page of a listing plus totals over every matching row.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
