package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// MonthBucket is the burn rate of one calendar month.
type MonthBucket struct {
	Month          Month
	Label          string
	TotalSpent     decimal.Decimal
	IsCurrentMonth bool
}

// BurnRateRequest selects the months to aggregate. Nil dates fall back to
// defaults; a nil AccountID covers every account.
type BurnRateRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	AccountID *uuid.UUID
}
