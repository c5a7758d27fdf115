package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analytics/internal/logging"
	"github.com/carson-networks/budget-analytics/internal/storage"
	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

// defaultLookbackMonths is how far before the end month an open-ended range
// starts, giving four buckets in total.
const defaultLookbackMonths = 3

// ErrRangeTooLarge is returned when a resolved range spans more months than
// the service is configured to aggregate.
var ErrRangeTooLarge = errors.New("date range too large")

// AnalyticsService computes spending aggregates over the transaction store.
type AnalyticsService struct {
	storage   *storage.Storage
	now       func() time.Time
	loc       *time.Location
	maxMonths int
}

// NewAnalyticsService creates a new AnalyticsService. Month boundaries and
// "today" are evaluated in loc. maxMonths <= 0 disables the range limit.
func NewAnalyticsService(store *storage.Storage, now func() time.Time, loc *time.Location, maxMonths int) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{
		storage:   store,
		now:       now,
		loc:       loc,
		maxMonths: maxMonths,
	}
}

// ResolveRange applies the defaults for missing dates: the end month is the
// month of EndDate or of today, the start month is the month of StartDate or
// three months before the end month.
func (s *AnalyticsService) ResolveRange(req BurnRateRequest) (start Month, end Month) {
	effectiveEnd := s.now().In(s.loc)
	if req.EndDate != nil {
		effectiveEnd = req.EndDate.In(s.loc)
	}
	end = MonthOf(effectiveEnd)

	start = end.AddMonths(-defaultLookbackMonths)
	if req.StartDate != nil {
		start = MonthOf(req.StartDate.In(s.loc))
	}
	return start, end
}

// BurnRate returns one bucket per calendar month in the resolved range,
// ascending and without gaps. A start month after the end month yields an
// empty, non-nil slice. Store errors are returned unchanged.
func (s *AnalyticsService) BurnRate(ctx context.Context, req BurnRateRequest) ([]MonthBucket, error) {
	startMonth, endMonth := s.ResolveRange(req)
	buckets := []MonthBucket{}
	if startMonth.After(endMonth) {
		return buckets, nil
	}

	if s.maxMonths > 0 {
		if months := MonthsBetween(startMonth, endMonth) + 1; months > s.maxMonths {
			return nil, fmt.Errorf("%w: %d months requested, at most %d allowed", ErrRangeTooLarge, months, s.maxMonths)
		}
	}

	logData := logging.GetLogData(ctx)
	currentMonth := MonthOf(s.now().In(s.loc))
	for m := startMonth; !m.After(endMonth); m = m.Next() {
		var stopTimer func()
		if logData != nil {
			stopTimer = logData.AddToExistingTiming("storeQueryMs")
		}
		rows, err := s.storage.Transactions.FindByDateRange(ctx, m.Start(s.loc), m.End(s.loc), req.AccountID)
		if stopTimer != nil {
			stopTimer()
		}
		if err != nil {
			return nil, err
		}

		buckets = append(buckets, MonthBucket{
			Month:          m,
			Label:          m.Label(),
			TotalSpent:     sumExpenses(rows),
			IsCurrentMonth: m == currentMonth,
		})
	}

	return buckets, nil
}

// sumExpenses adds the magnitudes of negative amounts. Null amounts and
// income contribute nothing.
func sumExpenses(rows []*sqlconfig.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		amount, ok := amountOf(row)
		if !ok || !amount.IsNegative() {
			continue
		}
		total = total.Add(amount.Abs())
	}
	return total
}
