package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-analytics/internal/logging"
	"github.com/carson-networks/budget-analytics/internal/storage"
	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

// fixedNow is mid-November 2025.
var fixedNow = time.Date(2025, 11, 18, 15, 4, 5, 0, time.UTC)

func newAnalyticsTestService(t *testing.T, maxMonths int) (*AnalyticsService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewAnalyticsService(store, func() time.Time { return fixedNow }, time.UTC, maxMonths)
	return svc, mockTable
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func row(amount string) *sqlconfig.Transaction {
	r := &sqlconfig.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		AccountID:       uuid.Must(uuid.NewV4()),
		RawDescription:  null.From("POS PURCHASE"),
		TransactionDate: fixedNow,
	}
	if amount != "" {
		r.Amount = decimal.NewNullDecimal(decimal.RequireFromString(amount))
	}
	return r
}

// expectMonth registers a range query for exactly month m.
func expectMonth(mockTable *sqlconfig.MockITransactionTable, m Month, rows ...*sqlconfig.Transaction) {
	mockTable.EXPECT().
		FindByDateRange(mock.Anything, m.Start(time.UTC), m.End(time.UTC), (*uuid.UUID)(nil)).
		Return(rows, nil).
		Once()
}

func TestBurnRate_DefaultsToFourMonthsEndingNow(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	for m := (Month{2025, time.August}); !m.After(Month{2025, time.November}); m = m.Next() {
		expectMonth(mockTable, m)
	}

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{})

	require.NoError(t, err)
	require.Len(t, buckets, 4)
	assert.Equal(t, "Aug 2025", buckets[0].Label)
	assert.Equal(t, "Nov 2025", buckets[3].Label)
	for i, bucket := range buckets {
		assert.Equal(t, i == 3, bucket.IsCurrentMonth, bucket.Label)
		assert.True(t, bucket.TotalSpent.IsZero(), bucket.Label)
	}
}

func TestBurnRate_SumsExpenseMagnitudes(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	nov := Month{2025, time.November}
	expectMonth(mockTable, nov, row("-100.00"), row("-50.00"), row("200.00"), row(""))

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{
		StartDate: date(2025, time.November, 3),
		EndDate:   date(2025, time.November, 20),
	})

	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.True(t, decimal.RequireFromString("150.00").Equal(buckets[0].TotalSpent), buckets[0].TotalSpent.String())
	assert.Equal(t, nov, buckets[0].Month)
	assert.True(t, buckets[0].IsCurrentMonth)
}

func TestBurnRate_ExactDecimalArithmetic(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	rows := make([]*sqlconfig.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, row("-0.10"))
	}
	expectMonth(mockTable, Month{2025, time.November}, rows...)

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{StartDate: date(2025, time.November, 1)})

	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "1", buckets[0].TotalSpent.String())
}

func TestBurnRate_SpansYearBoundaryWithoutGaps(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	months := []Month{
		{2024, time.November},
		{2024, time.December},
		{2025, time.January},
		{2025, time.February},
	}
	for _, m := range months {
		expectMonth(mockTable, m)
	}

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{
		StartDate: date(2024, time.November, 30),
		EndDate:   date(2025, time.February, 1),
	})

	require.NoError(t, err)
	require.Len(t, buckets, len(months))
	for i, m := range months {
		assert.Equal(t, m, buckets[i].Month)
		assert.False(t, buckets[i].IsCurrentMonth, "range excludes the real current month")
	}
}

func TestBurnRate_CurrentMonthFollowsWallClockNotEndDate(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	for m := (Month{2025, time.September}); !m.After(Month{2025, time.December}); m = m.Next() {
		expectMonth(mockTable, m)
	}

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{EndDate: date(2025, time.December, 15)})

	require.NoError(t, err)
	require.Len(t, buckets, 4)
	assert.False(t, buckets[3].IsCurrentMonth)
	assert.True(t, buckets[2].IsCurrentMonth)
}

func TestBurnRate_StartAfterEndIsEmpty(t *testing.T) {
	svc, _ := newAnalyticsTestService(t, 0)

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{
		StartDate: date(2025, time.December, 1),
		EndDate:   date(2025, time.October, 1),
	})

	require.NoError(t, err)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestBurnRate_StartAfterDefaultEndIsEmpty(t *testing.T) {
	svc, _ := newAnalyticsTestService(t, 0)

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{StartDate: date(2026, time.March, 1)})

	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestBurnRate_PassesAccountScope(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	accountID := uuid.Must(uuid.NewV4())
	nov := Month{2025, time.November}
	mockTable.EXPECT().
		FindByDateRange(mock.Anything, nov.Start(time.UTC), nov.End(time.UTC), &accountID).
		Return([]*sqlconfig.Transaction{row("-12.34")}, nil)

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{
		StartDate: date(2025, time.November, 1),
		AccountID: &accountID,
	})

	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "12.34", buckets[0].TotalSpent.StringFixed(2))
}

func TestBurnRate_RangeTooLarge(t *testing.T) {
	svc, _ := newAnalyticsTestService(t, 12)

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{
		StartDate: date(2024, time.November, 1),
		EndDate:   date(2025, time.November, 1),
	})

	assert.ErrorIs(t, err, ErrRangeTooLarge)
	assert.Nil(t, buckets)
}

func TestBurnRate_StoreErrorPropagatesUnchanged(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	storeErr := errors.New("database unavailable")
	expectMonth(mockTable, Month{2025, time.October}, row("-5.00"))
	mockTable.EXPECT().
		FindByDateRange(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, storeErr).
		Once()

	buckets, err := svc.BurnRate(context.Background(), BurnRateRequest{StartDate: date(2025, time.October, 1)})

	assert.Same(t, storeErr, err)
	assert.Nil(t, buckets)
}

func TestBurnRate_Idempotent(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	nov := Month{2025, time.November}
	mockTable.EXPECT().
		FindByDateRange(mock.Anything, nov.Start(time.UTC), nov.End(time.UTC), (*uuid.UUID)(nil)).
		Return([]*sqlconfig.Transaction{row("-7.25"), row("3.00")}, nil).
		Twice()

	req := BurnRateRequest{StartDate: date(2025, time.November, 1)}
	first, err := svc.BurnRate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.BurnRate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveRange_UsesConfiguredLocation(t *testing.T) {
	mockTable := sqlconfig.NewMockITransactionTable(t)
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	lateOctoberUTC := time.Date(2025, 10, 31, 23, 0, 0, 0, time.UTC)
	svc := NewAnalyticsService(&storage.Storage{Transactions: mockTable}, func() time.Time { return lateOctoberUTC }, plusTwo, 0)

	start, end := svc.ResolveRange(BurnRateRequest{})

	assert.Equal(t, Month{2025, time.November}, end)
	assert.Equal(t, Month{2025, time.August}, start)
}

func TestBurnRate_AccumulatesStoreQueryTiming(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t, 0)

	expectMonth(mockTable, Month{2025, time.October}, row("-5.00"))
	expectMonth(mockTable, Month{2025, time.November})

	logger, hook := test.NewNullLogger()
	logData := logging.NewLogData(logger)
	ctx := logging.WithLogData(context.Background(), logData)

	_, err := svc.BurnRate(ctx, BurnRateRequest{StartDate: date(2025, time.October, 1)})
	require.NoError(t, err)

	logData.Log().Info("done")
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Data, "storeQueryMs")
}
