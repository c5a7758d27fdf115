package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-analytics/internal/service"
)

type mockBurnRateCalculator struct {
	mock.Mock
}

func (m *mockBurnRateCalculator) BurnRate(ctx context.Context, req service.BurnRateRequest) ([]service.MonthBucket, error) {
	args := m.Called(ctx, req)
	buckets, _ := args.Get(0).([]service.MonthBucket)
	return buckets, args.Error(1)
}

func newTestAPI(t *testing.T, svc burnRateCalculator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewBurnRateHandler(svc, time.UTC).Register(api)
	return api
}

// -- parseBurnRateInput unit tests --

func TestParseBurnRateInput_Empty(t *testing.T) {
	req, err := parseBurnRateInput(&BurnRateInput{}, time.UTC)

	require.NoError(t, err)
	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
	assert.Nil(t, req.AccountID)
}

func TestParseBurnRateInput_DatesInLocation(t *testing.T) {
	plusTen := time.FixedZone("UTC+10", 10*60*60)
	accountID := uuid.Must(uuid.NewV4())

	req, err := parseBurnRateInput(&BurnRateInput{
		StartDate: "2025-08-01",
		EndDate:   "2025-11-30",
		AccountID: accountID.String(),
	}, plusTen)

	require.NoError(t, err)
	require.NotNil(t, req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, plusTen), *req.StartDate)
	assert.Equal(t, time.Date(2025, 11, 30, 0, 0, 0, 0, plusTen), *req.EndDate)
	require.NotNil(t, req.AccountID)
	assert.Equal(t, accountID, *req.AccountID)
}

func TestParseBurnRateInput_InvalidDate(t *testing.T) {
	_, err := parseBurnRateInput(&BurnRateInput{EndDate: "11/30/2025"}, time.UTC)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_BurnRate_NoParameters(t *testing.T) {
	mockSvc := new(mockBurnRateCalculator)
	mockSvc.On("BurnRate", mock.Anything, service.BurnRateRequest{}).Return([]service.MonthBucket{
		{Month: service.Month{Year: 2025, Month: time.October}, Label: "Oct 2025", TotalSpent: decimal.Zero},
		{Month: service.Month{Year: 2025, Month: time.November}, Label: "Nov 2025", TotalSpent: decimal.RequireFromString("150"), IsCurrentMonth: true},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/analytics/burn-rate")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []MonthBucket
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, MonthBucket{Month: "2025-10", MonthLabel: "Oct 2025", TotalSpent: "0.00"}, body[0])
	assert.Equal(t, MonthBucket{Month: "2025-11", MonthLabel: "Nov 2025", TotalSpent: "150.00", IsCurrentMonth: true}, body[1])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BurnRate_PassesRangeAndAccount(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBurnRateCalculator)
	mockSvc.On("BurnRate", mock.Anything, mock.MatchedBy(func(req service.BurnRateRequest) bool {
		return req.StartDate != nil && req.StartDate.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) &&
			req.EndDate != nil && req.EndDate.Equal(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)) &&
			req.AccountID != nil && *req.AccountID == accountID
	})).Return([]service.MonthBucket{}, nil)

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf(
		"/v1/analytics/burn-rate?startDate=2025-01-15&endDate=2025-03-02&accountID=%s", accountID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BurnRate_EmptyRangeIsEmptyArray(t *testing.T) {
	mockSvc := new(mockBurnRateCalculator)
	mockSvc.On("BurnRate", mock.Anything, mock.Anything).Return([]service.MonthBucket{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/analytics/burn-rate?startDate=2025-12-01&endDate=2025-10-01")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_BurnRate_InvalidDate(t *testing.T) {
	mockSvc := new(mockBurnRateCalculator)

	resp := newTestAPI(t, mockSvc).Get("/v1/analytics/burn-rate?startDate=yesterday")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "BurnRate")
}

func TestHTTP_BurnRate_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockBurnRateCalculator)

	resp := newTestAPI(t, mockSvc).Get("/v1/analytics/burn-rate?accountID=12345")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "BurnRate")
}

func TestHTTP_BurnRate_RangeTooLarge(t *testing.T) {
	mockSvc := new(mockBurnRateCalculator)
	mockSvc.On("BurnRate", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: 300 months requested, at most 120 allowed", service.ErrRangeTooLarge))

	resp := newTestAPI(t, mockSvc).Get("/v1/analytics/burn-rate?startDate=2000-01-01")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BurnRate_ServiceError(t *testing.T) {
	mockSvc := new(mockBurnRateCalculator)
	mockSvc.On("BurnRate", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/analytics/burn-rate")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
