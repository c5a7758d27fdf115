package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-analytics/internal/auth"
	"github.com/carson-networks/budget-analytics/internal/operator/actions"
	"github.com/carson-networks/budget-analytics/internal/service"
	"github.com/carson-networks/budget-analytics/internal/storage"
	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

type noopProcessor struct{}

func (noopProcessor) Process(context.Context, actions.IAction) error { return nil }

func newTestRest(t *testing.T, provider auth.Provider) (*Rest, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	logger, _ := test.NewNullLogger()
	now := func() time.Time { return time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC) }

	return &Rest{
		Logger:   logger,
		Storage:  store,
		Location: time.UTC,
		Auth:     provider,
		Service: &service.Service{
			Analytics:   service.NewAnalyticsService(store, now, time.UTC, 120),
			Transaction: service.NewTransactionService(store, noopProcessor{}),
		},
	}, mockTable
}

func serve(handler http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandler_StatusWithoutStore(t *testing.T) {
	rest, _ := newTestRest(t, auth.NewStaticTokenProvider("s3cret", "owner"))

	w := serve(rest.Handler(), http.MethodGet, "/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_BurnRateRoute(t *testing.T) {
	rest, mockTable := newTestRest(t, nil)
	mockTable.EXPECT().
		FindByDateRange(mock.Anything, mock.Anything, mock.Anything, (*uuid.UUID)(nil)).
		Return([]*sqlconfig.Transaction{}, nil).
		Times(4)

	w := serve(rest.Handler(), http.MethodGet, "/v1/analytics/burn-rate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"monthLabel":"Nov 2025"`)
	assert.Contains(t, w.Body.String(), `"monthLabel":"Aug 2025"`)
}

func TestHandler_AuthGuardsV1Routes(t *testing.T) {
	rest, mockTable := newTestRest(t, auth.NewStaticTokenProvider("s3cret", "owner"))
	handler := rest.Handler()

	w := serve(handler, http.MethodGet, "/v1/transactions", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	mockTable.EXPECT().FindPage(mock.Anything, mock.Anything).
		Return(&sqlconfig.TransactionPage{Total: 0}, nil)

	w = serve(handler, http.MethodGet, "/v1/transactions", map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalElements":0`)
}
