package service

import (
	"time"

	"github.com/carson-networks/budget-analytics/internal/config"
	"github.com/carson-networks/budget-analytics/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Analytics   *AnalyticsService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage. Writes go through
// operator.
func NewService(store *storage.Storage, operator ActionProcessor, env *config.Config) *Service {
	return &Service{
		Analytics:   NewAnalyticsService(store, time.Now, env.Location(), env.BurnRateMaxMonths),
		Transaction: NewTransactionService(store, operator),
	}
}
