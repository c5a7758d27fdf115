package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-analytics/internal/auth"
	"github.com/carson-networks/budget-analytics/internal/handlers/v1/analytics"
	"github.com/carson-networks/budget-analytics/internal/handlers/v1/status"
	"github.com/carson-networks/budget-analytics/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-analytics/internal/logging"
	"github.com/carson-networks/budget-analytics/internal/service"
	"github.com/carson-networks/budget-analytics/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Storage  *storage.Storage
	Service  *service.Service
	Location *time.Location

	// Auth guards every /v1 operation when set. /status is never guarded.
	Auth auth.Provider
}

// Handler builds the HTTP routes.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	var pinger status.Pinger
	if r.Storage != nil && r.Storage.DB != nil {
		pinger = r.Storage.DB
	}
	statusHandler := status.NewHandler(pinger)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Analytics API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))
	if r.Auth != nil {
		api.UseMiddleware(auth.Middleware(api, r.Auth, r.Logger))
	}

	analytics.NewBurnRateHandler(r.Service.Analytics, r.Location).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
