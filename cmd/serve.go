package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-analytics/api"
	"github.com/carson-networks/budget-analytics/internal/auth"
	"github.com/carson-networks/budget-analytics/internal/operator"
	"github.com/carson-networks/budget-analytics/internal/service"
	"github.com/carson-networks/budget-analytics/internal/storage"
)

var flagMigrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&flagMigrateOnStart, "migrate", false, "Apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, logger, err := loadEnvironment()
	if err != nil {
		return err
	}
	logger.WithField("storeBackend", env.StoreBackend).Info("budget-analytics starting")

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagMigrateOnStart {
		result, err := store.Migrate()
		if err != nil {
			return err
		}
		logger.WithField("postMigrationVersion", result.PostMigrationVersion).Info("Migration status")
	}

	delegator := operator.NewOperatorDelegator(store, env.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	rest := api.Rest{
		Logger:   logger,
		Port:     env.Port,
		Storage:  store,
		Service:  service.NewService(store, delegator, env),
		Location: env.Location(),
	}
	if env.APIToken != "" {
		rest.Auth = auth.NewStaticTokenProvider(env.APIToken, "api-token")
	} else {
		logger.Warn("API_TOKEN is empty, /v1 routes are unauthenticated")
	}

	ctx, stop := signal.NotifyContext(background(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rest.Serve(ctx)
}

func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
