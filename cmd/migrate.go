package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-analytics/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	env, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := store.Migrate()
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"storeBackend":         env.StoreBackend,
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
	return nil
}
