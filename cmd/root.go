package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-analytics/internal/config"
	"github.com/carson-networks/budget-analytics/internal/logging"
)

var flagEnvFile string

var rootCmd = &cobra.Command{
	Use:           "budget-analytics",
	Short:         "Personal finance transactions and burn rate analytics",
	Long:          "Serves the transaction and burn rate API, applies schema migrations and seeds development data.",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("budget-analytics exited")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Optional dotenv file; real environment variables take precedence")
}

// loadEnvironment reads the dotenv file if present, then the environment,
// and builds the process logger.
func loadEnvironment() (*config.Config, *logrus.Logger, error) {
	_ = godotenv.Load(flagEnvFile)

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.SetupLogging(env.LogLevel)
	return env, logger, nil
}
