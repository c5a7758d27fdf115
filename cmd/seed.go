package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-analytics/internal/operator"
	"github.com/carson-networks/budget-analytics/internal/operator/actions"
	"github.com/carson-networks/budget-analytics/internal/seed"
	"github.com/carson-networks/budget-analytics/internal/storage"
)

var (
	flagSeedCount   int
	flagSeedValue   uint64
	flagSeedAccount string
	flagSeedForce   bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert synthetic transactions into an empty store",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&flagSeedCount, "count", seed.DefaultCount, "Number of transactions to generate")
	seedCmd.Flags().Uint64Var(&flagSeedValue, "seed", 1, "Random seed; the same seed generates the same transactions")
	seedCmd.Flags().StringVar(&flagSeedAccount, "account", "", "Account UUID for the generated transactions (random when empty)")
	seedCmd.Flags().BoolVar(&flagSeedForce, "force", false, "Seed even when the store already has transactions")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if flagSeedCount < 1 {
		return fmt.Errorf("invalid --count %d: must be at least 1", flagSeedCount)
	}

	accountID, err := seedAccount(flagSeedAccount)
	if err != nil {
		return err
	}

	env, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := background(cmd)
	existing, err := store.Transactions.Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 && !flagSeedForce {
		logger.WithField("existing", existing).Info("Seed.Skipped")
		return nil
	}

	delegator := operator.NewOperatorDelegator(store, 1, logger)
	delegator.Start()
	defer delegator.Stop()

	r := rand.New(rand.NewPCG(flagSeedValue, flagSeedValue))
	action := &actions.SeedTransactions{
		Transactions: seed.Generate(r, flagSeedCount, accountID, time.Now().In(env.Location())),
	}
	if err := delegator.Process(ctx, action); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"inserted":  action.Inserted,
		"accountID": accountID.String(),
	}).Info("Seed.Complete")
	return nil
}

func seedAccount(flag string) (uuid.UUID, error) {
	if flag == "" {
		return uuid.NewV4()
	}
	accountID, err := uuid.FromString(flag)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --account %q: %w", flag, err)
	}
	return accountID, nil
}
