package actions

import (
	"context"

	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

// SeedTransactions inserts a batch of transactions in one store transaction.
type SeedTransactions struct {
	Transactions []sqlconfig.TransactionCreate

	Inserted int
}

func (s *SeedTransactions) Perform(ctx context.Context, writer sqlconfig.ITransactionWriter) error {
	for i := range s.Transactions {
		if _, err := writer.Insert(ctx, &s.Transactions[i]); err != nil {
			return err
		}
		s.Inserted++
	}
	return nil
}
