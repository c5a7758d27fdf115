package actions

import (
	"context"

	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

// IAction is one unit of work run by an operator inside a store transaction.
// Returning an error rolls the transaction back.
type IAction interface {
	Perform(ctx context.Context, writer sqlconfig.ITransactionWriter) error
}
