package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

var ErrMissingAccount = errors.New("account id is required")

type CreateTransaction struct {
	Transaction *sqlconfig.TransactionCreate

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer sqlconfig.ITransactionWriter) error {
	if t.Transaction == nil || t.Transaction.AccountID == uuid.Nil {
		return ErrMissingAccount
	}

	id, err := writer.Insert(ctx, t.Transaction)
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
