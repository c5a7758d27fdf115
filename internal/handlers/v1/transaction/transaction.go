package transaction

import (
	"time"

	"github.com/carson-networks/budget-analytics/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID               string  `json:"id" doc:"Transaction UUID"`
	AccountID        string  `json:"accountID" doc:"Account UUID"`
	RawDescription   *string `json:"rawDescription" nullable:"true" doc:"Description as imported from the bank"`
	CleanDescription *string `json:"cleanDescription" nullable:"true" doc:"Cleaned merchant name, null until cleaned"`
	Category         *string `json:"category" nullable:"true" doc:"Category, null when uncategorized"`
	Amount           *string `json:"amount" nullable:"true" doc:"Decimal amount, negative for expenses"`
	TransactionDate  string  `json:"transactionDate" doc:"RFC3339 transaction date"`
	Status           string  `json:"status" doc:"Persisted status, or one of Cleaned, Flagged, Raw"`
}

func fromSummary(tx service.TransactionSummary) Transaction {
	var amount *string
	if tx.Amount.Valid {
		s := tx.Amount.Decimal.StringFixed(2)
		amount = &s
	}

	return Transaction{
		ID:               tx.ID.String(),
		AccountID:        tx.AccountID.String(),
		RawDescription:   tx.RawDescription.Ptr(),
		CleanDescription: tx.CleanDescription.Ptr(),
		Category:         tx.Category.Ptr(),
		Amount:           amount,
		TransactionDate:  tx.TransactionDate.Format(time.RFC3339),
		Status:           tx.Status,
	}
}
