package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analytics/internal/logging"
	"github.com/carson-networks/budget-analytics/internal/operator/actions"
	"github.com/carson-networks/budget-analytics/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID        string `json:"accountID" required:"true" format:"uuid" doc:"Account UUID"`
	RawDescription   string `json:"rawDescription" required:"true" minLength:"1" doc:"Description as imported from the bank"`
	CleanDescription string `json:"cleanDescription,omitempty" doc:"Cleaned merchant name"`
	Category         string `json:"category,omitempty" maxLength:"100" doc:"Category"`
	Amount           string `json:"amount,omitempty" doc:"Decimal amount, negative for expenses"`
	TransactionDate  string `json:"transactionDate,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	Status           string `json:"status,omitempty" maxLength:"20" doc:"Persisted status overriding the derived one"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for a created transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.NewTransaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records a new transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// optionalString maps an omitted or empty field to null.
func optionalString(s string) null.Val[string] {
	if s == "" {
		return null.Val[string]{}
	}
	return null.From(s)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var amount decimal.NullDecimal
	if input.Body.Amount != "" {
		d, err := decimal.NewFromString(input.Body.Amount)
		if err != nil {
			return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		amount = decimal.NewNullDecimal(d)
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	return service.NewTransaction{
		AccountID:        accountID,
		RawDescription:   optionalString(input.Body.RawDescription),
		CleanDescription: optionalString(input.Body.CleanDescription),
		Category:         optionalString(input.Body.Category),
		Amount:           amount,
		TransactionDate:  transactionDate,
		Status:           optionalString(input.Body.Status),
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	transaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, transaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, actions.ErrMissingAccount) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{ID: id.String()}}, nil
}
