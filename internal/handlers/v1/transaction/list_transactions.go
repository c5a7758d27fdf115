package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-analytics/internal/logging"
	"github.com/carson-networks/budget-analytics/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Page     int    `query:"page" default:"0" minimum:"0" doc:"Zero-indexed page number"`
	Size     int    `query:"size" default:"10" minimum:"1" maximum:"100" doc:"Page size"`
	Category string `query:"category" doc:"Case-insensitive category filter; empty or All lists every category"`
	Sort     string `query:"sort" default:"transactionDate" doc:"Sort field: transactionDate, amount, category, rawDescription, cleanDescription, status or id"`
	Dir      string `query:"dir" default:"desc" doc:"Sort direction; asc sorts ascending, anything else descending"`
}

// ListTransactionsResponseBody is one page of transactions.
type ListTransactionsResponseBody struct {
	Content       []Transaction `json:"content" doc:"Page of transactions"`
	Page          int           `json:"page" doc:"Zero-indexed page number"`
	Size          int           `json:"size" doc:"Page size"`
	TotalElements int64         `json:"totalElements" doc:"Number of transactions matching the filter"`
	TotalPages    int           `json:"totalPages" doc:"Number of pages at this page size"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, req service.PageRequest) (*service.Page[service.TransactionSummary], error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of transactions, optionally filtered by category, with each status resolved.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) service.PageRequest {
	return service.PageRequest{
		Page:          input.Page,
		Size:          input.Size,
		Category:      input.Category,
		SortField:     input.Sort,
		SortDirection: input.Dir,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	req := parseListTransactionsInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidSortField) || errors.Is(err, service.ErrInvalidPageRequest) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Content))
		logData.AddData("totalElements", page.TotalElements)
	}

	resp := ListTransactionsResponseBody{
		Content:       make([]Transaction, len(page.Content)),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
	for i, tx := range page.Content {
		resp.Content[i] = fromSummary(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
