package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-analytics/internal/operator/actions"
	"github.com/carson-networks/budget-analytics/internal/storage"
	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

const (
	// AllCategories is the category filter value meaning "no filter".
	AllCategories = "All"

	DefaultSortField     = "transactionDate"
	DefaultSortDirection = "desc"
)

var (
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrInvalidPageRequest = errors.New("invalid page request")
)

// sortColumns maps normalized API sort names onto store columns.
var sortColumns = map[string]sqlconfig.SortField{
	normalize("id"):               sqlconfig.SortByID,
	normalize("transactionDate"):  sqlconfig.SortByTransactionDate,
	normalize("amount"):           sqlconfig.SortByAmount,
	normalize("category"):         sqlconfig.SortByCategory,
	normalize("rawDescription"):   sqlconfig.SortByRawDescription,
	normalize("cleanDescription"): sqlconfig.SortByCleanDescription,
	normalize("status"):           sqlconfig.SortByStatus,
}

// ActionProcessor runs a write action inside a store transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, operator ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: operator}
}

// normalize is the single case-folding rule for category values, the "All"
// sentinel, sort names and sort direction. Stores fold categories the same way.
func normalize(s string) string {
	return sqlconfig.FoldCase(s)
}

// categoryFilter returns null when the request asks for every category.
func categoryFilter(category string) null.Val[string] {
	normalized := normalize(category)
	if normalized == "" || normalized == normalize(AllCategories) {
		return null.Val[string]{}
	}
	return null.From(normalized)
}

func sortColumn(field string) (sqlconfig.SortField, error) {
	if field == "" {
		field = DefaultSortField
	}
	column, ok := sortColumns[normalize(field)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, field)
	}
	return column, nil
}

// isAscending treats anything other than "asc" as descending.
func isAscending(direction string) bool {
	return normalize(direction) == "asc"
}

// ListTransactions returns one page of transactions with each status
// resolved. A page past the end has no content but accurate totals.
func (s *TransactionService) ListTransactions(ctx context.Context, req PageRequest) (*Page[TransactionSummary], error) {
	if req.Page < 0 || req.Size < 1 {
		return nil, fmt.Errorf("%w: page %d size %d", ErrInvalidPageRequest, req.Page, req.Size)
	}

	column, err := sortColumn(req.SortField)
	if err != nil {
		return nil, err
	}

	filter := &sqlconfig.TransactionPageFilter{
		Category:   categoryFilter(req.Category),
		Sort:       column,
		Descending: !isAscending(req.SortDirection),
	}
	// A page whose offset overflows int lies past any store; only count.
	if req.Page <= math.MaxInt/req.Size {
		filter.Limit = req.Size
		filter.Offset = req.Page * req.Size
	}

	result, err := s.storage.Transactions.FindPage(ctx, filter)
	if err != nil {
		return nil, err
	}

	content := make([]TransactionSummary, len(result.Transactions))
	for i, row := range result.Transactions {
		content[i] = toSummary(row)
	}

	return &Page[TransactionSummary]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: result.Total,
		TotalPages:    totalPages(result.Total, req.Size),
	}, nil
}

// CreateTransaction records a transaction through the write queue and
// returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction NewTransaction) (uuid.UUID, error) {
	action := &actions.CreateTransaction{
		Transaction: &sqlconfig.TransactionCreate{
			AccountID:        transaction.AccountID,
			RawDescription:   transaction.RawDescription,
			CleanDescription: transaction.CleanDescription,
			Category:         transaction.Category,
			Amount:           transaction.Amount,
			TransactionDate:  transaction.TransactionDate,
			Status:           transaction.Status,
		},
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

func toSummary(row *sqlconfig.Transaction) TransactionSummary {
	return TransactionSummary{
		ID:               row.ID,
		AccountID:        row.AccountID,
		RawDescription:   row.RawDescription,
		CleanDescription: row.CleanDescription,
		Category:         row.Category,
		Amount:           row.Amount,
		TransactionDate:  row.TransactionDate,
		Status:           ClassifyStatus(row),
	}
}

func totalPages(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
