package service

import (
	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analytics/internal/storage/sqlconfig"
)

const (
	StatusCleaned = "Cleaned"
	StatusFlagged = "Flagged"
	StatusRaw     = "Raw"
)

// flaggedThreshold is exclusive: exactly 1000 is not flagged.
var flaggedThreshold = decimal.NewFromInt(1000)

// ClassifyStatus returns the persisted status when one is set and otherwise
// derives it from how complete the record is.
func ClassifyStatus(row *sqlconfig.Transaction) string {
	if status, ok := persistedStatus(row); ok {
		return status
	}

	_, hasCleanDescription := presentString(row.CleanDescription)
	_, hasCategory := categoryOf(row)
	if hasCleanDescription && hasCategory {
		return StatusCleaned
	}

	if amount, ok := amountOf(row); ok && amount.Abs().GreaterThan(flaggedThreshold) && !hasCategory {
		return StatusFlagged
	}

	return StatusRaw
}

// presentString maps a nullable column to a value and whether it carries
// meaning. Null and the empty string are both absent.
func presentString(v null.Val[string]) (string, bool) {
	s, ok := v.Get()
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// persistedStatus is set only when the store holds a non-empty status.
func persistedStatus(row *sqlconfig.Transaction) (string, bool) {
	return presentString(row.Status)
}

// categoryOf reports false for uncategorized rows.
func categoryOf(row *sqlconfig.Transaction) (string, bool) {
	return presentString(row.Category)
}

// amountOf reports false when the amount is null.
func amountOf(row *sqlconfig.Transaction) (decimal.Decimal, bool) {
	if !row.Amount.Valid {
		return decimal.Decimal{}, false
	}
	return row.Amount.Decimal, true
}
