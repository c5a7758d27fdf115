package analytics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-analytics/internal/logging"
	"github.com/carson-networks/budget-analytics/internal/service"
)

const dateLayout = "2006-01-02"

// BurnRateInput is the Huma input for the burn rate report.
type BurnRateInput struct {
	StartDate string `query:"startDate" format:"date" doc:"First day of the range (YYYY-MM-DD); defaults to three months before the end month"`
	EndDate   string `query:"endDate" format:"date" doc:"Last day of the range (YYYY-MM-DD); defaults to today"`
	AccountID string `query:"accountID" format:"uuid" doc:"Restrict the report to one account"`
}

// MonthBucket is the API response model for one month of spending.
type MonthBucket struct {
	Month          string `json:"month" doc:"Year and month, YYYY-MM"`
	MonthLabel     string `json:"monthLabel" doc:"Display label, e.g. Nov 2025"`
	TotalSpent     string `json:"totalSpent" doc:"Sum of expense magnitudes in the month"`
	IsCurrentMonth bool   `json:"isCurrentMonth" doc:"Whether this is the month containing now"`
}

// BurnRateOutput is the Huma output for the burn rate report.
type BurnRateOutput struct {
	Body []MonthBucket
}

// burnRateCalculator is the interface for computing burn rate buckets.
type burnRateCalculator interface {
	BurnRate(ctx context.Context, req service.BurnRateRequest) ([]service.MonthBucket, error)
}

// BurnRateHandler handles GET /v1/analytics/burn-rate.
type BurnRateHandler struct {
	AnalyticsService burnRateCalculator
	Location         *time.Location
}

// NewBurnRateHandler creates a new BurnRateHandler. Dates are read as
// calendar days in loc.
func NewBurnRateHandler(svc burnRateCalculator, loc *time.Location) *BurnRateHandler {
	if loc == nil {
		loc = time.Local
	}
	return &BurnRateHandler{AnalyticsService: svc, Location: loc}
}

// Register registers the burn rate endpoint with the Huma API.
func (h *BurnRateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "burn-rate",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/burn-rate",
		Summary:     "Monthly burn rate",
		Description: "Returns total spending per calendar month, oldest first, with one entry for every month in the range.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

// parseBurnRateInput parses and validates the API input.
func parseBurnRateInput(input *BurnRateInput, loc *time.Location) (service.BurnRateRequest, error) {
	var req service.BurnRateRequest

	if input.StartDate != "" {
		start, err := time.ParseInLocation(dateLayout, input.StartDate, loc)
		if err != nil {
			return req, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		req.StartDate = &start
	}

	if input.EndDate != "" {
		end, err := time.ParseInLocation(dateLayout, input.EndDate, loc)
		if err != nil {
			return req, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		req.EndDate = &end
	}

	if input.AccountID != "" {
		accountID, err := uuid.FromString(input.AccountID)
		if err != nil {
			return req, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		req.AccountID = &accountID
	}

	return req, nil
}

func (h *BurnRateHandler) handle(ctx context.Context, input *BurnRateInput) (*BurnRateOutput, error) {
	logData := logging.GetLogData(ctx)
	req, err := parseBurnRateInput(input, h.Location)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("burnRateMs")
	}
	buckets, err := h.AnalyticsService.BurnRate(ctx, req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrRangeTooLarge) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to calculate burn rate", err)
	}

	if logData != nil {
		logData.AddData("bucketCount", len(buckets))
	}

	resp := make([]MonthBucket, len(buckets))
	for i, bucket := range buckets {
		resp[i] = MonthBucket{
			Month:          bucket.Month.String(),
			MonthLabel:     bucket.Label,
			TotalSpent:     bucket.TotalSpent.StringFixed(2),
			IsCurrentMonth: bucket.IsCurrentMonth,
		}
	}

	return &BurnRateOutput{Body: resp}, nil
}
