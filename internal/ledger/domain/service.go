package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/shopspring/decimal"
)

type RecordRequest struct {
	Date         time.Time
	CustomerName string
	GlassType    string
	ThicknessMM  string
	Size         string
	Quantity     int
	AreaSqft     decimal.Decimal
	Notes        string
}

type Service interface {
	Record(ctx context.Context, req RecordRequest) (ProductionEntry, error)
	ListDay(ctx context.Context, date time.Time) ([]ProductionEntry, error)
	ListRange(ctx context.Context, from, to time.Time) ([]ProductionEntry, error)
	DailyTotals(ctx context.Context, from, to time.Time) ([]DailyTotal, error)
	Report(ctx context.Context, from, to time.Time) (Report, error)
}

var (
	ErrInvalidGlassType = apperror.Validation("glass_type", "invalid_glass_type")
	ErrInvalidQuantity  = apperror.Validation("quantity", "invalid_quantity")
	ErrInvalidArea      = apperror.Validation("area_sqft", "invalid_area")
	ErrInvalidRange     = apperror.Validation("to", "invalid_range")
)
