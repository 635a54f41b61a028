package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name      string          `json:"name" validate:"required,max=255"`
	Phone     string          `json:"phone" validate:"max=32"`
	DailyWage decimal.Decimal `json:"daily_wage"`
}

type MarkRequest struct {
	WorkerID  snowflake.ID
	Date      time.Time
	Morning   bool
	Afternoon bool
	Notes     string
}

type Service interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (Worker, error)
	ListWorkers(ctx context.Context, activeOnly bool) ([]Worker, error)
	Mark(ctx context.Context, req MarkRequest) (Attendance, error)
	ForDate(ctx context.Context, date time.Time) ([]DayRow, error)
	MonthlySummary(ctx context.Context, year int, month time.Month) (MonthlySummary, error)
}

var (
	ErrInvalidName    = apperror.Validation("name", "invalid_name")
	ErrInvalidWage    = apperror.Validation("daily_wage", "invalid_daily_wage")
	ErrInvalidWorker  = apperror.Validation("worker_id", "invalid_worker")
	ErrInvalidMonth   = apperror.Validation("month", "invalid_month")
	ErrWorkerNotFound = apperror.NotFound("worker_not_found")
)
