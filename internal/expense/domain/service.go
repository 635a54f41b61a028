package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Date        time.Time
	Category    Category
	Amount      decimal.Decimal
	Description string
	PaymentMode string
}

type ListExpenseRequest struct {
	From     *time.Time
	To       *time.Time
	Category *Category
}

type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (Expense, error)
	List(ctx context.Context, req ListExpenseRequest) ([]Expense, error)
	Summary(ctx context.Context, from, to time.Time) (Summary, error)
}

var (
	ErrInvalidCategory    = apperror.Validation("category", "invalid_category")
	ErrInvalidAmount      = apperror.Validation("amount", "invalid_amount")
	ErrInvalidPaymentMode = apperror.Validation("payment_mode", "invalid_payment_mode")
	ErrInvalidRange       = apperror.Validation("to", "invalid_range")
)
