package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	CustomerID snowflake.ID
	InvoiceID  *snowflake.ID
	Date       time.Time
	Amount     decimal.Decimal
	Mode       Mode
	Reference  string
}

type ListPaymentRequest struct {
	CustomerID *snowflake.ID
	From       *time.Time
	To         *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreatePaymentRequest) (Payment, error)
	GetByID(ctx context.Context, id snowflake.ID) (Payment, error)
	List(ctx context.Context, req ListPaymentRequest) ([]Payment, error)
	CustomerBalance(ctx context.Context, customerID snowflake.ID) (Balance, error)
	// Summary lists every customer who still owes money, largest debt first.
	Summary(ctx context.Context) ([]Balance, error)
}

var (
	ErrInvalidMode          = apperror.Validation("mode", "invalid_payment_mode")
	ErrInvalidAmount        = apperror.Validation("amount", "invalid_amount")
	ErrInvalidCustomer      = apperror.Validation("customer_id", "invalid_customer")
	ErrInvalidID            = apperror.Validation("id", "invalid_id")
	ErrInvoiceCustomerClash = apperror.Validation("invoice_id", "invoice_belongs_to_other_customer")
	ErrNotFound             = apperror.NotFound("payment_not_found")
	ErrCustomerNotFound     = apperror.NotFound("customer_not_found")
	ErrInvoiceNotFound      = apperror.NotFound("invoice_not_found")
)
