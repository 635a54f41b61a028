package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/bwmarrin/snowflake"
)

type ListInvoiceRequest struct {
	CustomerID *snowflake.ID
	From       *time.Time
	To         *time.Time
}

type QuoteRequest struct {
	ProductID  snowflake.ID
	Dimensions Dimensions
	Quantity   int
}

type Service interface {
	// Commit writes the invoice and everything it implies in one transaction.
	Commit(ctx context.Context, draft InvoiceDraft) (CommitResult, error)
	// NextInvoiceNumber previews the number the next commit dated invoiceDate
	// will get without consuming it. A zero date means today.
	NextInvoiceNumber(ctx context.Context, invoiceDate time.Time) (string, error)
	BuildLine(ctx context.Context, req QuoteRequest) (LineItem, error)
	GetByID(ctx context.Context, id snowflake.ID) (Detail, error)
	GetByNumber(ctx context.Context, number string) (Detail, error)
	List(ctx context.Context, req ListInvoiceRequest) ([]Invoice, error)
}

var (
	ErrInvalidActualHeight     = apperror.Validation("actual_height", "invalid_actual_height")
	ErrInvalidActualWidth      = apperror.Validation("actual_width", "invalid_actual_width")
	ErrInvalidChargeableHeight = apperror.Validation("chargeable_height", "invalid_chargeable_height")
	ErrInvalidChargeableWidth  = apperror.Validation("chargeable_width", "invalid_chargeable_width")
	ErrInvalidRate             = apperror.Validation("rate", "invalid_rate")
	ErrInvalidQuantity         = apperror.Validation("quantity", "invalid_quantity")
	ErrInvalidPaymentMode      = apperror.Validation("payment_mode", "invalid_payment_mode")
	ErrInvalidID               = apperror.Validation("id", "invalid_invoice_id")
	ErrInvalidNumber           = apperror.Validation("invoice_number", "invalid_invoice_number")
	ErrLineIndexOutOfRange     = apperror.Validation("index", "line_index_out_of_range")

	ErrMissingCustomer = apperror.Precondition("customer_required")
	ErrNoLines         = apperror.Precondition("line_items_required")

	ErrNotFound         = apperror.NotFound("invoice_not_found")
	ErrCustomerNotFound = apperror.NotFound("customer_not_found")
	ErrProductNotFound  = apperror.NotFound("product_not_found")
)
