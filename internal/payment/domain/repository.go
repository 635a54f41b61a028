package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListFilter struct {
	CustomerID *snowflake.ID
	InvoiceID  *snowflake.ID
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Payment, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Payment, error)
	// InvoiceCustomer returns the customer an invoice was billed to, or nil
	// when the invoice does not exist.
	InvoiceCustomer(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) (*snowflake.ID, error)
	InvoicedAmounts(ctx context.Context, db *gorm.DB, customerID *snowflake.ID) ([]AmountRow, error)
	PaidAmounts(ctx context.Context, db *gorm.DB, customerID *snowflake.ID) ([]AmountRow, error)
}
