package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListFilter struct {
	CustomerID *snowflake.ID
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	// AllocateNumber consumes the next sequence value. It must run inside
	// the commit transaction so a rollback returns the number.
	AllocateNumber(ctx context.Context, tx *gorm.DB, at time.Time) (int64, error)
	PeekNumber(ctx context.Context, db *gorm.DB) (int64, error)

	InsertInvoice(ctx context.Context, tx *gorm.DB, invoice *Invoice) error
	InsertItem(ctx context.Context, tx *gorm.DB, item *InvoiceItem) error

	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	FindByNumber(ctx context.Context, db *gorm.DB, number string) (*Invoice, error)
	ListItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]InvoiceItem, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Invoice, error)
}
