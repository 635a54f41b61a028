package repository

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payments (id, customer_id, invoice_id, payment_date, amount, mode, reference, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.CustomerID,
		payment.InvoiceID,
		payment.PaymentDate,
		payment.Amount.String(),
		payment.Mode,
		payment.Reference,
		payment.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Payment, error) {
	var item domain.Payment
	err := db.WithContext(ctx).Raw(
		`SELECT id, customer_id, invoice_id, payment_date, amount, mode, reference, created_at
		 FROM payments WHERE id = ?`,
		id,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Payment, error) {
	var items []domain.Payment
	stmt := db.WithContext(ctx).Model(&domain.Payment{})
	if filter.CustomerID != nil {
		stmt = stmt.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.InvoiceID != nil {
		stmt = stmt.Where("invoice_id = ?", *filter.InvoiceID)
	}
	if filter.From != nil {
		stmt = stmt.Where("payment_date >= ?", *filter.From)
	}
	if filter.To != nil {
		stmt = stmt.Where("payment_date <= ?", *filter.To)
	}
	err := stmt.Order("payment_date desc, id desc").Find(&items).Error
	return items, err
}

func (r *repo) InvoiceCustomer(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) (*snowflake.ID, error) {
	var rows []struct {
		CustomerID snowflake.ID
	}
	err := db.WithContext(ctx).Raw(
		`SELECT customer_id FROM invoices WHERE id = ?`,
		invoiceID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0].CustomerID, nil
}

func (r *repo) InvoicedAmounts(ctx context.Context, db *gorm.DB, customerID *snowflake.ID) ([]domain.AmountRow, error) {
	return r.amounts(ctx, db, `SELECT customer_id, grand_total AS amount FROM invoices`, customerID)
}

func (r *repo) PaidAmounts(ctx context.Context, db *gorm.DB, customerID *snowflake.ID) ([]domain.AmountRow, error) {
	return r.amounts(ctx, db, `SELECT customer_id, amount FROM payments`, customerID)
}

// Amounts are stored as exact decimal text, so they are summed in Go
// rather than with SQL SUM.
func (r *repo) amounts(ctx context.Context, db *gorm.DB, query string, customerID *snowflake.ID) ([]domain.AmountRow, error) {
	var rows []domain.AmountRow
	var err error
	if customerID != nil {
		err = db.WithContext(ctx).Raw(query+` WHERE customer_id = ?`, *customerID).Scan(&rows).Error
	} else {
		err = db.WithContext(ctx).Raw(query).Scan(&rows).Error
	}
	return rows, err
}
