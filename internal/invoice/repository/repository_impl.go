package repository

import (
	"context"
	"errors"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// sequenceRowID is the single row of invoice_sequences created by the seed.
const sequenceRowID = 1

var errSequenceMissing = errors.New("invoice sequence row missing")

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) AllocateNumber(ctx context.Context, tx *gorm.DB, at time.Time) (int64, error) {
	next, err := r.PeekNumber(ctx, tx)
	if err != nil {
		return 0, err
	}

	result := tx.WithContext(ctx).Exec(
		`UPDATE invoice_sequences
		 SET next_number = ?, updated_at = ?
		 WHERE id = ? AND next_number = ?`,
		next+1,
		at,
		sequenceRowID,
		next,
	)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errSequenceMissing
	}
	return next, nil
}

func (r *repo) PeekNumber(ctx context.Context, db *gorm.DB) (int64, error) {
	var rows []int64
	err := db.WithContext(ctx).Raw(
		`SELECT next_number FROM invoice_sequences WHERE id = ?`,
		sequenceRowID,
	).Scan(&rows).Error
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, errSequenceMissing
	}
	return rows[0], nil
}

func (r *repo) InsertInvoice(ctx context.Context, tx *gorm.DB, invoice *domain.Invoice) error {
	return tx.WithContext(ctx).Exec(
		`INSERT INTO invoices (
			id, invoice_number, customer_id, invoice_date,
			subtotal, cutout_charge, hole_charge, handle_charge, jumbo_charge,
			extra_total, round_off, grand_total,
			payment_mode, payment_reference, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.CustomerID,
		invoice.InvoiceDate,
		invoice.Subtotal.String(),
		invoice.CutoutCharge.String(),
		invoice.HoleCharge.String(),
		invoice.HandleCharge.String(),
		invoice.JumboCharge.String(),
		invoice.ExtraTotal.String(),
		invoice.RoundOff.String(),
		invoice.GrandTotal.String(),
		invoice.PaymentMode,
		invoice.PaymentReference,
		invoice.CreatedAt,
	).Error
}

func (r *repo) InsertItem(ctx context.Context, tx *gorm.DB, item *domain.InvoiceItem) error {
	return tx.WithContext(ctx).Exec(
		`INSERT INTO invoice_items (
			id, invoice_id, line_no, product_id, product_name, product_type,
			actual_height, actual_width, chargeable_height, chargeable_width,
			area_sqft, rate, quantity, amount, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.InvoiceID,
		item.LineNo,
		item.ProductID,
		item.ProductName,
		item.ProductType,
		item.ActualHeight.String(),
		item.ActualWidth.String(),
		item.ChargeableHeight.String(),
		item.ChargeableWidth.String(),
		item.AreaSqft.String(),
		item.Rate.String(),
		item.Quantity,
		item.Amount.String(),
		item.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	if id == 0 {
		return nil, nil
	}
	return r.findOne(ctx, db, "id = ?", id)
}

func (r *repo) FindByNumber(ctx context.Context, db *gorm.DB, number string) (*domain.Invoice, error) {
	if number == "" {
		return nil, nil
	}
	return r.findOne(ctx, db, "invoice_number = ?", number)
}

func (r *repo) findOne(ctx context.Context, db *gorm.DB, query string, arg any) (*domain.Invoice, error) {
	var items []domain.Invoice
	if err := db.WithContext(ctx).Where(query, arg).Limit(1).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("line_no asc").
		Find(&items).Error
	return items, err
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Invoice, error) {
	var items []domain.Invoice
	stmt := db.WithContext(ctx).Model(&domain.Invoice{})
	if filter.CustomerID != nil {
		stmt = stmt.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.From != nil {
		stmt = stmt.Where("invoice_date >= ?", *filter.From)
	}
	if filter.To != nil {
		stmt = stmt.Where("invoice_date <= ?", *filter.To)
	}
	err := stmt.Order("invoice_date desc, id desc").Find(&items).Error
	return items, err
}
