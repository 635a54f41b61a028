package repository

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, movement *domain.Movement) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO inventory_movements (id, product_id, invoice_id, movement_date, direction, quantity, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		movement.ID,
		movement.ProductID,
		movement.InvoiceID,
		movement.MovementDate,
		movement.Direction,
		movement.Quantity,
		movement.Notes,
		movement.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Movement, error) {
	var items []domain.Movement
	stmt := db.WithContext(ctx).Model(&domain.Movement{})
	if filter.ProductID != nil {
		stmt = stmt.Where("product_id = ?", *filter.ProductID)
	}
	if filter.From != nil {
		stmt = stmt.Where("movement_date >= ?", *filter.From)
	}
	if filter.To != nil {
		stmt = stmt.Where("movement_date <= ?", *filter.To)
	}
	err := stmt.Order("movement_date desc, id desc").Find(&items).Error
	return items, err
}

func (r *repo) Totals(ctx context.Context, db *gorm.DB, productID *snowflake.ID) ([]domain.StockLevel, error) {
	query := `SELECT p.id AS product_id, p.name AS product_name,
			COALESCE(SUM(CASE WHEN m.direction = 'stock_in' THEN m.quantity ELSE 0 END), 0) AS stock_in,
			COALESCE(SUM(CASE WHEN m.direction = 'stock_out' THEN m.quantity ELSE 0 END), 0) AS stock_out
		 FROM products p
		 LEFT JOIN inventory_movements m ON m.product_id = p.id`
	args := []any{}
	if productID != nil {
		query += ` WHERE p.id = ?`
		args = append(args, *productID)
	}
	query += ` GROUP BY p.id, p.name ORDER BY p.name`

	var rows []domain.StockLevel
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Level = rows[i].StockIn - rows[i].StockOut
	}
	return rows, nil
}
