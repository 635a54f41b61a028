package repository

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, visit *domain.Visit) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO visits (id, customer_id, invoice_id, display_name, city, purpose, visited_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		visit.ID,
		visit.CustomerID,
		visit.InvoiceID,
		visit.DisplayName,
		visit.City,
		visit.Purpose,
		visit.VisitedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Visit, error) {
	var items []domain.Visit
	stmt := db.WithContext(ctx).Model(&domain.Visit{})
	if filter.From != nil {
		stmt = stmt.Where("visited_at >= ?", *filter.From)
	}
	if filter.To != nil {
		stmt = stmt.Where("visited_at <= ?", *filter.To)
	}
	err := stmt.Order("visited_at desc, id desc").Find(&items).Error
	return items, err
}
