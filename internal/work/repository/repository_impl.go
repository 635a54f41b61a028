package repository

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, work *domain.Work) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO works (id, invoice_id, work_date, glass_type, size, quantity, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		work.ID,
		work.InvoiceID,
		work.WorkDate,
		work.GlassType,
		work.Size,
		work.Quantity,
		work.Status,
		work.CreatedAt,
		work.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Work, error) {
	if id == 0 {
		return nil, nil
	}
	var items []domain.Work
	if err := db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, status *domain.Status) ([]domain.Work, error) {
	var items []domain.Work
	stmt := db.WithContext(ctx).Model(&domain.Work{})
	if status != nil {
		stmt = stmt.Where("status = ?", *status)
	}
	err := stmt.Order("work_date desc, id desc").Find(&items).Error
	return items, err
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status domain.Status, updatedAt time.Time) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE works SET status = ?, updated_at = ? WHERE id = ?`,
		status,
		updatedAt,
		id,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
