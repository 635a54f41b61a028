package repository

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Find(ctx context.Context, db *gorm.DB, key string) (*domain.Setting, error) {
	var rows []domain.Setting
	err := db.WithContext(ctx).Raw(
		`SELECT key, value, updated_at FROM settings WHERE key = ?`,
		key,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Setting, error) {
	var rows []domain.Setting
	err := db.WithContext(ctx).Raw(
		`SELECT key, value, updated_at FROM settings ORDER BY key`,
	).Scan(&rows).Error
	return rows, err
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, setting *domain.Setting) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}

func (r *repo) InsertIfMissing(ctx context.Context, db *gorm.DB, setting *domain.Setting) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(setting).Error
}
