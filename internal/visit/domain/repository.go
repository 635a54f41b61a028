package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ListFilter struct {
	From *time.Time
	To   *time.Time
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, visit *Visit) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Visit, error)
}
