package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ListFilter struct {
	From     *time.Time
	To       *time.Time
	Category *Category
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, expense *Expense) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Expense, error)
}
