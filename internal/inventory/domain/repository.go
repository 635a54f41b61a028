package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListFilter struct {
	ProductID *snowflake.ID
	From      *time.Time
	To        *time.Time
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, movement *Movement) error
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Movement, error)
	Totals(ctx context.Context, db *gorm.DB, productID *snowflake.ID) ([]StockLevel, error)
}
