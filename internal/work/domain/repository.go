package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, work *Work) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Work, error)
	List(ctx context.Context, db *gorm.DB, status *Status) ([]Work, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status Status, updatedAt time.Time) (bool, error)
}
