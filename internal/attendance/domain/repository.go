package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertWorker(ctx context.Context, db *gorm.DB, worker *Worker) error
	FindWorker(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Worker, error)
	ListWorkers(ctx context.Context, db *gorm.DB, activeOnly bool) ([]Worker, error)

	// Upsert writes the row for (worker, date), replacing the flags and notes of an existing one.
	Upsert(ctx context.Context, db *gorm.DB, attendance *Attendance) error
	FindOne(ctx context.Context, db *gorm.DB, workerID snowflake.ID, date time.Time) (*Attendance, error)
	ListRange(ctx context.Context, db *gorm.DB, from, to time.Time) ([]Attendance, error)
}
