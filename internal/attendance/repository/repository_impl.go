package repository

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/attendance/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertWorker(ctx context.Context, db *gorm.DB, worker *domain.Worker) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO workers (id, name, phone, daily_wage, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		worker.ID,
		worker.Name,
		worker.Phone,
		worker.DailyWage.String(),
		worker.Active,
		worker.CreatedAt,
		worker.UpdatedAt,
	).Error
}

func (r *repo) FindWorker(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Worker, error) {
	if id == 0 {
		return nil, nil
	}
	var items []domain.Worker
	if err := db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repo) ListWorkers(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Worker, error) {
	var items []domain.Worker
	stmt := db.WithContext(ctx).Model(&domain.Worker{})
	if activeOnly {
		stmt = stmt.Where("active = ?", true)
	}
	err := stmt.Order("name asc, id asc").Find(&items).Error
	return items, err
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, attendance *domain.Attendance) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "worker_id"}, {Name: "attendance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"morning", "afternoon", "notes", "updated_at"}),
	}).Create(attendance).Error
}

func (r *repo) FindOne(ctx context.Context, db *gorm.DB, workerID snowflake.ID, date time.Time) (*domain.Attendance, error) {
	var items []domain.Attendance
	err := db.WithContext(ctx).
		Where("worker_id = ? AND attendance_date = ?", workerID, date).
		Limit(1).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repo) ListRange(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.Attendance, error) {
	var items []domain.Attendance
	err := db.WithContext(ctx).
		Where("attendance_date >= ? AND attendance_date <= ?", from, to).
		Order("attendance_date asc, worker_id asc").
		Find(&items).Error
	return items, err
}
