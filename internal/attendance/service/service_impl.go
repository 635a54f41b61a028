package service

import (
	"context"
	"strings"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/attendance/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var halvesPerDay = decimal.NewFromInt(2)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("attendance.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) CreateWorker(ctx context.Context, req domain.CreateWorkerRequest) (domain.Worker, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Worker{}, domain.ErrInvalidName
	}
	if req.DailyWage.IsNegative() {
		return domain.Worker{}, domain.ErrInvalidWage
	}

	now := s.clock.Now()
	worker := domain.Worker{
		ID:        s.genID.Generate(),
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		DailyWage: req.DailyWage,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertWorker(ctx, s.db, &worker); err != nil {
		return domain.Worker{}, db.Classify("insert_worker", err)
	}

	s.log.Info("worker created", zap.String("worker_id", worker.ID.String()))
	return worker, nil
}

func (s *Service) ListWorkers(ctx context.Context, activeOnly bool) ([]domain.Worker, error) {
	items, err := s.repo.ListWorkers(ctx, s.db, activeOnly)
	if err != nil {
		return nil, db.Classify("list_workers", err)
	}
	return items, nil
}

func (s *Service) Mark(ctx context.Context, req domain.MarkRequest) (domain.Attendance, error) {
	if req.WorkerID == 0 {
		return domain.Attendance{}, domain.ErrInvalidWorker
	}
	worker, err := s.repo.FindWorker(ctx, s.db, req.WorkerID)
	if err != nil {
		return domain.Attendance{}, db.Classify("find_worker", err)
	}
	if worker == nil {
		return domain.Attendance{}, domain.ErrWorkerNotFound
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock.Now()
	}
	date = dates.Truncate(date)

	now := s.clock.Now()
	row := domain.Attendance{
		ID:             s.genID.Generate(),
		WorkerID:       req.WorkerID,
		AttendanceDate: dates.ToDate(date),
		Morning:        req.Morning,
		Afternoon:      req.Afternoon,
		Notes:          strings.TrimSpace(req.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Upsert(ctx, s.db, &row); err != nil {
		return domain.Attendance{}, db.Classify("mark_attendance", err)
	}

	stored, err := s.repo.FindOne(ctx, s.db, req.WorkerID, date)
	if err != nil {
		return domain.Attendance{}, db.Classify("find_attendance", err)
	}
	if stored == nil {
		return row, nil
	}

	s.log.Info("attendance marked",
		zap.String("worker_id", req.WorkerID.String()),
		zap.String("date", dates.Format(date)),
		zap.Int("halves", stored.Halves()),
	)
	return *stored, nil
}

// ForDate returns every active worker with the day's row, or an unmarked
// default when none has been saved yet.
func (s *Service) ForDate(ctx context.Context, date time.Time) ([]domain.DayRow, error) {
	date = dates.Truncate(date)
	workers, err := s.repo.ListWorkers(ctx, s.db, true)
	if err != nil {
		return nil, db.Classify("list_workers", err)
	}
	rows, err := s.repo.ListRange(ctx, s.db, date, date)
	if err != nil {
		return nil, db.Classify("list_attendance", err)
	}

	byWorker := make(map[snowflake.ID]domain.Attendance, len(rows))
	for _, row := range rows {
		byWorker[row.WorkerID] = row
	}

	out := make([]domain.DayRow, 0, len(workers))
	for _, worker := range workers {
		row, ok := byWorker[worker.ID]
		if !ok {
			row = domain.Attendance{
				WorkerID:       worker.ID,
				AttendanceDate: dates.ToDate(date),
			}
		}
		out = append(out, domain.DayRow{Worker: worker, Attendance: row, Marked: ok})
	}
	return out, nil
}

// MonthlySummary totals present half-days per worker. Two halves make a
// day and wages are paid per day.
func (s *Service) MonthlySummary(ctx context.Context, year int, month time.Month) (domain.MonthlySummary, error) {
	if month < time.January || month > time.December || year < 1 {
		return domain.MonthlySummary{}, domain.ErrInvalidMonth
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	workers, err := s.repo.ListWorkers(ctx, s.db, false)
	if err != nil {
		return domain.MonthlySummary{}, db.Classify("list_workers", err)
	}
	rows, err := s.repo.ListRange(ctx, s.db, from, to)
	if err != nil {
		return domain.MonthlySummary{}, db.Classify("list_attendance", err)
	}

	halves := make(map[snowflake.ID]int, len(workers))
	for _, row := range rows {
		halves[row.WorkerID] += row.Halves()
	}

	summary := domain.MonthlySummary{
		Year:    year,
		Month:   month,
		Rows:    make([]domain.MonthlyRow, 0, len(workers)),
		WageDue: decimal.Zero,
	}
	for _, worker := range workers {
		n, seen := halves[worker.ID]
		if !worker.Active && !seen {
			continue
		}
		days := decimal.NewFromInt(int64(n)).Div(halvesPerDay)
		due := days.Mul(worker.DailyWage)
		summary.Rows = append(summary.Rows, domain.MonthlyRow{
			WorkerID:   worker.ID,
			WorkerName: worker.Name,
			HalfDays:   n,
			Days:       days,
			DailyWage:  worker.DailyWage,
			WageDue:    due,
		})
		summary.WageDue = summary.WageDue.Add(due)
	}
	return summary, nil
}
