package service

import (
	"context"
	"strings"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

func NewService(p Params) ledgerdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("ledger.service"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) Record(ctx context.Context, req ledgerdomain.RecordRequest) (ledgerdomain.ProductionEntry, error) {
	glassType := strings.TrimSpace(req.GlassType)
	if glassType == "" {
		return ledgerdomain.ProductionEntry{}, ledgerdomain.ErrInvalidGlassType
	}
	if req.Quantity <= 0 {
		return ledgerdomain.ProductionEntry{}, ledgerdomain.ErrInvalidQuantity
	}
	if req.AreaSqft.IsNegative() {
		return ledgerdomain.ProductionEntry{}, ledgerdomain.ErrInvalidArea
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	entry := ledgerdomain.ProductionEntry{
		ID:           s.genID.Generate(),
		EntryDate:    dates.ToDate(date),
		CustomerName: strings.TrimSpace(req.CustomerName),
		GlassType:    glassType,
		ThicknessMM:  strings.TrimSpace(req.ThicknessMM),
		Size:         strings.TrimSpace(req.Size),
		Quantity:     req.Quantity,
		AreaSqft:     req.AreaSqft,
		Notes:        strings.TrimSpace(req.Notes),
		CreatedAt:    s.clock.Now(),
	}

	err := s.db.WithContext(ctx).Exec(
		`INSERT INTO production_entries (
			id, entry_date, customer_name, glass_type, thickness_mm, size, quantity, area_sqft, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.EntryDate,
		entry.CustomerName,
		entry.GlassType,
		entry.ThicknessMM,
		entry.Size,
		entry.Quantity,
		entry.AreaSqft.String(),
		entry.Notes,
		entry.CreatedAt,
	).Error
	if err != nil {
		return ledgerdomain.ProductionEntry{}, db.Classify("insert_production_entry", err)
	}

	s.log.Info("production entry recorded",
		zap.String("entry_id", entry.ID.String()),
		zap.String("date", dates.FormatDate(entry.EntryDate)),
		zap.Int("quantity", entry.Quantity),
	)
	return entry, nil
}

func (s *Service) ListDay(ctx context.Context, date time.Time) ([]ledgerdomain.ProductionEntry, error) {
	return s.ListRange(ctx, date, date)
}

// ListRange returns entries in the inclusive range, oldest day first and
// in entry order within a day, the order the register is written in.
func (s *Service) ListRange(ctx context.Context, from, to time.Time) ([]ledgerdomain.ProductionEntry, error) {
	from, to = dates.Truncate(from), dates.Truncate(to)
	if to.Before(from) {
		return nil, ledgerdomain.ErrInvalidRange
	}

	var entries []ledgerdomain.ProductionEntry
	err := s.db.WithContext(ctx).
		Where("entry_date >= ? AND entry_date <= ?", from, to).
		Order("entry_date asc, id asc").
		Find(&entries).Error
	if err != nil {
		return nil, db.Classify("list_production_entries", err)
	}
	return entries, nil
}

func (s *Service) DailyTotals(ctx context.Context, from, to time.Time) ([]ledgerdomain.DailyTotal, error) {
	entries, err := s.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return dailyTotals(entries), nil
}

func (s *Service) Report(ctx context.Context, from, to time.Time) (ledgerdomain.Report, error) {
	entries, err := s.ListRange(ctx, from, to)
	if err != nil {
		return ledgerdomain.Report{}, err
	}

	report := ledgerdomain.Report{
		From:     dates.Truncate(from),
		To:       dates.Truncate(to),
		Entries:  entries,
		Days:     dailyTotals(entries),
		AreaSqft: decimal.Zero,
	}
	for _, day := range report.Days {
		report.Quantity += day.Quantity
		report.AreaSqft = report.AreaSqft.Add(day.AreaSqft)
	}
	return report, nil
}

// dailyTotals folds entries already sorted by date.
func dailyTotals(entries []ledgerdomain.ProductionEntry) []ledgerdomain.DailyTotal {
	out := make([]ledgerdomain.DailyTotal, 0)
	for _, entry := range entries {
		day := dates.Truncate(time.Time(entry.EntryDate))
		if n := len(out); n == 0 || !out[n-1].Date.Equal(day) {
			out = append(out, ledgerdomain.DailyTotal{Date: day, AreaSqft: decimal.Zero})
		}
		last := &out[len(out)-1]
		last.Entries++
		last.Quantity += int64(entry.Quantity)
		last.AreaSqft = last.AreaSqft.Add(entry.AreaSqft)
	}
	return out
}
