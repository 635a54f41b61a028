package service

import (
	"context"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
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
		log:   p.Log.Named("work.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateWorkRequest) (domain.Work, error) {
	glassType := strings.TrimSpace(req.GlassType)
	if glassType == "" {
		return domain.Work{}, domain.ErrInvalidGlassType
	}
	size := strings.TrimSpace(req.Size)
	if size == "" {
		return domain.Work{}, domain.ErrInvalidSize
	}
	if req.Quantity <= 0 {
		return domain.Work{}, domain.ErrInvalidQuantity
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return domain.Work{}, domain.ErrInvalidStatus
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	now := s.clock.Now()
	work := domain.Work{
		ID:        s.genID.Generate(),
		WorkDate:  dates.ToDate(date),
		GlassType: glassType,
		Size:      size,
		Quantity:  req.Quantity,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, &work); err != nil {
		return domain.Work{}, db.Classify("insert_work", err)
	}

	s.log.Info("work created",
		zap.String("work_id", work.ID.String()),
		zap.String("status", string(work.Status)),
	)
	return work, nil
}

func (s *Service) List(ctx context.Context, status *domain.Status) ([]domain.Work, error) {
	if status != nil && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	items, err := s.repo.List(ctx, s.db, status)
	if err != nil {
		return nil, db.Classify("list_works", err)
	}
	return items, nil
}

func (s *Service) UpdateWorkStatus(ctx context.Context, id snowflake.ID, status domain.Status) (domain.Work, error) {
	if id == 0 {
		return domain.Work{}, domain.ErrInvalidID
	}
	if !status.Valid() {
		return domain.Work{}, domain.ErrInvalidStatus
	}

	found, err := s.repo.UpdateStatus(ctx, s.db, id, status, s.clock.Now())
	if err != nil {
		return domain.Work{}, db.Classify("update_work_status", err)
	}
	if !found {
		return domain.Work{}, domain.ErrNotFound
	}

	work, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Work{}, db.Classify("find_work", err)
	}
	if work == nil {
		return domain.Work{}, domain.ErrNotFound
	}

	s.log.Info("work status updated",
		zap.String("work_id", id.String()),
		zap.String("status", string(status)),
	)
	return *work, nil
}
