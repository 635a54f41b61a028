package service

import (
	"context"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/domain"
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
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		repo:  p.Repo,
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if !req.RatePerSqft.IsPositive() {
		return domain.Product{}, domain.ErrInvalidRate
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := s.clock.Now()
	product := domain.Product{
		ID:          s.genID.Generate(),
		Name:        name,
		Type:        strings.TrimSpace(req.Type),
		RatePerSqft: req.RatePerSqft,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Product{}, domain.ErrDuplicateName
		}
		return domain.Product{}, db.Classify("insert_product", err)
	}

	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("rate_per_sqft", product.RatePerSqft.String()),
	)
	return product, nil
}

func (s *Service) UpdateRate(ctx context.Context, id snowflake.ID, rate decimal.Decimal) (domain.Product, error) {
	if id == 0 {
		return domain.Product{}, domain.ErrInvalidID
	}
	if !rate.IsPositive() {
		return domain.Product{}, domain.ErrInvalidRate
	}

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	previous := product.RatePerSqft
	product.RatePerSqft = rate
	product.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateRate(ctx, s.db, &product); err != nil {
		return domain.Product{}, db.Classify("update_product_rate", err)
	}

	s.log.Info("product rate changed",
		zap.String("product_id", id.String()),
		zap.String("from", previous.String()),
		zap.String("to", rate.String()),
	)
	return product, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Product, error) {
	if id == 0 {
		return domain.Product{}, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, db.Classify("find_product", err)
	}
	if item == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	items, err := s.repo.List(ctx, s.db, activeOnly)
	if err != nil {
		return nil, db.Classify("list_products", err)
	}
	return items, nil
}
