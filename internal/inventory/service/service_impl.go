package service

import (
	"context"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/domain"
	productdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        domain.Repository
	ProductRepo productdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        domain.Repository
	productRepo productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("inventory.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		productRepo: p.ProductRepo,
	}
}

func (s *Service) Record(ctx context.Context, req domain.RecordRequest) (domain.Movement, error) {
	if req.ProductID == 0 {
		return domain.Movement{}, domain.ErrInvalidProduct
	}
	if !req.Direction.Valid() {
		return domain.Movement{}, domain.ErrInvalidDirection
	}
	if req.Quantity <= 0 {
		return domain.Movement{}, domain.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, s.db, req.ProductID)
	if err != nil {
		return domain.Movement{}, db.Classify("find_product", err)
	}
	if product == nil {
		return domain.Movement{}, domain.ErrProductNotFound
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	movement := domain.Movement{
		ID:           s.genID.Generate(),
		ProductID:    req.ProductID,
		MovementDate: dates.ToDate(date),
		Direction:    req.Direction,
		Quantity:     req.Quantity,
		Notes:        strings.TrimSpace(req.Notes),
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, &movement); err != nil {
		return domain.Movement{}, db.Classify("insert_inventory_movement", err)
	}

	s.log.Info("inventory movement recorded",
		zap.String("product_id", movement.ProductID.String()),
		zap.String("direction", string(movement.Direction)),
		zap.Int("quantity", movement.Quantity),
	)
	return movement, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Movement, error) {
	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		ProductID: req.ProductID,
		From:      req.From,
		To:        req.To,
	})
	if err != nil {
		return nil, db.Classify("list_inventory_movements", err)
	}
	return items, nil
}

func (s *Service) StockLevel(ctx context.Context, productID snowflake.ID) (domain.StockLevel, error) {
	if productID == 0 {
		return domain.StockLevel{}, domain.ErrInvalidProduct
	}
	rows, err := s.repo.Totals(ctx, s.db, &productID)
	if err != nil {
		return domain.StockLevel{}, db.Classify("stock_level", err)
	}
	if len(rows) == 0 {
		return domain.StockLevel{}, domain.ErrProductNotFound
	}
	return rows[0], nil
}

func (s *Service) Summary(ctx context.Context) ([]domain.StockLevel, error) {
	rows, err := s.repo.Totals(ctx, s.db, nil)
	if err != nil {
		return nil, db.Classify("stock_summary", err)
	}
	return rows, nil
}
