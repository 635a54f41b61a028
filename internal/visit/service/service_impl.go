package service

import (
	"context"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	customerRepo customerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("visit.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
	}
}

// Log records a visit. A registered customer fills in the name and city
// when the request leaves them blank.
func (s *Service) Log(ctx context.Context, req domain.LogVisitRequest) (domain.Visit, error) {
	name := strings.TrimSpace(req.DisplayName)
	city := strings.TrimSpace(req.City)
	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		return domain.Visit{}, domain.ErrInvalidPurpose
	}

	customerID := req.CustomerID
	if customerID != nil && *customerID == 0 {
		customerID = nil
	}
	if customerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, s.db, *customerID)
		if err != nil {
			return domain.Visit{}, db.Classify("find_customer", err)
		}
		if customer == nil {
			return domain.Visit{}, domain.ErrCustomerNotFound
		}
		if name == "" {
			name = customer.Name
		}
		if city == "" {
			city = customer.City()
		}
	}
	if name == "" {
		return domain.Visit{}, domain.ErrInvalidDisplayName
	}

	visitedAt := req.VisitedAt
	if visitedAt.IsZero() {
		visitedAt = s.clock.Now()
	}

	visit := domain.Visit{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		DisplayName: name,
		City:        city,
		Purpose:     purpose,
		VisitedAt:   visitedAt.UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, &visit); err != nil {
		return domain.Visit{}, db.Classify("insert_visit", err)
	}

	s.log.Info("visit logged",
		zap.String("visit_id", visit.ID.String()),
		zap.Bool("walk_in", visit.WalkIn()),
		zap.String("purpose", visit.Purpose),
	)
	return visit, nil
}

func (s *Service) List(ctx context.Context, req domain.ListVisitRequest) ([]domain.Visit, error) {
	filter := domain.ListFilter{From: req.From}
	if req.To != nil {
		to := dates.EndOfDay(*req.To)
		filter.To = &to
	}
	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, db.Classify("list_visits", err)
	}
	return items, nil
}
