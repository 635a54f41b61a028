package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Numbers without a country code are read as Indian.
const defaultRegion = "IN"

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Validate *validator.Validate
	Repo     domain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	validate *validator.Validate
	repo     domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("customer.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		validate: p.Validate,
		repo:     p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	customer, err := s.normalize(req)
	if err != nil {
		return domain.Customer{}, err
	}

	now := s.clock.Now()
	customer.ID = s.genID.Generate()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, db.Classify("insert_customer", err)
	}

	s.log.Info("customer created", zap.String("customer_id", customer.ID.String()))
	return customer, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	if req.ID == 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.Customer{}, db.Classify("find_customer", err)
	}
	if existing == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	customer, err := s.normalize(req.CreateCustomerRequest)
	if err != nil {
		return domain.Customer{}, err
	}
	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, db.Classify("update_customer", err)
	}

	return customer, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Customer, error) {
	if id == 0 {
		return domain.Customer{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, db.Classify("find_customer", err)
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if _, err := page.After(); err != nil {
		return domain.ListCustomerResponse{}, domain.ErrInvalidToken
	}

	items, err := s.repo.List(ctx, s.db, domain.ListCustomerFilter{Query: req.Query}, page)
	if err != nil {
		return domain.ListCustomerResponse{}, db.Classify("list_customers", err)
	}

	items, pageInfo := pagination.Trim(items, page.Limit(), func(c *domain.Customer) int64 {
		return c.ID.Int64()
	})

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}

	return domain.ListCustomerResponse{PageInfo: pageInfo, Customers: customers}, nil
}

func (s *Service) FindOrCreateByName(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, bool, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, false, domain.ErrInvalidName
	}

	existing, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return domain.Customer{}, false, db.Classify("find_customer", err)
	}
	if existing != nil {
		return *existing, false, nil
	}

	created, err := s.Create(ctx, req)
	if err != nil {
		return domain.Customer{}, false, err
	}
	return created, true, nil
}

func (s *Service) normalize(req domain.CreateCustomerRequest) (domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return domain.Customer{}, err
	}

	taxID := strings.ToUpper(strings.TrimSpace(req.TaxID))
	if taxID != "" && !gstinPattern.MatchString(taxID) {
		return domain.Customer{}, domain.ErrInvalidTaxID
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && s.validate.Var(email, "email") != nil {
		return domain.Customer{}, domain.ErrInvalidEmail
	}

	return domain.Customer{
		Name:    name,
		Place:   strings.TrimSpace(req.Place),
		Phone:   phone,
		TaxID:   taxID,
		Address: strings.TrimSpace(req.Address),
		Email:   email,
	}, nil
}

// normalizePhone stores valid numbers in E.164 so the same customer typed
// with or without +91 compares equal.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := libphonenumber.Parse(raw, defaultRegion)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return "", domain.ErrInvalidPhone
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}
