package service

import (
	"context"
	"sort"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/metrics"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
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

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	Metrics      *metrics.Metrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	customerRepo customerdomain.Repository
	metrics      *metrics.Metrics
}

func NewService(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("payment.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		metrics:      p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePaymentRequest) (domain.Payment, error) {
	if req.CustomerID == 0 {
		return domain.Payment{}, domain.ErrInvalidCustomer
	}
	if !req.Amount.IsPositive() {
		return domain.Payment{}, domain.ErrInvalidAmount
	}
	if !req.Mode.Valid() {
		return domain.Payment{}, domain.ErrInvalidMode
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, req.CustomerID)
	if err != nil {
		return domain.Payment{}, db.Classify("find_customer", err)
	}
	if customer == nil {
		return domain.Payment{}, domain.ErrCustomerNotFound
	}

	if req.InvoiceID != nil && *req.InvoiceID != 0 {
		owner, err := s.repo.InvoiceCustomer(ctx, s.db, *req.InvoiceID)
		if err != nil {
			return domain.Payment{}, db.Classify("find_invoice", err)
		}
		if owner == nil {
			return domain.Payment{}, domain.ErrInvoiceNotFound
		}
		if *owner != req.CustomerID {
			return domain.Payment{}, domain.ErrInvoiceCustomerClash
		}
	} else {
		req.InvoiceID = nil
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	payment := domain.Payment{
		ID:          s.genID.Generate(),
		CustomerID:  req.CustomerID,
		InvoiceID:   req.InvoiceID,
		PaymentDate: dates.ToDate(date),
		Amount:      req.Amount,
		Mode:        req.Mode,
		Reference:   strings.TrimSpace(req.Reference),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, &payment); err != nil {
		return domain.Payment{}, db.Classify("insert_payment", err)
	}

	s.metrics.RecordPayment(ctx, string(payment.Mode))
	s.log.Info("payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("customer_id", payment.CustomerID.String()),
		zap.String("amount", payment.Amount.StringFixed(2)),
		zap.String("mode", string(payment.Mode)),
	)
	return payment, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.Payment, error) {
	if id == 0 {
		return domain.Payment{}, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, db.Classify("find_payment", err)
	}
	if item == nil {
		return domain.Payment{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListPaymentRequest) ([]domain.Payment, error) {
	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		CustomerID: req.CustomerID,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		return nil, db.Classify("list_payments", err)
	}
	return items, nil
}

func (s *Service) CustomerBalance(ctx context.Context, customerID snowflake.ID) (domain.Balance, error) {
	if customerID == 0 {
		return domain.Balance{}, domain.ErrInvalidCustomer
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.Balance{}, db.Classify("find_customer", err)
	}
	if customer == nil {
		return domain.Balance{}, domain.ErrCustomerNotFound
	}

	balances, err := s.balances(ctx, &customerID)
	if err != nil {
		return domain.Balance{}, err
	}

	balance, ok := balances[customerID]
	if !ok {
		balance = newBalance(customerID)
	}
	balance.CustomerName = customer.Name
	return *balance, nil
}

func (s *Service) Summary(ctx context.Context) ([]domain.Balance, error) {
	balances, err := s.balances(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Balance, 0, len(balances))
	for id, balance := range balances {
		if !balance.Outstanding.IsPositive() {
			continue
		}
		customer, err := s.customerRepo.FindByID(ctx, s.db, id)
		if err != nil {
			return nil, db.Classify("find_customer", err)
		}
		if customer != nil {
			balance.CustomerName = customer.Name
		}
		out = append(out, *balance)
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Outstanding.Cmp(out[j].Outstanding); c != 0 {
			return c > 0
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out, nil
}

func (s *Service) balances(ctx context.Context, customerID *snowflake.ID) (map[snowflake.ID]*domain.Balance, error) {
	invoiced, err := s.repo.InvoicedAmounts(ctx, s.db, customerID)
	if err != nil {
		return nil, db.Classify("sum_invoiced", err)
	}
	paid, err := s.repo.PaidAmounts(ctx, s.db, customerID)
	if err != nil {
		return nil, db.Classify("sum_paid", err)
	}

	out := make(map[snowflake.ID]*domain.Balance)
	get := func(id snowflake.ID) *domain.Balance {
		b, ok := out[id]
		if !ok {
			b = newBalance(id)
			out[id] = b
		}
		return b
	}
	for _, row := range invoiced {
		b := get(row.CustomerID)
		b.Invoiced = b.Invoiced.Add(row.Amount)
	}
	for _, row := range paid {
		b := get(row.CustomerID)
		b.Paid = b.Paid.Add(row.Amount)
	}
	for _, b := range out {
		b.Outstanding = b.Invoiced.Sub(b.Paid)
	}
	return out, nil
}

func newBalance(id snowflake.ID) *domain.Balance {
	return &domain.Balance{
		CustomerID:  id,
		Invoiced:    decimal.Zero,
		Paid:        decimal.Zero,
		Outstanding: decimal.Zero,
	}
}
