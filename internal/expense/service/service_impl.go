package service

import (
	"context"
	"strings"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
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
		log:   p.Log.Named("expense.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateExpenseRequest) (domain.Expense, error) {
	if !req.Category.Valid() {
		return domain.Expense{}, domain.ErrInvalidCategory
	}
	if !req.Amount.IsPositive() {
		return domain.Expense{}, domain.ErrInvalidAmount
	}
	mode, err := paymentdomain.ParseMode(req.PaymentMode)
	if err != nil {
		return domain.Expense{}, domain.ErrInvalidPaymentMode
	}

	date := req.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	expense := domain.Expense{
		ID:          s.genID.Generate(),
		ExpenseDate: dates.ToDate(date),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		PaymentMode: string(mode),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, &expense); err != nil {
		return domain.Expense{}, db.Classify("insert_expense", err)
	}

	s.log.Info("expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("category", string(expense.Category)),
		zap.String("amount", expense.Amount.StringFixed(2)),
	)
	return expense, nil
}

func (s *Service) List(ctx context.Context, req domain.ListExpenseRequest) ([]domain.Expense, error) {
	if req.Category != nil && !req.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	items, err := s.repo.List(ctx, s.db, domain.ListFilter{
		From:     req.From,
		To:       req.To,
		Category: req.Category,
	})
	if err != nil {
		return nil, db.Classify("list_expenses", err)
	}
	return items, nil
}

// Summary totals expenses per category over the inclusive date range.
// Every category is present, with zero when nothing was spent.
func (s *Service) Summary(ctx context.Context, from, to time.Time) (domain.Summary, error) {
	from, to = dates.Truncate(from), dates.Truncate(to)
	if to.Before(from) {
		return domain.Summary{}, domain.ErrInvalidRange
	}

	items, err := s.repo.List(ctx, s.db, domain.ListFilter{From: &from, To: &to})
	if err != nil {
		return domain.Summary{}, db.Classify("list_expenses", err)
	}

	index := make(map[domain.Category]int, len(domain.Categories))
	summary := domain.Summary{
		From:       from,
		To:         to,
		Categories: make([]domain.CategoryTotal, 0, len(domain.Categories)),
		GrandTotal: decimal.Zero,
	}
	for i, category := range domain.Categories {
		index[category] = i
		summary.Categories = append(summary.Categories, domain.CategoryTotal{
			Category: category,
			Total:    decimal.Zero,
		})
	}

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			continue
		}
		summary.Categories[i].Count++
		summary.Categories[i].Total = summary.Categories[i].Total.Add(item.Amount)
		summary.GrandTotal = summary.GrandTotal.Add(item.Amount)
	}
	return summary, nil
}
