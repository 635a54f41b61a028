package repository

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, expense *domain.Expense) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO expenses (id, expense_date, category, amount, description, payment_mode, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID,
		expense.ExpenseDate,
		expense.Category,
		expense.Amount.String(),
		expense.Description,
		expense.PaymentMode,
		expense.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Expense, error) {
	var items []domain.Expense
	stmt := db.WithContext(ctx).Model(&domain.Expense{})
	if filter.From != nil {
		stmt = stmt.Where("expense_date >= ?", *filter.From)
	}
	if filter.To != nil {
		stmt = stmt.Where("expense_date <= ?", *filter.To)
	}
	if filter.Category != nil {
		stmt = stmt.Where("category = ?", *filter.Category)
	}
	err := stmt.Order("expense_date desc, id desc").Find(&items).Error
	return items, err
}
