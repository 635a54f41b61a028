package repository

import (
	"context"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const customerColumns = `id, name, place, phone, tax_id, address, email, created_at, updated_at`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO customers (`+customerColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		customer.ID,
		customer.Name,
		customer.Place,
		customer.Phone,
		customer.TaxID,
		customer.Address,
		customer.Email,
		customer.CreatedAt,
		customer.UpdatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`UPDATE customers
		 SET name = ?, place = ?, phone = ?, tax_id = ?, address = ?, email = ?, updated_at = ?
		 WHERE id = ?`,
		customer.Name,
		customer.Place,
		customer.Phone,
		customer.TaxID,
		customer.Address,
		customer.Email,
		customer.UpdatedAt,
		customer.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT `+customerColumns+` FROM customers WHERE id = ?`,
		id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT `+customerColumns+` FROM customers
		 WHERE LOWER(name) = LOWER(?)
		 ORDER BY id
		 LIMIT 1`,
		name,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListCustomerFilter, page pagination.Pagination) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	stmt := db.WithContext(ctx).
		Model(&domain.Customer{})
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		like := "%" + q + "%"
		stmt = stmt.Where("LOWER(name) LIKE ? OR LOWER(place) LIKE ? OR phone LIKE ?", like, like, like)
	}
	after, err := page.After()
	if err != nil {
		return nil, err
	}
	if after != 0 {
		stmt = stmt.Where("id < ?", after)
	}
	err = stmt.
		Order("id desc").
		Limit(page.Limit() + 1).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
