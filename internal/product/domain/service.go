package domain

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (Product, error)
	UpdateRate(ctx context.Context, id snowflake.ID, rate decimal.Decimal) (Product, error)
	GetByID(ctx context.Context, id snowflake.ID) (Product, error)
	List(ctx context.Context, activeOnly bool) ([]Product, error)
}

type CreateRequest struct {
	Name        string          `json:"name" validate:"required"`
	Type        string          `json:"type"`
	RatePerSqft decimal.Decimal `json:"rate_per_sqft" validate:"gt=0"`
	Active      *bool           `json:"active"`
}

var (
	ErrInvalidName   = apperror.Validation("name", "invalid_name")
	ErrDuplicateName = apperror.Validation("name", "duplicate_name")
	ErrInvalidRate   = apperror.Validation("rate_per_sqft", "invalid_rate")
	ErrInvalidID     = apperror.Validation("id", "invalid_id")
	ErrNotFound      = apperror.NotFound("product_not_found")
)
