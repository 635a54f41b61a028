package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/bwmarrin/snowflake"
)

type RecordRequest struct {
	ProductID snowflake.ID
	Date      time.Time
	Direction Direction
	Quantity  int
	Notes     string
}

type ListRequest struct {
	ProductID *snowflake.ID
	From      *time.Time
	To        *time.Time
}

type Service interface {
	Record(ctx context.Context, req RecordRequest) (Movement, error)
	List(ctx context.Context, req ListRequest) ([]Movement, error)
	StockLevel(ctx context.Context, productID snowflake.ID) (StockLevel, error)
	Summary(ctx context.Context) ([]StockLevel, error)
}

var (
	ErrInvalidProduct   = apperror.Validation("product_id", "invalid_product")
	ErrInvalidDirection = apperror.Validation("direction", "invalid_direction")
	ErrInvalidQuantity  = apperror.Validation("quantity", "invalid_quantity")
	ErrProductNotFound  = apperror.NotFound("product_not_found")
)
