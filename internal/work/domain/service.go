package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/bwmarrin/snowflake"
)

type CreateWorkRequest struct {
	Date      time.Time
	GlassType string
	Size      string
	Quantity  int
	Status    Status
}

type Service interface {
	Create(ctx context.Context, req CreateWorkRequest) (Work, error)
	List(ctx context.Context, status *Status) ([]Work, error)
	// UpdateWorkStatus moves a work to any valid status; no transition is refused.
	UpdateWorkStatus(ctx context.Context, id snowflake.ID, status Status) (Work, error)
}

var (
	ErrInvalidID        = apperror.Validation("id", "invalid_work_id")
	ErrInvalidGlassType = apperror.Validation("glass_type", "invalid_glass_type")
	ErrInvalidSize      = apperror.Validation("size", "invalid_size")
	ErrInvalidQuantity  = apperror.Validation("quantity", "invalid_quantity")
	ErrInvalidStatus    = apperror.Validation("status", "invalid_status")
	ErrNotFound         = apperror.NotFound("work_not_found")
)
