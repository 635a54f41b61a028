package domain

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/bwmarrin/snowflake"
)

type LogVisitRequest struct {
	CustomerID  *snowflake.ID
	DisplayName string
	City        string
	Purpose     string
	VisitedAt   time.Time
}

type ListVisitRequest struct {
	From *time.Time
	To   *time.Time
}

type Service interface {
	Log(ctx context.Context, req LogVisitRequest) (Visit, error)
	List(ctx context.Context, req ListVisitRequest) ([]Visit, error)
}

var (
	ErrInvalidDisplayName = apperror.Validation("display_name", "invalid_display_name")
	ErrInvalidPurpose     = apperror.Validation("purpose", "invalid_purpose")
	ErrCustomerNotFound   = apperror.NotFound("customer_not_found")
)
