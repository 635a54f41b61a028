package domain

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
)

type Service interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) (Setting, error)
	All(ctx context.Context) ([]Setting, error)
	Company(ctx context.Context) (CompanyProfile, error)
}

var (
	ErrInvalidKey = apperror.Validation("key", "invalid_key")
)
