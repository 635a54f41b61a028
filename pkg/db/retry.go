package db

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/cenkalti/backoff/v5"
)

// DefaultMaxTries bounds retries of lock contention on the shop database.
const DefaultMaxTries = 4

// RetryTransient runs op until it succeeds, fails with a non-transient error,
// or maxTries is exhausted. Only lock and serialization failures are retried.
func RetryTransient[T any](ctx context.Context, maxTries uint, op func() (T, error)) (T, error) {
	if maxTries == 0 {
		maxTries = DefaultMaxTries
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 25 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond

	return backoff.Retry(ctx, func() (T, error) {
		v, err := op()
		if err != nil && !IsTransientErr(err) && !apperror.IsTransient(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(maxTries))
}
