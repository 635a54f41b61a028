package service

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()
	clk := clock.NewFakeClock(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC))
	return New(Params{
		DB:    dbtest.Open(t),
		Log:   zap.NewNop(),
		GenID: dbtest.Node(t),
		Clock: clk,
		Repo:  repository.Provide(),
	}), clk
}

func TestCreateDefaultsToPending(t *testing.T) {
	svc, _ := newService(t)

	work, err := svc.Create(context.Background(), domain.CreateWorkRequest{
		GlassType: "Toughened 8mm",
		Size:      "48 x 36",
		Quantity:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, work.Status)
	assert.Equal(t, "2026-10-15", time.Time(work.WorkDate).Format(time.DateOnly))
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.CreateWorkRequest
		want error
	}{
		{"glass type", domain.CreateWorkRequest{Size: "1 x 1", Quantity: 1}, domain.ErrInvalidGlassType},
		{"size", domain.CreateWorkRequest{GlassType: "Clear", Quantity: 1}, domain.ErrInvalidSize},
		{"quantity", domain.CreateWorkRequest{GlassType: "Clear", Size: "1 x 1"}, domain.ErrInvalidQuantity},
		{"status", domain.CreateWorkRequest{GlassType: "Clear", Size: "1 x 1", Quantity: 1, Status: "Lost"}, domain.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateWorkStatusAnyDirection(t *testing.T) {
	svc, clk := newService(t)
	ctx := context.Background()

	work, err := svc.Create(ctx, domain.CreateWorkRequest{GlassType: "Clear", Size: "10 x 10", Quantity: 1})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	done, err := svc.UpdateWorkStatus(ctx, work.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, done.Status)
	assert.True(t, done.UpdatedAt.After(work.UpdatedAt))

	back, err := svc.UpdateWorkStatus(ctx, work.ID, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, back.Status)
}

func TestUpdateWorkStatusErrors(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.UpdateWorkStatus(ctx, 0, domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.UpdateWorkStatus(ctx, 42, "Shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.UpdateWorkStatus(ctx, 42, domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByStatus(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, status := range []domain.Status{domain.StatusPending, domain.StatusCompleted, domain.StatusCompleted} {
		_, err := svc.Create(ctx, domain.CreateWorkRequest{GlassType: "Clear", Size: "1 x 1", Quantity: 1, Status: status})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	completed := domain.StatusCompleted
	done, err := svc.List(ctx, &completed)
	require.NoError(t, err)
	assert.Len(t, done, 2)
}

func TestParseStatus(t *testing.T) {
	status, err := domain.ParseStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, status)

	_, err = domain.ParseStatus("done")
	assert.Error(t, err)
}
