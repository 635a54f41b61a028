package service

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/repository"
	productrepository "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/dbtest"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()
	conn := dbtest.Open(t)
	node := dbtest.Node(t)
	svc := New(Params{
		DB:          conn,
		Log:         zap.NewNop(),
		GenID:       node,
		Clock:       clock.NewFakeClock(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)),
		Repo:        repository.Provide(),
		ProductRepo: productrepository.Provide(),
	})
	return svc, conn, node
}

func TestRecordAndStockLevel(t *testing.T) {
	svc, conn, node := newService(t)
	ctx := context.Background()
	productID := dbtest.Product(t, conn, node, "Clear", "Toughened", "50")

	_, err := svc.Record(ctx, domain.RecordRequest{ProductID: productID, Direction: domain.DirectionIn, Quantity: 40})
	require.NoError(t, err)
	moved, err := svc.Record(ctx, domain.RecordRequest{ProductID: productID, Direction: domain.DirectionOut, Quantity: 15, Notes: "  site  "})
	require.NoError(t, err)
	assert.Equal(t, "site", moved.Notes)
	assert.Equal(t, int64(-15), moved.Signed())

	level, err := svc.StockLevel(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "Clear", level.ProductName)
	assert.Equal(t, int64(40), level.StockIn)
	assert.Equal(t, int64(15), level.StockOut)
	assert.Equal(t, int64(25), level.Level)
}

func TestSummaryIncludesProductsWithoutMovements(t *testing.T) {
	svc, conn, node := newService(t)
	ctx := context.Background()
	moved := dbtest.Product(t, conn, node, "Clear", "Toughened", "50")
	dbtest.Product(t, conn, node, "Frosted", "Toughened", "80")

	_, err := svc.Record(ctx, domain.RecordRequest{ProductID: moved, Direction: domain.DirectionIn, Quantity: 3})
	require.NoError(t, err)

	rows, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	levels := map[string]int64{}
	for _, row := range rows {
		levels[row.ProductName] = row.Level
	}
	assert.Equal(t, int64(3), levels["Clear"])
	assert.Equal(t, int64(0), levels["Frosted"])
}

func TestRecordValidation(t *testing.T) {
	svc, conn, node := newService(t)
	ctx := context.Background()
	productID := dbtest.Product(t, conn, node, "Clear", "Toughened", "50")

	tests := []struct {
		name string
		req  domain.RecordRequest
		want error
	}{
		{"no product", domain.RecordRequest{Direction: domain.DirectionIn, Quantity: 1}, domain.ErrInvalidProduct},
		{"bad direction", domain.RecordRequest{ProductID: productID, Direction: "sideways", Quantity: 1}, domain.ErrInvalidDirection},
		{"zero quantity", domain.RecordRequest{ProductID: productID, Direction: domain.DirectionIn}, domain.ErrInvalidQuantity},
		{"unknown product", domain.RecordRequest{ProductID: node.Generate(), Direction: domain.DirectionIn, Quantity: 1}, domain.ErrProductNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, int64(0), dbtest.Count(t, conn, "inventory_movements"))
}

func TestListFiltersByProductAndDate(t *testing.T) {
	svc, conn, node := newService(t)
	ctx := context.Background()
	a := dbtest.Product(t, conn, node, "Clear", "Toughened", "50")
	b := dbtest.Product(t, conn, node, "Tinted", "Toughened", "70")

	early := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	for _, req := range []domain.RecordRequest{
		{ProductID: a, Date: early, Direction: domain.DirectionIn, Quantity: 5},
		{ProductID: a, Date: late, Direction: domain.DirectionIn, Quantity: 6},
		{ProductID: b, Date: late, Direction: domain.DirectionIn, Quantity: 7},
	} {
		_, err := svc.Record(ctx, req)
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, domain.ListRequest{ProductID: &a})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	from := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	items, err = svc.List(ctx, domain.ListRequest{From: &from})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestStockLevelUnknownProduct(t *testing.T) {
	svc, _, node := newService(t)
	_, err := svc.StockLevel(context.Background(), node.Generate())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
