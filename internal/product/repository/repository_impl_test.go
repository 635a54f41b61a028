package repository

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/dbtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateStoredAsDecimalText(t *testing.T) {
	conn := dbtest.Open(t)
	node := dbtest.Node(t)
	ctx := context.Background()
	r := Provide()
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	product := domain.Product{
		ID:          node.Generate(),
		Name:        "Clear 8mm",
		Type:        "Toughened",
		RatePerSqft: decimal.RequireFromString("50.00"),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, r.Insert(ctx, conn, &product))

	product.RatePerSqft = decimal.RequireFromString("55.25")
	product.UpdatedAt = now.Add(time.Hour)
	require.NoError(t, r.UpdateRate(ctx, conn, &product))

	var stored string
	require.NoError(t, conn.Raw(`SELECT rate_per_sqft FROM products WHERE id = ?`, product.ID).Scan(&stored).Error)
	assert.Equal(t, "55.25", stored)

	got, err := r.FindByID(ctx, conn, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.RatePerSqft.Equal(product.RatePerSqft))
}
