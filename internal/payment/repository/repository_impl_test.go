package repository

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/dbtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertStoresAmountAsDecimalText(t *testing.T) {
	conn := dbtest.Open(t)
	node := dbtest.Node(t)
	ctx := context.Background()
	r := Provide()

	payment := domain.Payment{
		ID:          node.Generate(),
		CustomerID:  dbtest.Customer(t, conn, node, "Ravi Glass House", "Guntur"),
		PaymentDate: dates.ToDate(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)),
		Amount:      decimal.RequireFromString("1249.50"),
		Mode:        domain.ModeUPI,
		Reference:   "UTR123",
		CreatedAt:   time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, r.Insert(ctx, conn, &payment))

	var stored string
	require.NoError(t, conn.Raw(`SELECT amount FROM payments WHERE id = ?`, payment.ID).Scan(&stored).Error)
	assert.Equal(t, "1249.5", stored)

	got, err := r.FindByID(ctx, conn, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Amount.Equal(payment.Amount))
}
