package service

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/dbtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) domain.Service {
	t.Helper()
	return New(Params{
		DB:    dbtest.Open(t),
		Log:   zap.NewNop(),
		GenID: dbtest.Node(t),
		Clock: clock.NewFakeClock(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateNormalisesPaymentMode(t *testing.T) {
	svc := newService(t)

	expense, err := svc.Create(context.Background(), domain.CreateExpenseRequest{
		Category:    domain.CategoryElectricity,
		Amount:      decimal.RequireFromString("3450.75"),
		Description: " October bill ",
		PaymentMode: "upi",
	})
	require.NoError(t, err)
	assert.Equal(t, "UPI", expense.PaymentMode)
	assert.Equal(t, "October bill", expense.Description)
}

func TestCreateValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateExpenseRequest{Category: "Snacks", Amount: decimal.NewFromInt(1), PaymentMode: "Cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.Create(ctx, domain.CreateExpenseRequest{Category: domain.CategoryRent, Amount: decimal.Zero, PaymentMode: "Cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Create(ctx, domain.CreateExpenseRequest{Category: domain.CategoryRent, Amount: decimal.NewFromInt(1), PaymentMode: "IOU"})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMode)
}

func TestSummaryCoversEveryCategory(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, req := range []domain.CreateExpenseRequest{
		{Date: day(2), Category: domain.CategoryMaterial, Amount: decimal.NewFromInt(12000), PaymentMode: "Bank Transfer"},
		{Date: day(9), Category: domain.CategoryMaterial, Amount: decimal.RequireFromString("800.50"), PaymentMode: "Cash"},
		{Date: day(10), Category: domain.CategoryTransport, Amount: decimal.NewFromInt(650), PaymentMode: "Cash"},
		{Date: day(20), Category: domain.CategoryRent, Amount: decimal.NewFromInt(15000), PaymentMode: "Cheque"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx, day(1), day(15))
	require.NoError(t, err)
	require.Len(t, summary.Categories, len(domain.Categories))

	totals := map[domain.Category]string{}
	for _, row := range summary.Categories {
		totals[row.Category] = row.Total.StringFixed(2)
	}
	assert.Equal(t, "12800.50", totals[domain.CategoryMaterial])
	assert.Equal(t, "650.00", totals[domain.CategoryTransport])
	assert.Equal(t, "0.00", totals[domain.CategoryRent])
	assert.Equal(t, "13450.50", summary.GrandTotal.StringFixed(2))
}

func TestSummaryRejectsReversedRange(t *testing.T) {
	_, err := newService(t).Summary(context.Background(), day(10), day(1))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestListByCategory(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, category := range []domain.Category{domain.CategorySalary, domain.CategorySalary, domain.CategoryOther} {
		_, err := svc.Create(ctx, domain.CreateExpenseRequest{Category: category, Amount: decimal.NewFromInt(100), PaymentMode: "Cash"})
		require.NoError(t, err)
	}

	salary := domain.CategorySalary
	items, err := svc.List(ctx, domain.ListExpenseRequest{Category: &salary})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
