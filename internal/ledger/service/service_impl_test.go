package service

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/dbtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) ledgerdomain.Service {
	t.Helper()
	return NewService(Params{
		DB:    dbtest.Open(t),
		Log:   zap.NewNop(),
		GenID: dbtest.Node(t),
		Clock: clock.NewFakeClock(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)),
	})
}

func seedRegister(t *testing.T, svc ledgerdomain.Service) {
	t.Helper()
	entries := []ledgerdomain.RecordRequest{
		{Date: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), CustomerName: "Ravi", GlassType: "Clear", ThicknessMM: "8", Size: "48 x 36", Quantity: 2, AreaSqft: decimal.NewFromInt(24)},
		{Date: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), CustomerName: "Ravi", GlassType: "Tinted", ThicknessMM: "10", Size: "24 x 18", Quantity: 3, AreaSqft: decimal.RequireFromString("9")},
		{Date: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), CustomerName: "Sai", GlassType: "Clear", ThicknessMM: "12", Size: "60 x 30", Quantity: 1, AreaSqft: decimal.RequireFromString("12.5")},
		{Date: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), CustomerName: "Later", GlassType: "Clear", Quantity: 9, AreaSqft: decimal.NewFromInt(90)},
	}
	for _, req := range entries {
		_, err := svc.Record(context.Background(), req)
		require.NoError(t, err)
	}
}

func TestReportTotalsPerDay(t *testing.T) {
	svc := newService(t)
	seedRegister(t, svc)

	from := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	report, err := svc.Report(context.Background(), from, to)
	require.NoError(t, err)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, "Clear", report.Entries[0].GlassType)
	require.Len(t, report.Days, 2)
	assert.Equal(t, 2, report.Days[0].Entries)
	assert.Equal(t, int64(5), report.Days[0].Quantity)
	assert.Equal(t, "33.00", report.Days[0].AreaSqft.StringFixed(2))
	assert.Equal(t, int64(6), report.Quantity)
	assert.Equal(t, "45.50", report.AreaSqft.StringFixed(2))
}

func TestListDay(t *testing.T) {
	svc := newService(t)
	seedRegister(t, svc)

	entries, err := svc.ListDay(context.Background(), time.Date(2026, 10, 14, 17, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Sai", entries[0].CustomerName)
	assert.Equal(t, "12", entries[0].ThicknessMM)
}

func TestRecordValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, ledgerdomain.RecordRequest{Quantity: 1})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidGlassType)

	_, err = svc.Record(ctx, ledgerdomain.RecordRequest{GlassType: "Clear"})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidQuantity)

	_, err = svc.Record(ctx, ledgerdomain.RecordRequest{GlassType: "Clear", Quantity: 1, AreaSqft: decimal.NewFromInt(-2)})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidArea)
}

func TestRangeMustBeOrdered(t *testing.T) {
	_, err := newService(t).DailyTotals(context.Background(),
		time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidRange)
}
