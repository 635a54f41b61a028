package service

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	customerrepository "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/dbtest"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node, *clock.FakeClock) {
	t.Helper()
	conn := dbtest.Open(t)
	node := dbtest.Node(t)
	clk := clock.NewFakeClock(time.Date(2026, 10, 15, 10, 15, 0, 0, time.UTC))
	svc := New(Params{
		DB:           conn,
		Log:          zap.NewNop(),
		GenID:        node,
		Clock:        clk,
		Repo:         repository.Provide(),
		CustomerRepo: customerrepository.Provide(),
	})
	return svc, conn, node, clk
}

func TestLogFillsFromCustomer(t *testing.T) {
	svc, conn, node, clk := newService(t)
	customerID := dbtest.Customer(t, conn, node, "Sri Lakshmi Glass", "Tenali")

	visit, err := svc.Log(context.Background(), domain.LogVisitRequest{
		CustomerID: &customerID,
		Purpose:    "Enquiry",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sri Lakshmi Glass", visit.DisplayName)
	assert.Equal(t, "Tenali", visit.City)
	assert.False(t, visit.WalkIn())
	assert.Equal(t, clk.Now(), visit.VisitedAt)
}

func TestLogWalkIn(t *testing.T) {
	svc, conn, _, _ := newService(t)

	visit, err := svc.Log(context.Background(), domain.LogVisitRequest{
		DisplayName: " Walk-in ",
		City:        "Guntur",
		Purpose:     "Enquiry",
	})
	require.NoError(t, err)
	assert.True(t, visit.WalkIn())
	assert.Equal(t, "Walk-in", visit.DisplayName)
	assert.Equal(t, int64(1), dbtest.Count(t, conn, "visits"))
}

func TestLogValidation(t *testing.T) {
	svc, _, node, _ := newService(t)
	ctx := context.Background()
	missing := node.Generate()

	_, err := svc.Log(ctx, domain.LogVisitRequest{DisplayName: "A"})
	assert.ErrorIs(t, err, domain.ErrInvalidPurpose)

	_, err = svc.Log(ctx, domain.LogVisitRequest{Purpose: "Enquiry"})
	assert.ErrorIs(t, err, domain.ErrInvalidDisplayName)

	_, err = svc.Log(ctx, domain.LogVisitRequest{CustomerID: &missing, Purpose: "Enquiry"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestListIncludesWholeLastDay(t *testing.T) {
	svc, _, _, _ := newService(t)
	ctx := context.Background()

	for _, at := range []time.Time{
		time.Date(2026, 10, 13, 18, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 14, 22, 45, 0, 0, time.UTC),
	} {
		_, err := svc.Log(ctx, domain.LogVisitRequest{DisplayName: "Walk-in", Purpose: "Enquiry", VisitedAt: at})
		require.NoError(t, err)
	}

	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	items, err := svc.List(ctx, domain.ListVisitRequest{From: &day, To: &day})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].VisitedAt.After(items[1].VisitedAt))
}
