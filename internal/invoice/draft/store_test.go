package draft

import (
	"context"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type invoiceServiceMock struct {
	mock.Mock
}

func (m *invoiceServiceMock) Commit(ctx context.Context, d invoicedomain.InvoiceDraft) (invoicedomain.CommitResult, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(invoicedomain.CommitResult), args.Error(1)
}

func (m *invoiceServiceMock) NextInvoiceNumber(ctx context.Context, invoiceDate time.Time) (string, error) {
	args := m.Called(ctx, invoiceDate)
	return args.String(0), args.Error(1)
}

func (m *invoiceServiceMock) BuildLine(ctx context.Context, req invoicedomain.QuoteRequest) (invoicedomain.LineItem, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(invoicedomain.LineItem), args.Error(1)
}

func (m *invoiceServiceMock) GetByID(ctx context.Context, id snowflake.ID) (invoicedomain.Detail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(invoicedomain.Detail), args.Error(1)
}

func (m *invoiceServiceMock) GetByNumber(ctx context.Context, number string) (invoicedomain.Detail, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(invoicedomain.Detail), args.Error(1)
}

func (m *invoiceServiceMock) List(ctx context.Context, req invoicedomain.ListInvoiceRequest) ([]invoicedomain.Invoice, error) {
	args := m.Called(ctx, req)
	return args.Get(0).([]invoicedomain.Invoice), args.Error(1)
}

type customerServiceMock struct {
	customerdomain.Service
	mock.Mock
}

func (m *customerServiceMock) GetByID(ctx context.Context, id snowflake.ID) (customerdomain.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(customerdomain.Customer), args.Error(1)
}

func (m *customerServiceMock) FindOrCreateByName(ctx context.Context, req customerdomain.CreateCustomerRequest) (customerdomain.Customer, bool, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(customerdomain.Customer), args.Bool(1), args.Error(2)
}

func newStore(t *testing.T) (*Store, *invoiceServiceMock, *customerServiceMock, *clock.FakeClock) {
	t.Helper()
	invoices := &invoiceServiceMock{}
	customers := &customerServiceMock{}
	clk := clock.NewFakeClock(time.Date(2026, 10, 15, 11, 0, 0, 0, time.UTC))
	store := NewStore(Params{
		Log:       zap.NewNop(),
		Clock:     clk,
		Invoices:  invoices,
		Customers: customers,
	})
	return store, invoices, customers, clk
}

func line(amount string) invoicedomain.LineItem {
	return invoicedomain.LineItem{ProductID: 5, Quantity: 1, Amount: decimal.RequireFromString(amount)}
}

func TestOpenStartsEmptyDraftForToday(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00004", nil)

	view, err := store.Open(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "GTI-00004", view.NextNumber)
	assert.Empty(t, view.Draft.Lines)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), view.Draft.Date)
	assert.True(t, view.Totals.GrandTotal.IsZero())
}

func TestLinesAndTotals(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)

	req := invoicedomain.QuoteRequest{ProductID: 5, Quantity: 1}
	invoices.On("BuildLine", mock.Anything, req).Return(line("1200"), nil)

	_, err = store.AddLine(ctx, view.ID, req)
	require.NoError(t, err)
	view, err = store.AddLine(ctx, view.ID, req)
	require.NoError(t, err)
	assert.Len(t, view.Draft.Lines, 2)

	view, err = store.SetSurcharges(ctx, view.ID, invoicedomain.Surcharges{
		Cutout:   decimal.NewFromInt(50),
		RoundOff: decimal.RequireFromString("-0.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2449.50", view.Totals.GrandTotal.StringFixed(2))

	view, err = store.RemoveLine(ctx, view.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "1249.50", view.Totals.GrandTotal.StringFixed(2))

	_, err = store.RemoveLine(ctx, view.ID, 3)
	assert.ErrorIs(t, err, invoicedomain.ErrLineIndexOutOfRange)

	unchanged, err := store.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Len(t, unchanged.Draft.Lines, 1)
}

func TestSetCustomerUsesService(t *testing.T) {
	store, invoices, customers, _ := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)
	customers.On("GetByID", mock.Anything, snowflake.ID(9)).Return(customerdomain.Customer{ID: 9, Name: "Ravi"}, nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)

	view, err = store.SetCustomer(ctx, view.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, snowflake.ID(9), view.Draft.CustomerID)
	assert.Equal(t, "Ravi", view.Draft.CustomerName)
}

func TestSetCustomerByNameCreates(t *testing.T) {
	store, invoices, customers, _ := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)
	req := customerdomain.CreateCustomerRequest{Name: "New Shop", Place: "Vijayawada"}
	customers.On("FindOrCreateByName", mock.Anything, req).Return(customerdomain.Customer{ID: 12, Name: "New Shop"}, true, nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)

	view, created, err := store.SetCustomerByName(ctx, view.ID, req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, snowflake.ID(12), view.Draft.CustomerID)
}

func TestSetPaymentRejectsUnknownMode(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)

	_, err = store.SetPayment(ctx, view.ID, "Barter", "")
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidPaymentMode)

	view, err = store.SetPayment(ctx, view.ID, paymentdomain.ModePPay, "PP-1")
	require.NoError(t, err)
	assert.Equal(t, paymentdomain.ModePPay, view.Draft.PaymentMode)
	assert.Equal(t, "PP-1", view.Draft.PaymentReference)
}

func TestCommitClearsDraftOnSuccess(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)
	req := invoicedomain.QuoteRequest{ProductID: 5, Quantity: 1}
	invoices.On("BuildLine", mock.Anything, req).Return(line("100"), nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)
	_, err = store.AddLine(ctx, view.ID, req)
	require.NoError(t, err)

	invoices.On("Commit", mock.Anything, mock.MatchedBy(func(d invoicedomain.InvoiceDraft) bool {
		return len(d.Lines) == 1
	})).Return(invoicedomain.CommitResult{
		Invoice:    invoicedomain.Invoice{InvoiceNumber: "GTI-00001"},
		NextNumber: "GTI-00002",
	}, nil).Once()

	result, after, err := store.Commit(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "GTI-00001", result.Invoice.InvoiceNumber)
	assert.Empty(t, after.Draft.Lines)
	assert.Equal(t, "GTI-00002", after.NextNumber)
	invoices.AssertExpectations(t)
}

func TestCommitFailureKeepsDraft(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)
	invoices.On("Commit", mock.Anything, mock.Anything).Return(invoicedomain.CommitResult{}, invoicedomain.ErrNoLines)

	view, err := store.Open(ctx)
	require.NoError(t, err)

	_, _, err = store.Commit(ctx, view.ID)
	assert.ErrorIs(t, err, invoicedomain.ErrNoLines)

	_, err = store.Get(ctx, view.ID)
	assert.NoError(t, err)

	_, err = store.SetPayment(ctx, view.ID, paymentdomain.ModeCash, "")
	assert.NoError(t, err)
}

func TestCommitRefusesSecondSubmitWhileRunning(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)
	req := invoicedomain.QuoteRequest{ProductID: 5, Quantity: 1}
	invoices.On("BuildLine", mock.Anything, req).Return(line("100"), nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)
	_, err = store.AddLine(ctx, view.ID, req)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	invoices.On("Commit", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(invoicedomain.CommitResult{
		Invoice:    invoicedomain.Invoice{InvoiceNumber: "GTI-00001"},
		NextNumber: "GTI-00002",
	}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, _, err := store.Commit(ctx, view.ID)
		done <- err
	}()
	<-started

	_, _, err = store.Commit(ctx, view.ID)
	assert.ErrorIs(t, err, ErrCommitInProgress)
	_, err = store.AddLine(ctx, view.ID, req)
	assert.ErrorIs(t, err, ErrCommitInProgress)
	_, err = store.RemoveLine(ctx, view.ID, 0)
	assert.ErrorIs(t, err, ErrCommitInProgress)
	_, err = store.SetPayment(ctx, view.ID, paymentdomain.ModeCash, "")
	assert.ErrorIs(t, err, ErrCommitInProgress)
	_, err = store.SetDate(ctx, view.ID, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrCommitInProgress)
	assert.ErrorIs(t, store.Discard(ctx, view.ID), ErrCommitInProgress)

	close(release)
	require.NoError(t, <-done)
	invoices.AssertNumberOfCalls(t, "Commit", 1)
	invoices.AssertNumberOfCalls(t, "BuildLine", 1)

	after, err := store.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Draft.Lines)
	assert.Equal(t, "GTI-00002", after.NextNumber)

	_, err = store.AddLine(ctx, view.ID, req)
	assert.NoError(t, err)
}

func TestConcurrentCommitsWriteOneInvoice(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	ctx := context.Background()
	release := make(chan struct{})
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)
	invoices.On("Commit", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(invoicedomain.CommitResult{NextNumber: "GTI-00002"}, nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)

	errs := make(chan error, 2)
	for range 2 {
		go func() {
			_, _, err := store.Commit(ctx, view.ID)
			errs <- err
		}()
	}

	// The first submit holds the draft until released, so the other is refused.
	assert.ErrorIs(t, <-errs, ErrCommitInProgress)
	close(release)
	assert.NoError(t, <-errs)
	invoices.AssertNumberOfCalls(t, "Commit", 1)
}

func TestSetDateRefreshesNumberPreview(t *testing.T) {
	store, invoices, _, _ := newStore(t)
	ctx := context.Background()
	today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	backDated := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	invoices.On("NextInvoiceNumber", mock.Anything, today).Return("GTI/2610/004", nil)
	invoices.On("NextInvoiceNumber", mock.Anything, backDated).Return("GTI/2609/004", nil)

	view, err := store.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GTI/2610/004", view.NextNumber)

	view, err = store.SetDate(ctx, view.ID, backDated.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, backDated, view.Draft.Date)
	assert.Equal(t, "GTI/2609/004", view.NextNumber)
}

func TestDiscardAndIdleEviction(t *testing.T) {
	store, invoices, _, clk := newStore(t)
	ctx := context.Background()
	invoices.On("NextInvoiceNumber", mock.Anything, mock.Anything).Return("GTI-00001", nil)

	stale, err := store.Open(ctx)
	require.NoError(t, err)
	kept, err := store.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Discard(ctx, kept.ID))
	assert.ErrorIs(t, store.Discard(ctx, kept.ID), ErrNotFound)

	clk.Advance(IdleTTL + time.Minute)
	fresh, err := store.Open(ctx)
	require.NoError(t, err)

	_, err = store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{fresh.ID}, store.IDs())
}
