package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	expensedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/draft"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability"
	productdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/providers/pdf"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/providers/xlsx"
	settingdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/validation"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCustomerService struct {
	customerdomain.Service
	created customerdomain.CreateCustomerRequest
	known   customerdomain.Customer
}

func (f *fakeCustomerService) Create(_ context.Context, req customerdomain.CreateCustomerRequest) (customerdomain.Customer, error) {
	f.created = req
	return customerdomain.Customer{ID: 7, Name: req.Name, Place: req.Place}, nil
}

func (f *fakeCustomerService) GetByID(_ context.Context, id snowflake.ID) (customerdomain.Customer, error) {
	if id != f.known.ID {
		return customerdomain.Customer{}, customerdomain.ErrNotFound
	}
	return f.known, nil
}

type fakeProductService struct {
	productdomain.Service
	err error
}

func (f *fakeProductService) Create(_ context.Context, req productdomain.CreateRequest) (productdomain.Product, error) {
	if f.err != nil {
		return productdomain.Product{}, f.err
	}
	return productdomain.Product{ID: 11, Name: req.Name, RatePerSqft: req.RatePerSqft, Active: true}, nil
}

type fakeInvoiceService struct {
	invoicedomain.Service
	quoted      invoicedomain.QuoteRequest
	commitErr   error
	previewDate time.Time
}

func (f *fakeInvoiceService) NextInvoiceNumber(_ context.Context, invoiceDate time.Time) (string, error) {
	f.previewDate = invoiceDate
	return "GTI-00001", nil
}

func (f *fakeInvoiceService) BuildLine(_ context.Context, req invoicedomain.QuoteRequest) (invoicedomain.LineItem, error) {
	f.quoted = req
	return invoicedomain.LineItem{
		ProductID:  req.ProductID,
		Dimensions: req.Dimensions,
		Quantity:   req.Quantity,
		Amount:     decimal.NewFromInt(100),
	}, nil
}

func (f *fakeInvoiceService) Commit(context.Context, invoicedomain.InvoiceDraft) (invoicedomain.CommitResult, error) {
	return invoicedomain.CommitResult{}, f.commitErr
}

type fakeExpenseService struct {
	expensedomain.Service
	from, to time.Time
}

func (f *fakeExpenseService) Summary(_ context.Context, from, to time.Time) (expensedomain.Summary, error) {
	f.from, f.to = from, to
	return expensedomain.Summary{From: from, To: to}, nil
}

type fakeLedgerService struct {
	ledgerdomain.Service
}

func (fakeLedgerService) Report(_ context.Context, from, to time.Time) (ledgerdomain.Report, error) {
	return ledgerdomain.Report{From: from, To: to}, nil
}

type fakeSettingService struct {
	settingdomain.Service
}

func (fakeSettingService) Company(context.Context) (settingdomain.CompanyProfile, error) {
	return settingdomain.CompanyProfile{Name: "Ganesh Toughened Industry"}, nil
}

type harness struct {
	engine    *gin.Engine
	clock     *clock.FakeClock
	fs        afero.Fs
	customers *fakeCustomerService
	products  *fakeProductService
	invoices  *fakeInvoiceService
	expenses  *fakeExpenseService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))
	h := &harness{
		clock:     clk,
		fs:        afero.NewMemMapFs(),
		customers: &fakeCustomerService{known: customerdomain.Customer{ID: 5, Name: "Ravi Glass House"}},
		products:  &fakeProductService{},
		invoices:  &fakeInvoiceService{},
		expenses:  &fakeExpenseService{},
	}

	drafts := draft.NewStore(draft.Params{
		Log:       log,
		Clock:     clk,
		Invoices:  h.invoices,
		Customers: h.customers,
	})
	docs := document.New(document.Params{
		Log:       log,
		Fs:        h.fs,
		PDF:       pdf.New(),
		XLSX:      xlsx.New(),
		Invoices:  h.invoices,
		Customers: h.customers,
		Settings:  fakeSettingService{},
		Ledger:    fakeLedgerService{},
		Expenses:  h.expenses,
	})

	h.engine = NewEngine(observability.Config{}, nil, nil)
	NewServer(ServerParams{
		Gin:       h.engine,
		Log:       log,
		Clock:     clk,
		Validate:  validation.New(),
		Customers: h.customers,
		Products:  h.products,
		Invoices:  h.invoices,
		Drafts:    drafts,
		Expenses:  h.expenses,
		Ledger:    fakeLedgerService{},
		Settings:  fakeSettingService{},
		Documents: docs,
	})
	return h
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/nothing-here", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Type)
}

func TestCreateCustomer(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/customers", `{"name":"  Ravi Glass House ","place":" Guntur"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ravi Glass House", h.customers.created.Name)
	assert.Equal(t, "Guntur", h.customers.created.Place)

	var resp struct {
		Data customerdomain.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, snowflake.ID(7), resp.Data.ID)
}

func TestCreateCustomerRequiresName(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/customers", `{"place":"Guntur"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeError(t, rec)
	assert.Equal(t, "validation_error", payload.Type)
	require.Len(t, payload.Errors, 1)
	assert.Equal(t, "name", payload.Errors[0].Field)
	assert.Equal(t, "invalid_name", payload.Errors[0].Code)
}

func TestMalformedBodyIsInvalidRequest(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/customers", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec).Errors[0].Code)
}

func TestGetCustomer(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"known", "/api/customers/5", http.StatusOK},
		{"unknown", "/api/customers/6", http.StatusNotFound},
		{"malformed id", "/api/customers/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPersistenceErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"duplicate", apperror.Persistence("product_create_duplicate", errors.New("UNIQUE constraint failed"), false), http.StatusConflict, "conflict"},
		{"transient", apperror.Persistence("product_create", errors.New("database is locked"), true), http.StatusServiceUnavailable, "service_unavailable"},
		{"other", apperror.Persistence("product_create", errors.New("disk I/O error"), false), http.StatusInternalServerError, "internal_error"},
		{"domain validation", productdomain.ErrDuplicateName, http.StatusBadRequest, "validation_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.products.err = tt.err

			rec := h.do(http.MethodPost, "/api/products", `{"name":"Clear 8mm","rate_per_sqft":"120"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.kind, decodeError(t, rec).Type)
		})
	}
}

func TestCreateProductRejectsNonPositiveRate(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/products", `{"name":"Clear 8mm","rate_per_sqft":"0"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "rate_per_sqft", decodeError(t, rec).Errors[0].Field)
}

func openDraft(t *testing.T, h *harness) draft.View {
	t.Helper()
	rec := h.do(http.MethodPost, "/api/drafts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Data draft.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func TestDraftLineUsesActualSizeWhenChargeableBlank(t *testing.T) {
	h := newHarness(t)
	view := openDraft(t, h)
	assert.Equal(t, "GTI-00001", view.NextNumber)

	rec := h.do(http.MethodPost, "/api/drafts/"+view.ID+"/lines",
		`{"product_id":"42","actual_height":"48","actual_width":" 36 ","chargeable_width":"39","quantity":"2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	q := h.invoices.quoted
	assert.Equal(t, snowflake.ID(42), q.ProductID)
	assert.Equal(t, 2, q.Quantity)
	assert.Equal(t, "48", q.Dimensions.ChargeableHeight.String())
	assert.Equal(t, "39", q.Dimensions.ChargeableWidth.String())
	assert.Equal(t, "36", q.Dimensions.ActualWidth.String())
}

func TestDraftLineRejectsBadMeasurement(t *testing.T) {
	h := newHarness(t)
	view := openDraft(t, h)

	rec := h.do(http.MethodPost, "/api/drafts/"+view.ID+"/lines",
		`{"product_id":"42","actual_height":"forty","actual_width":"36","quantity":"2"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "actual_height", decodeError(t, rec).Errors[0].Field)
}

func TestCommitWithoutCustomerIsPrecondition(t *testing.T) {
	h := newHarness(t)
	h.invoices.commitErr = invoicedomain.ErrMissingCustomer
	view := openDraft(t, h)

	rec := h.do(http.MethodPost, "/api/drafts/"+view.ID+"/commit", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	payload := decodeError(t, rec)
	assert.Equal(t, "precondition_failed", payload.Type)
	assert.Equal(t, "customer required", payload.Message)
}

func TestDraftNotFound(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/drafts/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetDraftPaymentRejectsUnknownMode(t *testing.T) {
	h := newHarness(t)
	view := openDraft(t, h)

	rec := h.do(http.MethodPut, "/api/drafts/"+view.ID+"/payment", `{"mode":"Barter"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "payment_mode", decodeError(t, rec).Errors[0].Field)
}

func TestExpenseSummaryRange(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/expenses/summary?from=1/9/2026&to=30/09/2026", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), h.expenses.from)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), h.expenses.to)

	rec = h.do(http.MethodGet, "/api/expenses/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), h.expenses.from)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), h.expenses.to)
}

func TestExpenseSummaryRejectsBadDates(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name  string
		query string
		field string
	}{
		{"iso date", "?from=2026-10-01", "from"},
		{"impossible day", "?to=31/02/2026", "to"},
		{"reversed", "?from=15/10/2026&to=01/10/2026", "from"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(http.MethodGet, "/api/expenses/summary"+tt.query, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.field, decodeError(t, rec).Errors[0].Field)
		})
	}
}

func TestLedgerExport(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/ledger/export?format=xlsx&from=01/10/2026&to=15/10/2026&save=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, document.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ledger-2026-10-01-2026-10-15.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))

	path := rec.Header().Get("X-Document-Path")
	require.NotEmpty(t, path)
	exists, err := afero.Exists(h.fs, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLedgerExportPDFAndBadFormat(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/ledger/export?from=01/10/2026&to=15/10/2026", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, document.ContentTypePDF, rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = h.do(http.MethodGet, "/api/ledger/export?format=csv", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "format", decodeError(t, rec).Errors[0].Field)
}

func TestNextInvoiceNumberPreviewsRequestedDate(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/invoices/next-number?date=01/09/2026", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"invoice_number":"GTI-00001"`)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), h.invoices.previewDate)

	rec = h.do(http.MethodGet, "/api/invoices/next-number?date=2026-09-01", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "date", decodeError(t, rec).Errors[0].Field)
}

func TestTodayFollowsShopTimezone(t *testing.T) {
	h := newHarness(t)
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	h.clock.In(ist)
	// 19:00 UTC on the 15th is already the 16th in the shop.
	h.clock.Set(time.Date(2026, 10, 15, 19, 0, 0, 0, time.UTC))

	rec := h.do(http.MethodGet, "/api/invoices/next-number", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), h.invoices.previewDate)

	rec = h.do(http.MethodGet, "/api/expenses/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), h.expenses.from)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), h.expenses.to)
}

func TestClassifyErrorForLog(t *testing.T) {
	typ, code := classifyErrorForLog(customerdomain.ErrNotFound)
	assert.Equal(t, "not_found", typ)
	assert.Equal(t, "customer_not_found", code)

	typ, _ = classifyErrorForLog(errors.New("boom"))
	assert.Equal(t, "internal_error", typ)
}
