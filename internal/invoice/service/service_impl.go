package service

import (
	"context"
	"strings"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	inventorydomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/domain"
	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/format"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/metrics"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/tracing"
	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	productdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/domain"
	visitdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/domain"
	workdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Config config.Config `optional:"true"`

	Repo          invoicedomain.Repository
	CustomerRepo  customerdomain.Repository
	ProductRepo   productdomain.Repository
	PaymentRepo   paymentdomain.Repository
	VisitRepo     visitdomain.Repository
	WorkRepo      workdomain.Repository
	InventoryRepo inventorydomain.Repository

	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	template string
	tracer   trace.Tracer
	metrics  *metrics.Metrics

	repo          invoicedomain.Repository
	customerRepo  customerdomain.Repository
	productRepo   productdomain.Repository
	paymentRepo   paymentdomain.Repository
	visitRepo     visitdomain.Repository
	workRepo      workdomain.Repository
	inventoryRepo inventorydomain.Repository
}

func NewService(p ServiceParam) invoicedomain.Service {
	template := strings.TrimSpace(p.Config.InvoiceNumberTemplate)
	if template == "" {
		template = format.DefaultInvoiceNumberTemplate
	}

	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		template: template,
		tracer:   otel.Tracer("invoice.service"),
		metrics:  p.Metrics,

		repo:          p.Repo,
		customerRepo:  p.CustomerRepo,
		productRepo:   p.ProductRepo,
		paymentRepo:   p.PaymentRepo,
		visitRepo:     p.VisitRepo,
		workRepo:      p.WorkRepo,
		inventoryRepo: p.InventoryRepo,
	}
}

// Commit records a sale: the invoice, its items, the payment when a mode is
// set, a Billing visit, one completed work and one stock_out movement per
// line. All rows are written in one transaction; on any failure none are.
func (s *Service) Commit(ctx context.Context, draft invoicedomain.InvoiceDraft) (invoicedomain.CommitResult, error) {
	ctx, span := s.tracer.Start(ctx, "invoice.commit", trace.WithAttributes(tracing.SafeAttributes(
		attribute.Int("invoice.lines", len(draft.Lines)),
		attribute.String("invoice.payment_mode", string(draft.PaymentMode)),
	)...))
	defer span.End()

	started := time.Now()
	result, err := s.commit(ctx, draft)
	if err != nil {
		kind := string(apperror.KindOf(err))
		s.metrics.RecordCommitFailure(kind)
		span.RecordError(tracing.SafeError(err))
		span.SetStatus(codes.Error, kind)
		s.log.Warn("invoice commit failed",
			zap.String("customer_id", draft.CustomerID.String()),
			zap.Int("lines", len(draft.Lines)),
			zap.Error(err),
		)
		return invoicedomain.CommitResult{}, err
	}

	grandTotal, _ := result.Invoice.GrandTotal.Float64()
	s.metrics.RecordInvoiceCommitted(ctx, string(result.Invoice.PaymentMode), grandTotal, time.Since(started))
	if result.PaymentID != nil {
		s.metrics.RecordPayment(ctx, string(result.Invoice.PaymentMode))
	}
	span.SetAttributes(attribute.String("invoice.number", result.Invoice.InvoiceNumber))

	next, err := s.NextInvoiceNumber(ctx, dates.Today(s.clock))
	if err != nil {
		s.log.Warn("failed to preview next invoice number", zap.Error(err))
	}
	result.NextNumber = next

	s.log.Info("invoice committed",
		zap.String("invoice_number", result.Invoice.InvoiceNumber),
		zap.String("invoice_id", result.Invoice.ID.String()),
		zap.String("customer_id", result.Invoice.CustomerID.String()),
		zap.Int("lines", len(result.Items)),
		zap.String("grand_total", result.Invoice.GrandTotal.StringFixed(2)),
		zap.Bool("payment_recorded", result.PaymentID != nil),
	)
	return result, nil
}

func (s *Service) commit(ctx context.Context, draft invoicedomain.InvoiceDraft) (invoicedomain.CommitResult, error) {
	if err := draft.Ready(); err != nil {
		return invoicedomain.CommitResult{}, err
	}
	if err := draft.Surcharges.Validate(); err != nil {
		return invoicedomain.CommitResult{}, err
	}
	if draft.PaymentMode != "" && !draft.PaymentMode.Valid() {
		return invoicedomain.CommitResult{}, invoicedomain.ErrInvalidPaymentMode
	}

	// Reprice every line so the stored amounts always follow the formula.
	lines := make([]invoicedomain.LineItem, len(draft.Lines))
	for i, line := range draft.Lines {
		if line.ProductID == 0 {
			return invoicedomain.CommitResult{}, invoicedomain.ErrProductNotFound
		}
		quote, err := invoicedomain.CalculateLine(line.Dimensions, line.Rate, line.Quantity)
		if err != nil {
			return invoicedomain.CommitResult{}, err
		}
		line.Area = quote.Area
		line.Amount = quote.Amount
		lines[i] = line
	}
	draft.Lines = lines

	return db.RetryTransient(ctx, db.DefaultMaxTries, func() (invoicedomain.CommitResult, error) {
		var result invoicedomain.CommitResult
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var err error
			result, err = s.commitTx(ctx, tx, draft)
			return err
		})
		if err != nil {
			return invoicedomain.CommitResult{}, db.Classify("commit_invoice", err)
		}
		return result, nil
	})
}

func (s *Service) commitTx(ctx context.Context, tx *gorm.DB, draft invoicedomain.InvoiceDraft) (invoicedomain.CommitResult, error) {
	customer, err := s.customerRepo.FindByID(ctx, tx, draft.CustomerID)
	if err != nil {
		return invoicedomain.CommitResult{}, err
	}
	if customer == nil {
		return invoicedomain.CommitResult{}, invoicedomain.ErrCustomerNotFound
	}
	if err := s.ensureProducts(ctx, tx, draft.Lines); err != nil {
		return invoicedomain.CommitResult{}, err
	}

	now := s.clock.Now()
	invoiceDate := draft.Date
	if invoiceDate.IsZero() {
		invoiceDate = now
	}
	invoiceDate = dates.Truncate(invoiceDate)

	seq, err := s.repo.AllocateNumber(ctx, tx, now)
	if err != nil {
		return invoicedomain.CommitResult{}, err
	}
	number, err := format.FormatInvoiceNumber(s.template, invoiceDate, seq)
	if err != nil {
		return invoicedomain.CommitResult{}, err
	}

	totals := draft.Totals()
	invoice := invoicedomain.Invoice{
		ID:               s.genID.Generate(),
		InvoiceNumber:    number,
		CustomerID:       customer.ID,
		InvoiceDate:      dates.ToDate(invoiceDate),
		Subtotal:         totals.Subtotal,
		CutoutCharge:     draft.Surcharges.Cutout,
		HoleCharge:       draft.Surcharges.Hole,
		HandleCharge:     draft.Surcharges.Handle,
		JumboCharge:      draft.Surcharges.Jumbo,
		ExtraTotal:       totals.ExtraTotal,
		RoundOff:         totals.RoundOff,
		GrandTotal:       totals.GrandTotal,
		PaymentMode:      draft.PaymentMode,
		PaymentReference: strings.TrimSpace(draft.PaymentReference),
		CreatedAt:        now,
	}
	if err := s.repo.InsertInvoice(ctx, tx, &invoice); err != nil {
		return invoicedomain.CommitResult{}, err
	}

	result := invoicedomain.CommitResult{
		Invoice:     invoice,
		Items:       make([]invoicedomain.InvoiceItem, 0, len(draft.Lines)),
		WorkIDs:     make([]snowflake.ID, 0, len(draft.Lines)),
		MovementIDs: make([]snowflake.ID, 0, len(draft.Lines)),
	}

	for i, line := range draft.Lines {
		item := invoicedomain.InvoiceItem{
			ID:               s.genID.Generate(),
			InvoiceID:        invoice.ID,
			LineNo:           i + 1,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			ProductType:      line.ProductType,
			ActualHeight:     line.Dimensions.ActualHeight,
			ActualWidth:      line.Dimensions.ActualWidth,
			ChargeableHeight: line.Dimensions.ChargeableHeight,
			ChargeableWidth:  line.Dimensions.ChargeableWidth,
			AreaSqft:         line.Area,
			Rate:             line.Rate,
			Quantity:         line.Quantity,
			Amount:           line.Amount,
			CreatedAt:        now,
		}
		if err := s.repo.InsertItem(ctx, tx, &item); err != nil {
			return invoicedomain.CommitResult{}, err
		}
		result.Items = append(result.Items, item)
	}

	if invoice.PaymentMode != "" {
		payment := paymentdomain.Payment{
			ID:          s.genID.Generate(),
			CustomerID:  customer.ID,
			InvoiceID:   &invoice.ID,
			PaymentDate: invoice.InvoiceDate,
			Amount:      invoice.GrandTotal,
			Mode:        invoice.PaymentMode,
			Reference:   invoice.PaymentReference,
			CreatedAt:   now,
		}
		if err := s.paymentRepo.Insert(ctx, tx, &payment); err != nil {
			return invoicedomain.CommitResult{}, err
		}
		result.PaymentID = &payment.ID
	}

	visit := visitdomain.Visit{
		ID:          s.genID.Generate(),
		CustomerID:  &customer.ID,
		InvoiceID:   &invoice.ID,
		DisplayName: customer.Name,
		City:        customer.City(),
		Purpose:     visitdomain.PurposeBilling,
		VisitedAt:   now,
	}
	if err := s.visitRepo.Insert(ctx, tx, &visit); err != nil {
		return invoicedomain.CommitResult{}, err
	}
	result.VisitID = visit.ID

	for _, line := range draft.Lines {
		work := workdomain.Work{
			ID:        s.genID.Generate(),
			InvoiceID: &invoice.ID,
			WorkDate:  invoice.InvoiceDate,
			GlassType: line.GlassType(),
			Size:      line.Dimensions.ChargeableSize(),
			Quantity:  line.Quantity,
			Status:    workdomain.StatusCompleted,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.workRepo.Insert(ctx, tx, &work); err != nil {
			return invoicedomain.CommitResult{}, err
		}
		result.WorkIDs = append(result.WorkIDs, work.ID)
	}

	for _, line := range draft.Lines {
		movement := inventorydomain.Movement{
			ID:           s.genID.Generate(),
			ProductID:    line.ProductID,
			InvoiceID:    &invoice.ID,
			MovementDate: invoice.InvoiceDate,
			Direction:    inventorydomain.DirectionOut,
			Quantity:     line.Quantity,
			Notes:        invoice.InvoiceNumber,
			CreatedAt:    now,
		}
		if err := s.inventoryRepo.Insert(ctx, tx, &movement); err != nil {
			return invoicedomain.CommitResult{}, err
		}
		result.MovementIDs = append(result.MovementIDs, movement.ID)
	}

	return result, nil
}

func (s *Service) ensureProducts(ctx context.Context, tx *gorm.DB, lines []invoicedomain.LineItem) error {
	seen := make(map[snowflake.ID]struct{}, len(lines))
	ids := make([]snowflake.ID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, tx, ids)
	if err != nil {
		return err
	}
	if len(products) != len(ids) {
		return invoicedomain.ErrProductNotFound
	}
	return nil
}

func (s *Service) NextInvoiceNumber(ctx context.Context, invoiceDate time.Time) (string, error) {
	if invoiceDate.IsZero() {
		invoiceDate = s.clock.Now()
	}
	seq, err := s.repo.PeekNumber(ctx, s.db)
	if err != nil {
		return "", db.Classify("peek_invoice_number", err)
	}
	number, err := format.FormatInvoiceNumber(s.template, dates.Truncate(invoiceDate), seq)
	if err != nil {
		return "", err
	}
	return number, nil
}

func (s *Service) BuildLine(ctx context.Context, req invoicedomain.QuoteRequest) (invoicedomain.LineItem, error) {
	if req.ProductID == 0 {
		return invoicedomain.LineItem{}, invoicedomain.ErrProductNotFound
	}
	product, err := s.productRepo.FindByID(ctx, s.db, req.ProductID)
	if err != nil {
		return invoicedomain.LineItem{}, db.Classify("find_product", err)
	}
	if product == nil {
		return invoicedomain.LineItem{}, invoicedomain.ErrProductNotFound
	}
	return invoicedomain.BuildLine(*product, req.Dimensions, req.Quantity)
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (invoicedomain.Detail, error) {
	if id == 0 {
		return invoicedomain.Detail{}, invoicedomain.ErrInvalidID
	}
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return invoicedomain.Detail{}, db.Classify("find_invoice", err)
	}
	return s.detail(ctx, invoice)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (invoicedomain.Detail, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return invoicedomain.Detail{}, invoicedomain.ErrInvalidNumber
	}
	invoice, err := s.repo.FindByNumber(ctx, s.db, number)
	if err != nil {
		return invoicedomain.Detail{}, db.Classify("find_invoice", err)
	}
	return s.detail(ctx, invoice)
}

func (s *Service) detail(ctx context.Context, invoice *invoicedomain.Invoice) (invoicedomain.Detail, error) {
	if invoice == nil {
		return invoicedomain.Detail{}, invoicedomain.ErrNotFound
	}
	items, err := s.repo.ListItems(ctx, s.db, invoice.ID)
	if err != nil {
		return invoicedomain.Detail{}, db.Classify("list_invoice_items", err)
	}
	return invoicedomain.Detail{Invoice: *invoice, Items: items}, nil
}

func (s *Service) List(ctx context.Context, req invoicedomain.ListInvoiceRequest) ([]invoicedomain.Invoice, error) {
	items, err := s.repo.List(ctx, s.db, invoicedomain.ListFilter{
		CustomerID: req.CustomerID,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		return nil, db.Classify("list_invoices", err)
	}
	return items, nil
}
