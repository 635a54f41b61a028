package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	attendancedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/attendance/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	expensedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	inventorydomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/domain"
	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/draft"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability"
	obslogger "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/logger"
	obsmetrics "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/metrics"
	obstracing "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/tracing"
	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	productdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/domain"
	settingdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/domain"
	visitdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/domain"
	workdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	validation.Module,
	fx.Provide(registerGin),
	fx.Provide(NewServer),
	fx.Invoke(RunHTTP),
)

type EngineParams struct {
	fx.In

	ObsCfg   observability.Config
	Metrics  *obsmetrics.Metrics  `optional:"true"`
	Registry *prometheus.Registry `optional:"true"`
}

func registerGin(p EngineParams) *gin.Engine {
	return NewEngine(p.ObsCfg, p.Metrics, p.Registry)
}

// NewEngine builds the gin engine with the request middlewares, /health and,
// when a registry is given, /metrics.
func NewEngine(obsCfg observability.Config, m *obsmetrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(m.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}
	r.NoRoute(func(c *gin.Context) {
		AbortWithError(c, ErrNotFound)
	})

	return r
}

type Server struct {
	engine    *gin.Engine
	log       *zap.Logger
	clock     clock.Clock
	validate  *validator.Validate
	customers customerdomain.Service
	products  productdomain.Service
	inventory inventorydomain.Service
	invoices  invoicedomain.Service
	drafts    *draft.Store
	payments  paymentdomain.Service
	expenses  expensedomain.Service
	visits    visitdomain.Service
	works     workdomain.Service
	workers   attendancedomain.Service
	ledger    ledgerdomain.Service
	settings  settingdomain.Service
	documents *document.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Log        *zap.Logger
	Clock      clock.Clock
	Validate   *validator.Validate
	Customers  customerdomain.Service
	Products   productdomain.Service
	Inventory  inventorydomain.Service
	Invoices   invoicedomain.Service
	Drafts     *draft.Store
	Payments   paymentdomain.Service
	Expenses   expensedomain.Service
	Visits     visitdomain.Service
	Works      workdomain.Service
	Attendance attendancedomain.Service
	Ledger     ledgerdomain.Service
	Settings   settingdomain.Service
	Documents  *document.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:    p.Gin,
		log:       p.Log.Named("http.server"),
		clock:     p.Clock,
		validate:  p.Validate,
		customers: p.Customers,
		products:  p.Products,
		inventory: p.Inventory,
		invoices:  p.Invoices,
		drafts:    p.Drafts,
		payments:  p.Payments,
		expenses:  p.Expenses,
		visits:    p.Visits,
		works:     p.Works,
		workers:   p.Attendance,
		ledger:    p.Ledger,
		settings:  p.Settings,
		documents: p.Documents,
	}
	s.registerAPIRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.GET("/customers/:id/balance", s.GetCustomerBalance)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.PATCH("/products/:id/rate", s.UpdateProductRate)

	// -------- Inventory --------
	api.GET("/inventory/movements", s.ListMovements)
	api.POST("/inventory/movements", s.RecordMovement)
	api.GET("/inventory/stock", s.GetStock)

	// -------- Drafts --------
	api.POST("/drafts", s.OpenDraft)
	api.GET("/drafts/:id", s.GetDraft)
	api.PUT("/drafts/:id/customer", s.SetDraftCustomer)
	api.PUT("/drafts/:id/date", s.SetDraftDate)
	api.POST("/drafts/:id/lines", s.AddDraftLine)
	api.DELETE("/drafts/:id/lines/:index", s.RemoveDraftLine)
	api.PUT("/drafts/:id/surcharges", s.SetDraftSurcharges)
	api.PUT("/drafts/:id/payment", s.SetDraftPayment)
	api.POST("/drafts/:id/commit", s.CommitDraft)
	api.DELETE("/drafts/:id", s.DiscardDraft)

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/next-number", s.NextInvoiceNumber)
	api.POST("/invoices/quote", s.QuoteLine)
	api.GET("/invoices/:number", s.GetInvoice)
	api.GET("/invoices/:number/pdf", s.GetInvoicePDF)

	// -------- Payments --------
	api.GET("/payments", s.ListPayments)
	api.POST("/payments", s.CreatePayment)
	api.GET("/payments/summary", s.PaymentSummary)
	api.GET("/payments/:id/receipt", s.GetPaymentReceipt)

	// -------- Expenses --------
	api.GET("/expenses", s.ListExpenses)
	api.POST("/expenses", s.CreateExpense)
	api.GET("/expenses/summary", s.ExpenseSummary)
	api.GET("/expenses/export", s.ExportExpenses)

	// -------- Visits and works --------
	api.GET("/visits", s.ListVisits)
	api.POST("/visits", s.LogVisit)
	api.GET("/works", s.ListWorks)
	api.POST("/works", s.CreateWork)
	api.PATCH("/works/:id/status", s.UpdateWorkStatus)

	// -------- Workers and attendance --------
	api.GET("/workers", s.ListWorkers)
	api.POST("/workers", s.CreateWorker)
	api.GET("/attendance", s.GetAttendance)
	api.PUT("/attendance", s.MarkAttendance)
	api.GET("/attendance/summary", s.AttendanceSummary)

	// -------- Production ledger --------
	api.GET("/ledger", s.ListLedger)
	api.POST("/ledger", s.RecordLedgerEntry)
	api.GET("/ledger/totals", s.LedgerTotals)
	api.GET("/ledger/export", s.ExportLedger)

	// -------- Settings --------
	api.GET("/settings", s.ListSettings)
	api.PUT("/settings/:key", s.SetSetting)
}

// RunHTTP serves the engine on the configured address for the app's lifetime.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
