package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const namespace = "glassworks"

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	OtelEnabled      bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments. Prometheus collectors back
// the /metrics endpoint; the OTel counters mirror them to the collector when
// export is enabled.
type Metrics struct {
	invoicesCommitted *prometheus.CounterVec
	commitFailures    *prometheus.CounterVec
	commitDuration    prometheus.Histogram
	invoiceTotals     prometheus.Histogram
	paymentsRecorded  *prometheus.CounterVec
	documentsRendered *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec

	otelInvoices metric.Int64Counter
	otelPayments metric.Int64Counter
}

// NewProvider configures and registers the OTel meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.OtelEnabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(30*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				log.Info("shutting down meter provider")
				return provider.Shutdown(ctx)
			},
		})
	}

	log.Info("metrics exporter initialized",
		zap.String("endpoint", cfg.ExporterEndpoint),
		zap.String("protocol", cfg.ExporterProtocol),
	)
	return provider, nil
}

// New registers the domain instruments on reg and the meter provider.
func New(cfg Config, reg prometheus.Registerer, provider metric.MeterProvider) (*Metrics, error) {
	m := &Metrics{
		invoicesCommitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_committed_total",
			Help:      "Invoices committed, by payment mode.",
		}, []string{"payment_mode"}),
		commitFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_commit_failures_total",
			Help:      "Invoice commits that were rolled back, by error kind.",
		}, []string{"kind"}),
		commitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invoice_commit_duration_seconds",
			Help:      "Time spent in the invoice commit transaction.",
			Buckets:   prometheus.DefBuckets,
		}),
		invoiceTotals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invoice_grand_total_rupees",
			Help:      "Grand total of committed invoices.",
			Buckets:   []float64{500, 1000, 2500, 5000, 10000, 25000, 50000, 100000, 250000},
		}),
		paymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Payments recorded, by mode.",
		}, []string{"mode"}),
		documentsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_rendered_total",
			Help:      "Documents rendered, by kind and format.",
		}, []string{"kind", "format"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	if cfg.Enabled && reg != nil {
		for _, c := range []prometheus.Collector{
			m.invoicesCommitted,
			m.commitFailures,
			m.commitDuration,
			m.invoiceTotals,
			m.paymentsRecorded,
			m.documentsRendered,
			m.httpRequests,
			m.httpDuration,
		} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("register collector: %w", err)
			}
		}
	}

	if provider == nil {
		provider = noop.NewMeterProvider()
	}
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = namespace
	}
	meter := provider.Meter(name)

	var err error
	if m.otelInvoices, err = meter.Int64Counter(namespace + "_invoices_committed_total"); err != nil {
		return nil, err
	}
	if m.otelPayments, err = meter.Int64Counter(namespace + "_payments_recorded_total"); err != nil {
		return nil, err
	}

	return m, nil
}

// NewNop returns instruments that are not registered anywhere.
func NewNop() *Metrics {
	m, _ := New(Config{}, nil, noop.NewMeterProvider())
	return m
}

// RecordInvoiceCommitted counts a committed invoice, its grand total and
// its transaction time.
func (m *Metrics) RecordInvoiceCommitted(ctx context.Context, paymentMode string, grandTotal float64, elapsed time.Duration) {
	if m == nil {
		return
	}
	mode := label(paymentMode)
	m.invoicesCommitted.WithLabelValues(mode).Inc()
	m.invoiceTotals.Observe(grandTotal)
	m.commitDuration.Observe(elapsed.Seconds())
	m.otelInvoices.Add(ctx, 1, metric.WithAttributes(FilterAttributes(attribute.String("payment_mode", mode))...))
}

// RecordCommitFailure counts a rolled back commit.
func (m *Metrics) RecordCommitFailure(kind string) {
	if m == nil {
		return
	}
	m.commitFailures.WithLabelValues(label(kind)).Inc()
}

// RecordPayment counts a recorded payment.
func (m *Metrics) RecordPayment(ctx context.Context, mode string) {
	if m == nil {
		return
	}
	mode = label(mode)
	m.paymentsRecorded.WithLabelValues(mode).Inc()
	m.otelPayments.Add(ctx, 1, metric.WithAttributes(FilterAttributes(attribute.String("mode", mode))...))
}

// RecordDocument counts a rendered PDF or spreadsheet.
func (m *Metrics) RecordDocument(kind, format string) {
	if m == nil {
		return
	}
	m.documentsRendered.WithLabelValues(label(kind), label(format)).Inc()
}

func label(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "unknown"
	}
	return v
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"payment_mode": {},
	"mode":         {},
	"kind":         {},
	"format":       {},
	"route":        {},
	"status_code":  {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
