// Package document renders invoices, receipts and reports from stored data
// and files them under the configured document directory.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	expensedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/metrics"
	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/providers/pdf"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/providers/xlsx"
	settingdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultDir = "documents"
)

// Document is a rendered file ready to be saved or streamed.
type Document struct {
	Name        string
	ContentType string
	Body        []byte
}

type Params struct {
	fx.In

	Log       *zap.Logger
	Config    config.Config    `optional:"true"`
	Fs        afero.Fs         `optional:"true"`
	Metrics   *metrics.Metrics `optional:"true"`
	PDF       pdf.Provider
	XLSX      xlsx.Provider
	Invoices  invoicedomain.Service
	Customers customerdomain.Service
	Payments  paymentdomain.Service
	Settings  settingdomain.Service
	Ledger    ledgerdomain.Service
	Expenses  expensedomain.Service
}

type Service struct {
	log       *zap.Logger
	dir       string
	fs        afero.Fs
	metrics   *metrics.Metrics
	pdf       pdf.Provider
	xlsx      xlsx.Provider
	invoices  invoicedomain.Service
	customers customerdomain.Service
	payments  paymentdomain.Service
	settings  settingdomain.Service
	ledger    ledgerdomain.Service
	expenses  expensedomain.Service
}

var Module = fx.Module("document.service",
	fx.Provide(New),
)

func New(p Params) *Service {
	dir := strings.TrimSpace(p.Config.DocumentDir)
	if dir == "" {
		dir = defaultDir
	}
	fs := p.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Service{
		log:       p.Log.Named("document.service"),
		dir:       dir,
		fs:        fs,
		metrics:   p.Metrics,
		pdf:       p.PDF,
		xlsx:      p.XLSX,
		invoices:  p.Invoices,
		customers: p.Customers,
		payments:  p.Payments,
		settings:  p.Settings,
		ledger:    p.Ledger,
		expenses:  p.Expenses,
	}
}

// InvoicePDF renders the stored invoice with this number.
func (s *Service) InvoicePDF(ctx context.Context, number string) (Document, error) {
	detail, err := s.invoices.GetByNumber(ctx, number)
	if err != nil {
		return Document{}, err
	}
	customer, err := s.customers.GetByID(ctx, detail.Invoice.CustomerID)
	if err != nil {
		return Document{}, err
	}
	profile, err := s.settings.Company(ctx)
	if err != nil {
		return Document{}, err
	}

	r, err := s.pdf.GenerateInvoice(ctx, invoiceData(detail, customer, profile))
	if err != nil {
		return Document{}, fmt.Errorf("render invoice %s: %w", number, err)
	}
	return s.finish("invoice", "pdf", r, "invoice", detail.Invoice.InvoiceNumber, customer.Name)
}

// ReceiptPDF renders the acknowledgement of one payment.
func (s *Service) ReceiptPDF(ctx context.Context, paymentID snowflake.ID) (Document, error) {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return Document{}, err
	}
	customer, err := s.customers.GetByID(ctx, payment.CustomerID)
	if err != nil {
		return Document{}, err
	}
	balance, err := s.payments.CustomerBalance(ctx, payment.CustomerID)
	if err != nil {
		return Document{}, err
	}
	profile, err := s.settings.Company(ctx)
	if err != nil {
		return Document{}, err
	}

	data := pdf.ReceiptData{
		Company:       company(profile),
		ReceiptNumber: payment.ID.String(),
		DatePaid:      dates.FormatDate(payment.PaymentDate),
		CustomerName:  customer.Name,
		CustomerPlace: customer.Place,
		Amount:        money(payment.Amount),
		Mode:          string(payment.Mode),
		Reference:     payment.Reference,
	}
	if balance.Outstanding.IsPositive() {
		data.Outstanding = money(balance.Outstanding)
	}
	if payment.InvoiceID != nil {
		if detail, err := s.invoices.GetByID(ctx, *payment.InvoiceID); err == nil {
			data.InvoiceNumber = detail.Invoice.InvoiceNumber
		}
	}

	r, err := s.pdf.GenerateReceipt(ctx, data)
	if err != nil {
		return Document{}, fmt.Errorf("render receipt %s: %w", payment.ID, err)
	}
	return s.finish("receipt", "pdf", r, "receipt", payment.ID.String(), customer.Name)
}

// LedgerPDF renders the production register for the inclusive range.
func (s *Service) LedgerPDF(ctx context.Context, from, to time.Time) (Document, error) {
	report, err := s.ledger.Report(ctx, from, to)
	if err != nil {
		return Document{}, err
	}
	profile, err := s.settings.Company(ctx)
	if err != nil {
		return Document{}, err
	}

	r, err := s.pdf.GenerateLedger(ctx, ledgerData(report, profile))
	if err != nil {
		return Document{}, fmt.Errorf("render ledger: %w", err)
	}
	return s.finish("ledger", "pdf", r, "ledger", isoDay(report.From), isoDay(report.To))
}

// LedgerXLSX exports the production register for the inclusive range.
func (s *Service) LedgerXLSX(ctx context.Context, from, to time.Time) (Document, error) {
	report, err := s.ledger.Report(ctx, from, to)
	if err != nil {
		return Document{}, err
	}
	r, err := s.xlsx.GenerateLedger(ctx, report)
	if err != nil {
		return Document{}, fmt.Errorf("export ledger: %w", err)
	}
	return s.finish("ledger", "xlsx", r, "ledger", isoDay(report.From), isoDay(report.To))
}

// ExpensesXLSX exports the expenses in the inclusive range with a category summary.
func (s *Service) ExpensesXLSX(ctx context.Context, from, to time.Time) (Document, error) {
	summary, err := s.expenses.Summary(ctx, from, to)
	if err != nil {
		return Document{}, err
	}
	items, err := s.expenses.List(ctx, expensedomain.ListExpenseRequest{From: &summary.From, To: &summary.To})
	if err != nil {
		return Document{}, err
	}
	r, err := s.xlsx.GenerateExpenses(ctx, xlsx.ExpenseData{Items: items, Summary: summary})
	if err != nil {
		return Document{}, fmt.Errorf("export expenses: %w", err)
	}
	return s.finish("expenses", "xlsx", r, "expenses", isoDay(summary.From), isoDay(summary.To))
}

// Save writes doc into the document directory and returns its path.
func (s *Service) Save(ctx context.Context, doc Document) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create document dir: %w", err)
	}
	path := filepath.Join(s.dir, doc.Name)
	if err := afero.WriteFile(s.fs, path, doc.Body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	s.log.Info("document saved", zap.String("path", path), zap.Int("bytes", len(doc.Body)))
	return path, nil
}

func (s *Service) finish(kind, format string, r io.Reader, nameParts ...string) (Document, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return Document{}, fmt.Errorf("read %s %s: %w", kind, format, err)
	}
	s.metrics.RecordDocument(kind, format)

	contentType := ContentTypePDF
	if format == "xlsx" {
		contentType = ContentTypeXLSX
	}
	return Document{
		Name:        FileName(format, nameParts...),
		ContentType: contentType,
		Body:        buf.Bytes(),
	}, nil
}

// FileName slugs the parts into a file name, for example
// invoice-gti-00012-ravi-glass-house.pdf.
func FileName(ext string, parts ...string) string {
	name := slug.Make(strings.Join(parts, " "))
	if name == "" {
		name = "document"
	}
	return name + "." + ext
}

func invoiceData(detail invoicedomain.Detail, customer customerdomain.Customer, profile settingdomain.CompanyProfile) pdf.InvoiceData {
	inv := detail.Invoice
	data := pdf.InvoiceData{
		Company:          company(profile),
		InvoiceNumber:    inv.InvoiceNumber,
		InvoiceDate:      dates.FormatDate(inv.InvoiceDate),
		CustomerName:     customer.Name,
		CustomerPlace:    customer.Place,
		CustomerPhone:    customer.Phone,
		CustomerGSTIN:    customer.TaxID,
		CustomerAddress:  customer.Address,
		Subtotal:         money(inv.Subtotal),
		RoundOff:         money(inv.RoundOff),
		GrandTotal:       money(inv.GrandTotal),
		PaymentMode:      string(inv.PaymentMode),
		PaymentReference: inv.PaymentReference,
	}

	for _, item := range detail.Items {
		dims := item.Dimensions()
		product := item.ProductName
		if item.ProductType != "" {
			product += " (" + item.ProductType + ")"
		}
		data.Items = append(data.Items, pdf.InvoiceItem{
			LineNo:         item.LineNo,
			Product:        product,
			ActualSize:     dims.ActualSize(),
			ChargeableSize: dims.ChargeableSize(),
			AreaSqft:       item.DisplayArea().StringFixed(invoicedomain.AreaDisplayPlaces),
			Rate:           money(item.Rate),
			Quantity:       item.Quantity,
			Amount:         money(item.Amount),
		})
	}

	for _, c := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Cutout", inv.CutoutCharge},
		{"Hole", inv.HoleCharge},
		{"Handle", inv.HandleCharge},
		{"Jumbo", inv.JumboCharge},
	} {
		if c.amount.IsZero() {
			continue
		}
		data.Charges = append(data.Charges, pdf.Charge{Label: c.label, Amount: money(c.amount)})
	}

	if profile.UPIID != "" {
		payee := profile.UPIPayeeName
		if payee == "" {
			payee = profile.Name
		}
		data.UPI = &pdf.UPIPayment{ID: profile.UPIID, Payee: payee, Amount: money(inv.GrandTotal)}
	}
	return data
}

func ledgerData(report ledgerdomain.Report, profile settingdomain.CompanyProfile) pdf.LedgerData {
	data := pdf.LedgerData{
		Company:       company(profile),
		From:          dates.Format(report.From),
		To:            dates.Format(report.To),
		TotalQuantity: report.Quantity,
		TotalArea:     money(report.AreaSqft),
	}
	for _, entry := range report.Entries {
		data.Entries = append(data.Entries, pdf.LedgerEntry{
			Date:      dates.FormatDate(entry.EntryDate),
			Customer:  entry.CustomerName,
			GlassType: entry.GlassType,
			Thickness: entry.ThicknessMM,
			Size:      entry.Size,
			Quantity:  entry.Quantity,
			AreaSqft:  money(entry.AreaSqft),
		})
	}
	for _, day := range report.Days {
		data.Days = append(data.Days, pdf.LedgerDay{
			Date:     dates.Format(day.Date),
			Entries:  day.Entries,
			Quantity: day.Quantity,
			AreaSqft: money(day.AreaSqft),
		})
	}
	return data
}

func company(p settingdomain.CompanyProfile) pdf.Company {
	c := pdf.Company{
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
		GSTIN:   p.GSTIN,
	}
	if !p.HasBank() {
		return c
	}
	for _, line := range []string{
		p.BankName,
		labelled("A/C", p.BankAccount),
		labelled("IFSC", p.BankIFSC),
		labelled("Branch", p.BankBranch),
	} {
		if line != "" {
			c.Bank = append(c.Bank, line)
		}
	}
	return c
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + " " + value
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// isoDay keeps file names sortable.
func isoDay(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
