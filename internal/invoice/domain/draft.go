package domain

import (
	"slices"
	"time"

	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	productdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// LineItem is a priced line that exists only in a draft.
type LineItem struct {
	ProductID   snowflake.ID    `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductType string          `json:"product_type"`
	Dimensions  Dimensions      `json:"dimensions"`
	Area        decimal.Decimal `json:"area_sqft"`
	Rate        decimal.Decimal `json:"rate"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// BuildLine prices dims for product at its current rate.
func BuildLine(product productdomain.Product, dims Dimensions, quantity int) (LineItem, error) {
	quote, err := CalculateLine(dims, product.RatePerSqft, quantity)
	if err != nil {
		return LineItem{}, err
	}
	return LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		ProductType: product.Type,
		Dimensions:  dims,
		Area:        quote.Area,
		Rate:        quote.Rate,
		Quantity:    quote.Quantity,
		Amount:      quote.Amount,
	}, nil
}

// GlassType is the product label recorded on the work row.
func (l LineItem) GlassType() string {
	return productdomain.Product{Name: l.ProductName, Type: l.ProductType}.Label()
}

// InvoiceDraft is the invoice being built. It is a value: every method
// returns a modified copy and leaves the receiver as it was.
type InvoiceDraft struct {
	CustomerID       snowflake.ID       `json:"customer_id,omitempty"`
	CustomerName     string             `json:"customer_name,omitempty"`
	Date             time.Time          `json:"date"`
	Lines            []LineItem         `json:"lines"`
	Surcharges       Surcharges         `json:"surcharges"`
	PaymentMode      paymentdomain.Mode `json:"payment_mode,omitempty"`
	PaymentReference string             `json:"payment_reference,omitempty"`
}

// AddLine appends item. The same product and size may appear more than once.
func (d InvoiceDraft) AddLine(item LineItem) InvoiceDraft {
	d.Lines = append(slices.Clone(d.Lines), item)
	return d
}

// RemoveLine drops the line at index.
func (d InvoiceDraft) RemoveLine(index int) (InvoiceDraft, error) {
	if index < 0 || index >= len(d.Lines) {
		return d, ErrLineIndexOutOfRange
	}
	d.Lines = slices.Delete(slices.Clone(d.Lines), index, index+1)
	return d, nil
}

// Clear starts a new invoice: lines, customer, surcharges and payment are reset.
func (d InvoiceDraft) Clear() InvoiceDraft {
	return InvoiceDraft{Lines: []LineItem{}}
}

func (d InvoiceDraft) WithCustomer(id snowflake.ID, name string) InvoiceDraft {
	d.CustomerID = id
	d.CustomerName = name
	return d
}

func (d InvoiceDraft) WithSurcharges(s Surcharges) InvoiceDraft {
	d.Surcharges = s
	return d
}

func (d InvoiceDraft) WithPayment(mode paymentdomain.Mode, reference string) InvoiceDraft {
	d.PaymentMode = mode
	d.PaymentReference = reference
	return d
}

func (d InvoiceDraft) WithDate(date time.Time) InvoiceDraft {
	d.Date = date
	return d
}

// Totals computes the draft's totals from its current lines and surcharges.
func (d InvoiceDraft) Totals() Totals {
	return ComputeTotals(d.Lines, d.Surcharges)
}

// Ready reports the first unmet commit precondition.
func (d InvoiceDraft) Ready() error {
	if d.CustomerID == 0 {
		return ErrMissingCustomer
	}
	if len(d.Lines) == 0 {
		return ErrNoLines
	}
	return nil
}
