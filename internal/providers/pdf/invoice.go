package pdf

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Company is the letterhead and bank block printed on every document.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
	Bank    []string
}

// InvoiceData holds an invoice already formatted for printing.
type InvoiceData struct {
	Company       Company
	InvoiceNumber string
	InvoiceDate   string

	CustomerName    string
	CustomerPlace   string
	CustomerPhone   string
	CustomerGSTIN   string
	CustomerAddress string

	Items []InvoiceItem

	Subtotal   string
	Charges    []Charge
	RoundOff   string
	GrandTotal string

	PaymentMode      string
	PaymentReference string

	// UPI is omitted when no UPI id is configured.
	UPI *UPIPayment
}

type InvoiceItem struct {
	LineNo         int
	Product        string
	ActualSize     string
	ChargeableSize string
	AreaSqft       string
	Rate           string
	Quantity       int
	Amount         string
}

// Charge is one printed surcharge line.
type Charge struct {
	Label  string
	Amount string
}

var (
	ErrMissingNumber = errors.New("pdf: invoice number is required")
	ErrNoItems       = errors.New("pdf: invoice has no items")
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice InvoiceData) (io.Reader, error) {
	if invoice.InvoiceNumber == "" {
		return nil, ErrMissingNumber
	}
	if len(invoice.Items) == 0 {
		return nil, ErrNoItems
	}

	m := newDocument()
	addLetterhead(m, invoice.Company, "Tax Invoice")

	m.AddRow(24,
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(invoice.CustomerName, props.Text{Top: 5, Size: 9}),
			text.New(joinNonEmpty(invoice.CustomerAddress, invoice.CustomerPlace), props.Text{Top: 9, Size: 8}),
			text.New(labelled("Phone", invoice.CustomerPhone), props.Text{Top: 13, Size: 8}),
			text.New(labelled("GSTIN", invoice.CustomerGSTIN), props.Text{Top: 17, Size: 8}),
		),
		col.New(6).Add(
			text.New("Invoice number: "+invoice.InvoiceNumber, props.Text{Size: 9, Align: align.Right}),
			text.New("Date: "+invoice.InvoiceDate, props.Text{Top: 5, Size: 9, Align: align.Right}),
		),
	)

	m.AddRow(8,
		text.NewCol(1, "#", headerText(align.Left)),
		text.NewCol(3, "Product", headerText(align.Left)),
		text.NewCol(2, "Actual size", headerText(align.Left)),
		text.NewCol(2, "Chargeable", headerText(align.Left)),
		text.NewCol(1, "Sq.ft", headerText(align.Right)),
		text.NewCol(1, "Rate", headerText(align.Right)),
		text.NewCol(1, "Qty", headerText(align.Right)),
		text.NewCol(1, "Amount", headerText(align.Right)),
	)
	for _, item := range invoice.Items {
		m.AddRow(7,
			text.NewCol(1, strconv.Itoa(item.LineNo), cellText(align.Left)),
			text.NewCol(3, item.Product, cellText(align.Left)),
			text.NewCol(2, item.ActualSize, cellText(align.Left)),
			text.NewCol(2, item.ChargeableSize, cellText(align.Left)),
			text.NewCol(1, item.AreaSqft, cellText(align.Right)),
			text.NewCol(1, item.Rate, cellText(align.Right)),
			text.NewCol(1, strconv.Itoa(item.Quantity), cellText(align.Right)),
			text.NewCol(1, item.Amount, cellText(align.Right)),
		)
	}

	addTotal(m, "Subtotal", invoice.Subtotal, false)
	for _, charge := range invoice.Charges {
		addTotal(m, charge.Label, charge.Amount, false)
	}
	addTotal(m, "Round off", invoice.RoundOff, false)
	addTotal(m, "Grand total", invoice.GrandTotal, true)

	if invoice.PaymentMode != "" {
		m.AddRow(8,
			text.NewCol(12, labelled("Paid by", invoice.PaymentMode)+refSuffix(invoice.PaymentReference), props.Text{Top: 2, Size: 9}),
		)
	}

	addPaymentBlock(m, invoice.Company, invoice.UPI)

	return render(m)
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
	return maroto.New(cfg)
}

func addLetterhead(m core.Maroto, company Company, title string) {
	m.AddRow(10,
		text.NewCol(8, company.Name, props.Text{Size: 16, Style: fontstyle.Bold}),
		text.NewCol(4, title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(12,
		col.New(12).Add(
			text.New(company.Address, props.Text{Size: 8}),
			text.New(joinNonEmpty(labelled("Phone", company.Phone), company.Email), props.Text{Top: 4, Size: 8}),
			text.New(labelled("GSTIN", company.GSTIN), props.Text{Top: 8, Size: 8}),
		),
	)
}

func addTotal(m core.Maroto, label, amount string, strong bool) {
	style := fontstyle.Normal
	if strong {
		style = fontstyle.Bold
	}
	m.AddRow(6,
		col.New(8),
		text.NewCol(2, label, props.Text{Size: 9, Style: style}),
		text.NewCol(2, amount, props.Text{Size: 9, Style: style, Align: align.Right}),
	)
}

// addPaymentBlock prints the bank lines beside the UPI QR code.
func addPaymentBlock(m core.Maroto, company Company, upi *UPIPayment) {
	if len(company.Bank) == 0 && upi == nil {
		return
	}

	bank := col.New(8)
	if len(company.Bank) > 0 {
		bank.Add(text.New("Bank details", props.Text{Style: fontstyle.Bold, Size: 9}))
		for i, line := range company.Bank {
			bank.Add(text.New(line, props.Text{Top: float64(5 + 4*i), Size: 8}))
		}
	}

	if upi == nil {
		m.AddRow(30, bank, col.New(4))
		return
	}
	m.AddRow(30, bank, code.NewQrCol(4, upi.Link(), props.Rect{Center: true, Percent: 90}))
	m.AddRow(6,
		col.New(8),
		text.NewCol(4, "Scan to pay "+upi.Amount+" via UPI", props.Text{Size: 7, Align: align.Center}),
	)
}

func render(m core.Maroto) (io.Reader, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func headerText(a align.Type) props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 8, Align: a}
}

func cellText(a align.Type) props.Text {
	return props.Text{Size: 8, Align: a}
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func refSuffix(ref string) string {
	if ref == "" {
		return ""
	}
	return " (ref " + ref + ")"
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}
