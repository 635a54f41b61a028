package pdf

import (
	"context"
	"errors"
	"io"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ReceiptData acknowledges one payment.
type ReceiptData struct {
	Company       Company
	ReceiptNumber string
	DatePaid      string

	CustomerName  string
	CustomerPlace string
	InvoiceNumber string

	Amount      string
	Mode        string
	Reference   string
	Outstanding string
}

var ErrMissingAmount = errors.New("pdf: receipt amount is required")

func (p *PDFProvider) GenerateReceipt(ctx context.Context, receipt ReceiptData) (io.Reader, error) {
	if receipt.Amount == "" {
		return nil, ErrMissingAmount
	}

	m := newDocument()
	addLetterhead(m, receipt.Company, "Payment Receipt")

	m.AddRow(20,
		col.New(6).Add(
			text.New("Received from", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(receipt.CustomerName, props.Text{Top: 5, Size: 9}),
			text.New(receipt.CustomerPlace, props.Text{Top: 9, Size: 8}),
		),
		col.New(6).Add(
			text.New("Receipt number: "+receipt.ReceiptNumber, props.Text{Size: 9, Align: align.Right}),
			text.New("Date paid: "+receipt.DatePaid, props.Text{Top: 5, Size: 9, Align: align.Right}),
			text.New(labelled("Against invoice", receipt.InvoiceNumber), props.Text{Top: 10, Size: 9, Align: align.Right}),
		),
	)

	m.AddRow(14,
		text.NewCol(12, receipt.Amount+" received by "+receipt.Mode+refSuffix(receipt.Reference), props.Text{
			Size:  13,
			Style: fontstyle.Bold,
			Top:   4,
		}),
	)

	if receipt.Outstanding != "" {
		addTotal(m, "Balance due", receipt.Outstanding, true)
	}

	return render(m)
}
