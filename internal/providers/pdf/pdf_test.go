package pdf

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}

func sampleInvoice() InvoiceData {
	return InvoiceData{
		Company: Company{
			Name: "Ganesh Toughened Industry",
			Bank: []string{"State Bank of India", "A/C 0000123456", "IFSC SBIN0000001"},
		},
		InvoiceNumber: "GTI-00012",
		InvoiceDate:   "15/10/2026",
		CustomerName:  "Ravi Glass House",
		CustomerPlace: "Guntur",
		Items: []InvoiceItem{
			{LineNo: 1, Product: "Clear 8mm", ActualSize: "47.5 x 35.5", ChargeableSize: "48 x 36", AreaSqft: "12.00", Rate: "50.00", Quantity: 2, Amount: "1200.00"},
		},
		Subtotal:   "1200.00",
		Charges:    []Charge{{Label: "Cutout", Amount: "50.00"}},
		RoundOff:   "-0.50",
		GrandTotal: "1249.50",
		UPI:        &UPIPayment{ID: "gti@upi", Payee: "Ganesh Toughened", Amount: "1249.50"},
	}
}

func TestGenerateInvoice(t *testing.T) {
	r, err := New().GenerateInvoice(context.Background(), sampleInvoice())
	require.NoError(t, err)

	b := readAll(t, r)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateInvoiceRequiresItems(t *testing.T) {
	data := sampleInvoice()
	data.Items = nil
	_, err := New().GenerateInvoice(context.Background(), data)
	assert.ErrorIs(t, err, ErrNoItems)

	data = sampleInvoice()
	data.InvoiceNumber = ""
	_, err = New().GenerateInvoice(context.Background(), data)
	assert.ErrorIs(t, err, ErrMissingNumber)
}

func TestGenerateReceiptAndLedger(t *testing.T) {
	p := New()

	r, err := p.GenerateReceipt(context.Background(), ReceiptData{
		ReceiptNumber: "1234",
		DatePaid:      "15/10/2026",
		CustomerName:  "Ravi Glass House",
		Amount:        "1000.00",
		Mode:          "UPI",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(readAll(t, r)[:4]))

	_, err = p.GenerateReceipt(context.Background(), ReceiptData{})
	assert.ErrorIs(t, err, ErrMissingAmount)

	r, err = p.GenerateLedger(context.Background(), LedgerData{From: "01/10/2026", To: "15/10/2026", TotalArea: "0.00"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(readAll(t, r)[:4]))
}

func TestUPILink(t *testing.T) {
	link := UPIPayment{ID: "gti@upi", Payee: "Ganesh Toughened", Amount: "1249.50"}.Link()
	assert.Equal(t, "upi://pay?pa=gti@upi&pn=Ganesh%20Toughened&am=1249.50&cu=INR", link)

	link = UPIPayment{ID: "shop@okaxis", Amount: "10.00"}.Link()
	assert.Equal(t, "upi://pay?pa=shop@okaxis&am=10.00&cu=INR", link)
}
