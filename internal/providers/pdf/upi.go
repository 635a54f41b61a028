package pdf

import (
	"net/url"
	"strings"
)

// UPIPayment is the payee and amount encoded in the invoice QR code.
type UPIPayment struct {
	ID     string
	Payee  string
	Amount string
}

// Link renders the upi://pay deep link UPI apps open from the QR code.
// Parameters keep the pa, pn, am, cu order some apps expect.
func (u UPIPayment) Link() string {
	var b strings.Builder
	b.WriteString("upi://pay?pa=")
	b.WriteString(url.PathEscape(u.ID))
	if u.Payee != "" {
		b.WriteString("&pn=")
		b.WriteString(url.PathEscape(u.Payee))
	}
	b.WriteString("&am=")
	b.WriteString(u.Amount)
	b.WriteString("&cu=INR")
	return b.String()
}
