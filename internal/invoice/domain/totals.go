package domain

import (
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/shopspring/decimal"
)

// Surcharges are the manually entered extras of an invoice. RoundOff may
// be negative; the charges may not.
type Surcharges struct {
	Cutout   decimal.Decimal `json:"cutout"`
	Hole     decimal.Decimal `json:"hole"`
	Handle   decimal.Decimal `json:"handle"`
	Jumbo    decimal.Decimal `json:"jumbo"`
	RoundOff decimal.Decimal `json:"round_off"`
}

// SurchargeInput is the raw text of the surcharge fields.
type SurchargeInput struct {
	Cutout   string `json:"cutout"`
	Hole     string `json:"hole"`
	Handle   string `json:"handle"`
	Jumbo    string `json:"jumbo"`
	RoundOff string `json:"round_off"`
}

// ParseSurcharges reads the surcharge fields. Blank fields are zero.
func ParseSurcharges(in SurchargeInput) (Surcharges, error) {
	var (
		out Surcharges
		err error
	)
	if out.Cutout, err = parseCharge("cutout", in.Cutout); err != nil {
		return Surcharges{}, err
	}
	if out.Hole, err = parseCharge("hole", in.Hole); err != nil {
		return Surcharges{}, err
	}
	if out.Handle, err = parseCharge("handle", in.Handle); err != nil {
		return Surcharges{}, err
	}
	if out.Jumbo, err = parseCharge("jumbo", in.Jumbo); err != nil {
		return Surcharges{}, err
	}
	if out.RoundOff, err = parseAmount("round_off", in.RoundOff); err != nil {
		return Surcharges{}, err
	}
	return out, nil
}

func (s Surcharges) Validate() error {
	for _, c := range []struct {
		field string
		value decimal.Decimal
	}{
		{"cutout", s.Cutout},
		{"hole", s.Hole},
		{"handle", s.Handle},
		{"jumbo", s.Jumbo},
	} {
		if c.value.IsNegative() {
			return apperror.Validation(c.field, "invalid_"+c.field)
		}
	}
	return nil
}

// Extra is the sum of the four charges.
func (s Surcharges) Extra() decimal.Decimal {
	return s.Cutout.Add(s.Hole).Add(s.Handle).Add(s.Jumbo)
}

func parseCharge(field, raw string) (decimal.Decimal, error) {
	v, err := parseAmount(field, raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if v.IsNegative() {
		return decimal.Decimal{}, apperror.Validation(field, "invalid_"+field)
	}
	return v, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperror.Validation(field, "invalid_"+field)
	}
	return v, nil
}

// Totals satisfy GrandTotal = Subtotal + ExtraTotal + RoundOff.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	ExtraTotal decimal.Decimal `json:"extra_total"`
	RoundOff   decimal.Decimal `json:"round_off"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// ComputeTotals folds line amounts and surcharges. It reads its inputs only.
func ComputeTotals(lines []LineItem, surcharges Surcharges) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Amount)
	}
	extra := surcharges.Extra()
	return Totals{
		Subtotal:   subtotal,
		ExtraTotal: extra,
		RoundOff:   surcharges.RoundOff,
		GrandTotal: subtotal.Add(extra).Add(surcharges.RoundOff),
	}
}
