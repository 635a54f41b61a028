package domain

import (
	"strconv"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/shopspring/decimal"
)

// SquareInchesPerSquareFoot converts inch dimensions to billable area.
var SquareInchesPerSquareFoot = decimal.NewFromInt(144)

// AreaDisplayPlaces is the precision area is printed with. Amounts use the
// unrounded area.
const AreaDisplayPlaces = 2

// Dimensions are in inches. The chargeable size may be rounded up from
// the measured one and is the only one priced.
type Dimensions struct {
	ActualHeight     decimal.Decimal `json:"actual_height"`
	ActualWidth      decimal.Decimal `json:"actual_width"`
	ChargeableHeight decimal.Decimal `json:"chargeable_height"`
	ChargeableWidth  decimal.Decimal `json:"chargeable_width"`
}

// SameSize returns dimensions billed at the measured size.
func SameSize(height, width decimal.Decimal) Dimensions {
	return Dimensions{
		ActualHeight:     height,
		ActualWidth:      width,
		ChargeableHeight: height,
		ChargeableWidth:  width,
	}
}

func (d Dimensions) Validate() error {
	if !d.ActualHeight.IsPositive() {
		return ErrInvalidActualHeight
	}
	if !d.ActualWidth.IsPositive() {
		return ErrInvalidActualWidth
	}
	if !d.ChargeableHeight.IsPositive() {
		return ErrInvalidChargeableHeight
	}
	if !d.ChargeableWidth.IsPositive() {
		return ErrInvalidChargeableWidth
	}
	return nil
}

// ChargeableSize is the size label written on works, e.g. "48 x 36".
func (d Dimensions) ChargeableSize() string {
	return d.ChargeableHeight.String() + " x " + d.ChargeableWidth.String()
}

// ActualSize is the measured size label.
func (d Dimensions) ActualSize() string {
	return d.ActualHeight.String() + " x " + d.ActualWidth.String()
}

// Quote is the priced result for one line.
type Quote struct {
	Area     decimal.Decimal `json:"area_sqft"`
	Rate     decimal.Decimal `json:"rate"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// DisplayArea is Area rounded for printing.
func (q Quote) DisplayArea() decimal.Decimal {
	return q.Area.Round(AreaDisplayPlaces)
}

// CalculateLine prices a line: area = (ch * cw) / 144 square feet and
// amount = area * rate * quantity, both kept at full precision.
func CalculateLine(dims Dimensions, rate decimal.Decimal, quantity int) (Quote, error) {
	if err := dims.Validate(); err != nil {
		return Quote{}, err
	}
	if !rate.IsPositive() {
		return Quote{}, ErrInvalidRate
	}
	if quantity <= 0 {
		return Quote{}, ErrInvalidQuantity
	}

	area := dims.ChargeableHeight.Mul(dims.ChargeableWidth).DivRound(SquareInchesPerSquareFoot, divisionPrecision)
	amount := area.Mul(rate).Mul(decimal.NewFromInt(int64(quantity)))
	return Quote{
		Area:     area,
		Rate:     rate,
		Quantity: quantity,
		Amount:   amount,
	}, nil
}

// divisionPrecision bounds the digits kept by the /144 division.
const divisionPrecision = 16

// ParseDimension reads a free-text measurement. Blank, non-numeric, zero
// and negative values fail with a validation error naming field.
func ParseDimension(field, raw string) (decimal.Decimal, error) {
	return parsePositive(field, raw)
}

// ParseRate reads a free-text rate per square foot.
func ParseRate(raw string) (decimal.Decimal, error) {
	return parsePositive("rate", raw)
}

// ParseQuantity reads a free-text pane count; it must be a positive integer.
func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

func parsePositive(field, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !v.IsPositive() {
		return decimal.Decimal{}, apperror.Validation(field, "invalid_"+field)
	}
	return v, nil
}
