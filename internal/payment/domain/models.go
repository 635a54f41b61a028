package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Mode is how the customer paid.
type Mode string

const (
	ModeCash         Mode = "Cash"
	ModeUPI          Mode = "UPI"
	ModeCard         Mode = "Card"
	ModeCheque       Mode = "Cheque"
	ModeBankTransfer Mode = "Bank Transfer"
	ModePPay         Mode = "P-PAY"
)

var Modes = []Mode{ModeCash, ModeUPI, ModeCard, ModeCheque, ModeBankTransfer, ModePPay}

// ParseMode matches raw against the known modes ignoring case and
// surrounding space. Blank input yields the empty mode, meaning unpaid.
func ParseMode(raw string) (Mode, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, m := range Modes {
		if strings.EqualFold(raw, string(m)) {
			return m, nil
		}
	}
	return "", ErrInvalidMode
}

func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

type Payment struct {
	ID          snowflake.ID    `json:"id" gorm:"primaryKey"`
	CustomerID  snowflake.ID    `json:"customer_id" gorm:"not null"`
	InvoiceID   *snowflake.ID   `json:"invoice_id,omitempty"`
	PaymentDate datatypes.Date  `json:"payment_date" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:varchar(64);not null"`
	Mode        Mode            `json:"mode" gorm:"not null"`
	Reference   string          `json:"reference" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null"`
}

func (Payment) TableName() string { return "payments" }

// Balance is what a customer has been billed against what they have paid.
type Balance struct {
	CustomerID   snowflake.ID    `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Invoiced     decimal.Decimal `json:"invoiced"`
	Paid         decimal.Decimal `json:"paid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// AmountRow is one (customer, amount) pair read for balance aggregation.
type AmountRow struct {
	CustomerID snowflake.ID
	Amount     decimal.Decimal
}
