// Package domain contains the invoice models, the pricing arithmetic and the
// draft an invoice is built in before it is committed.
package domain

import (
	"time"

	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice represents a committed invoice. It is never updated after commit.
type Invoice struct {
	ID               snowflake.ID       `json:"id" gorm:"primaryKey"`
	InvoiceNumber    string             `json:"invoice_number" gorm:"not null;uniqueIndex"`
	CustomerID       snowflake.ID       `json:"customer_id" gorm:"not null;index"`
	InvoiceDate      datatypes.Date     `json:"invoice_date" gorm:"not null"`
	Subtotal         decimal.Decimal    `json:"subtotal" gorm:"type:varchar(64);not null"`
	CutoutCharge     decimal.Decimal    `json:"cutout_charge" gorm:"type:varchar(64);not null"`
	HoleCharge       decimal.Decimal    `json:"hole_charge" gorm:"type:varchar(64);not null"`
	HandleCharge     decimal.Decimal    `json:"handle_charge" gorm:"type:varchar(64);not null"`
	JumboCharge      decimal.Decimal    `json:"jumbo_charge" gorm:"type:varchar(64);not null"`
	ExtraTotal       decimal.Decimal    `json:"extra_total" gorm:"type:varchar(64);not null"`
	RoundOff         decimal.Decimal    `json:"round_off" gorm:"type:varchar(64);not null"`
	GrandTotal       decimal.Decimal    `json:"grand_total" gorm:"type:varchar(64);not null"`
	PaymentMode      paymentdomain.Mode `json:"payment_mode"`
	PaymentReference string             `json:"payment_reference"`
	CreatedAt        time.Time          `json:"created_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// Surcharges returns the extra charges and round off the invoice was committed with.
func (i Invoice) Surcharges() Surcharges {
	return Surcharges{
		Cutout:   i.CutoutCharge,
		Hole:     i.HoleCharge,
		Handle:   i.HandleCharge,
		Jumbo:    i.JumboCharge,
		RoundOff: i.RoundOff,
	}
}

// InvoiceItem is a persisted line. Product name and type are copied at
// commit so later catalog edits do not change old invoices.
type InvoiceItem struct {
	ID               snowflake.ID    `json:"id" gorm:"primaryKey"`
	InvoiceID        snowflake.ID    `json:"invoice_id" gorm:"not null;index"`
	LineNo           int             `json:"line_no" gorm:"not null"`
	ProductID        snowflake.ID    `json:"product_id" gorm:"not null"`
	ProductName      string          `json:"product_name" gorm:"not null"`
	ProductType      string          `json:"product_type"`
	ActualHeight     decimal.Decimal `json:"actual_height" gorm:"type:varchar(64);not null"`
	ActualWidth      decimal.Decimal `json:"actual_width" gorm:"type:varchar(64);not null"`
	ChargeableHeight decimal.Decimal `json:"chargeable_height" gorm:"type:varchar(64);not null"`
	ChargeableWidth  decimal.Decimal `json:"chargeable_width" gorm:"type:varchar(64);not null"`
	AreaSqft         decimal.Decimal `json:"area_sqft" gorm:"column:area_sqft;type:varchar(64);not null"`
	Rate             decimal.Decimal `json:"rate" gorm:"type:varchar(64);not null"`
	Quantity         int             `json:"quantity" gorm:"not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:varchar(64);not null"`
	CreatedAt        time.Time       `json:"created_at" gorm:"not null"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }

// Dimensions rebuilds the measured and billed sizes of the line.
func (i InvoiceItem) Dimensions() Dimensions {
	return Dimensions{
		ActualHeight:     i.ActualHeight,
		ActualWidth:      i.ActualWidth,
		ChargeableHeight: i.ChargeableHeight,
		ChargeableWidth:  i.ChargeableWidth,
	}
}

// DisplayArea is the area rounded for printing.
func (i InvoiceItem) DisplayArea() decimal.Decimal {
	return i.AreaSqft.Round(AreaDisplayPlaces)
}

// Detail is an invoice with its lines in line order.
type Detail struct {
	Invoice Invoice       `json:"invoice"`
	Items   []InvoiceItem `json:"items"`
}

// CommitResult lists every row written by a commit.
type CommitResult struct {
	Invoice     Invoice        `json:"invoice"`
	Items       []InvoiceItem  `json:"items"`
	PaymentID   *snowflake.ID  `json:"payment_id,omitempty"`
	VisitID     snowflake.ID   `json:"visit_id"`
	WorkIDs     []snowflake.ID `json:"work_ids"`
	MovementIDs []snowflake.ID `json:"movement_ids"`
	NextNumber  string         `json:"next_number"`
}
