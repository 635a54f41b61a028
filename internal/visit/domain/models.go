package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PurposeBilling is recorded for the visit logged by every committed invoice.
const PurposeBilling = "Billing"

type Visit struct {
	ID          snowflake.ID  `json:"id" gorm:"primaryKey"`
	CustomerID  *snowflake.ID `json:"customer_id,omitempty"`
	InvoiceID   *snowflake.ID `json:"invoice_id,omitempty"`
	DisplayName string        `json:"display_name" gorm:"not null"`
	City        string        `json:"city"`
	Purpose     string        `json:"purpose" gorm:"not null"`
	VisitedAt   time.Time     `json:"visited_at" gorm:"not null"`
}

func (Visit) TableName() string { return "visits" }

// WalkIn reports whether the visitor is not a registered customer.
func (v Visit) WalkIn() bool {
	return v.CustomerID == nil
}
