package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          snowflake.ID    `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Type        string          `json:"type" gorm:"not null"`
	RatePerSqft decimal.Decimal `json:"rate_per_sqft" gorm:"column:rate_per_sqft;type:varchar(64);not null"`
	Active      bool            `json:"active" gorm:"not null;default:true"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"not null"`
}

func (Product) TableName() string { return "products" }

// Label is the glass description printed on works and invoices,
// e.g. "Clear Glass (Toughened 8mm)".
func (p Product) Label() string {
	if p.Type == "" {
		return p.Name
	}
	return p.Name + " (" + p.Type + ")"
}
