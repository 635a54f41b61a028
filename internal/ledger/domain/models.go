package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductionEntry is one line of the daily production register.
type ProductionEntry struct {
	ID           snowflake.ID    `json:"id" gorm:"primaryKey"`
	EntryDate    datatypes.Date  `json:"entry_date" gorm:"not null;index"`
	CustomerName string          `json:"customer_name"`
	GlassType    string          `json:"glass_type" gorm:"not null"`
	ThicknessMM  string          `json:"thickness_mm" gorm:"column:thickness_mm"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	AreaSqft     decimal.Decimal `json:"area_sqft" gorm:"type:varchar(64);not null"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at" gorm:"not null"`
}

// TableName sets the database table name.
func (ProductionEntry) TableName() string { return "production_entries" }

// DailyTotal sums one day of the register.
type DailyTotal struct {
	Date     time.Time       `json:"date"`
	Entries  int             `json:"entries"`
	Quantity int64           `json:"quantity"`
	AreaSqft decimal.Decimal `json:"area_sqft"`
}

// Report is a date range of the register with its totals, the shape
// both the PDF and the spreadsheet export render.
type Report struct {
	From     time.Time         `json:"from"`
	To       time.Time         `json:"to"`
	Entries  []ProductionEntry `json:"entries"`
	Days     []DailyTotal      `json:"days"`
	Quantity int64             `json:"quantity"`
	AreaSqft decimal.Decimal   `json:"area_sqft"`
}
