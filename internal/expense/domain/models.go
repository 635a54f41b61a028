package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Category string

const (
	CategoryMaterial    Category = "Material"
	CategorySalary      Category = "Salary"
	CategoryElectricity Category = "Electricity"
	CategoryRent        Category = "Rent"
	CategoryTransport   Category = "Transport"
	CategoryMaintenance Category = "Maintenance"
	CategoryOther       Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryMaterial,
	CategorySalary,
	CategoryElectricity,
	CategoryRent,
	CategoryTransport,
	CategoryMaintenance,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(raw string) (Category, error) {
	raw = strings.TrimSpace(raw)
	for _, known := range Categories {
		if strings.EqualFold(raw, string(known)) {
			return known, nil
		}
	}
	return "", ErrInvalidCategory
}

type Expense struct {
	ID          snowflake.ID    `json:"id" gorm:"primaryKey"`
	ExpenseDate datatypes.Date  `json:"expense_date" gorm:"not null"`
	Category    Category        `json:"category" gorm:"not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:varchar(64);not null"`
	Description string          `json:"description"`
	PaymentMode string          `json:"payment_mode"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null"`
}

func (Expense) TableName() string { return "expenses" }

type CategoryTotal struct {
	Category Category        `json:"category"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

type Summary struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Categories []CategoryTotal `json:"categories"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
