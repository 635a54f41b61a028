package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Customer struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Place     string       `gorm:"not null" json:"place"`
	Phone     string       `gorm:"not null" json:"phone"`
	TaxID     string       `gorm:"column:tax_id;not null" json:"tax_id"`
	Address   string       `gorm:"not null" json:"address"`
	Email     string       `gorm:"not null" json:"email"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

// City is what the visit log records for this customer.
func (c Customer) City() string {
	return c.Place
}
