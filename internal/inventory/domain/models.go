package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Direction string

const (
	DirectionIn  Direction = "stock_in"
	DirectionOut Direction = "stock_out"
)

func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

type Movement struct {
	ID           snowflake.ID   `json:"id" gorm:"primaryKey"`
	ProductID    snowflake.ID   `json:"product_id" gorm:"not null"`
	InvoiceID    *snowflake.ID  `json:"invoice_id,omitempty"`
	MovementDate datatypes.Date `json:"movement_date" gorm:"not null"`
	Direction    Direction      `json:"direction" gorm:"not null"`
	Quantity     int            `json:"quantity" gorm:"not null"`
	Notes        string         `json:"notes" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at" gorm:"not null"`
}

func (Movement) TableName() string { return "inventory_movements" }

// Signed is the movement's effect on the stock level.
func (m Movement) Signed() int64 {
	if m.Direction == DirectionOut {
		return -int64(m.Quantity)
	}
	return int64(m.Quantity)
}

// StockLevel is the running balance of one product.
type StockLevel struct {
	ProductID   snowflake.ID `json:"product_id"`
	ProductName string       `json:"product_name"`
	StockIn     int64        `json:"stock_in"`
	StockOut    int64        `json:"stock_out"`
	Level       int64        `json:"level"`
}
