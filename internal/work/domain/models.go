package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// ParseStatus accepts either status case-insensitively.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Work struct {
	ID        snowflake.ID   `json:"id" gorm:"primaryKey"`
	InvoiceID *snowflake.ID  `json:"invoice_id,omitempty"`
	WorkDate  datatypes.Date `json:"work_date" gorm:"not null"`
	GlassType string         `json:"glass_type" gorm:"not null"`
	Size      string         `json:"size" gorm:"not null"`
	Quantity  int            `json:"quantity" gorm:"not null"`
	Status    Status         `json:"status" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"not null"`
}

func (Work) TableName() string { return "works" }
