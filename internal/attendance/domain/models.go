package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Worker struct {
	ID        snowflake.ID    `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	Phone     string          `json:"phone"`
	DailyWage decimal.Decimal `json:"daily_wage" gorm:"type:varchar(64);not null"`
	Active    bool            `json:"active" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

func (Worker) TableName() string { return "workers" }

type Attendance struct {
	ID             snowflake.ID   `json:"id" gorm:"primaryKey"`
	WorkerID       snowflake.ID   `json:"worker_id" gorm:"not null"`
	AttendanceDate datatypes.Date `json:"attendance_date" gorm:"not null"`
	Morning        bool           `json:"morning" gorm:"not null"`
	Afternoon      bool           `json:"afternoon" gorm:"not null"`
	Notes          string         `json:"notes"`
	CreatedAt      time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"not null"`
}

func (Attendance) TableName() string { return "attendance" }

// Halves counts the half-days marked present.
func (a Attendance) Halves() int {
	n := 0
	if a.Morning {
		n++
	}
	if a.Afternoon {
		n++
	}
	return n
}

// DayRow is one worker's line on the daily register. Marked is false
// when no row exists yet for the date.
type DayRow struct {
	Worker     Worker     `json:"worker"`
	Attendance Attendance `json:"attendance"`
	Marked     bool       `json:"marked"`
}

type MonthlyRow struct {
	WorkerID   snowflake.ID    `json:"worker_id"`
	WorkerName string          `json:"worker_name"`
	HalfDays   int             `json:"half_days"`
	Days       decimal.Decimal `json:"days"`
	DailyWage  decimal.Decimal `json:"daily_wage"`
	WageDue    decimal.Decimal `json:"wage_due"`
}

type MonthlySummary struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Rows    []MonthlyRow    `json:"rows"`
	WageDue decimal.Decimal `json:"wage_due"`
}
