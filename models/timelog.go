package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLogEntry is one chunk of actual hours a user logged on a date.
// ProjectID is nil for bench/off-prod time. Entries are append-only;
// multiple entries per user per day are summed wherever they are read.
type TimeLogEntry struct {
	TID        uint            `gorm:"primaryKey;column:t_id" json:"t_id"`
	UserID     uint            `gorm:"not null;index;column:u_id" json:"u_id"`
	ProjectID  *uint           `gorm:"index;column:p_id" json:"p_id,omitempty"`
	LogDate    time.Time       `gorm:"not null;type:date;index;column:log_date" json:"log_date"`
	HoursSpent decimal.Decimal `gorm:"type:DECIMAL(10,2);not null;column:hours_spent" json:"hours_spent"`
	Utilized   bool            `gorm:"default:false" json:"utilized"`
	CreatedAt  time.Time       `gorm:"column:create_at" json:"create_at"`
}

// UserDayHours is the per-user aggregate for one calendar date.
type UserDayHours struct {
	UserID     uint            `gorm:"column:user_id" json:"u_id"`
	Username   string          `gorm:"column:username" json:"username"`
	FullName   string          `gorm:"column:full_name" json:"full_name"`
	TotalHours decimal.Decimal `gorm:"column:total_hours" json:"total_hours"`
}
