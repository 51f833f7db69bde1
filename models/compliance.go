package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComplianceSettings is a single logical row (ID is always 1). It is
// created with defaults on first read and only replaced wholesale by the
// settings-update path.
type ComplianceSettings struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	MinimumHours        decimal.Decimal `gorm:"type:DECIMAL(10,2);not null;column:minimum_hours" json:"minimum_hours"`
	ReminderTime        string          `gorm:"size:5;not null;column:reminder_time" json:"reminder_time"`
	NotificationMessage string          `gorm:"type:text;column:notification_message" json:"notification_message"`
	Enabled             bool            `gorm:"default:true" json:"enabled"`
	UpdatedAt           time.Time       `gorm:"column:update_at" json:"update_at"`
}

// ReminderLog marks that a reminder went out to a user for a date. The
// dispatcher writes it, the compliance report reads it back.
type ReminderLog struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;index;column:u_id" json:"u_id"`
	Date   time.Time `gorm:"not null;type:date;index" json:"date"`
	SentAt time.Time `gorm:"column:sent_at" json:"sent_at"`
}
