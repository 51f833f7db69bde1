package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusInactive ProjectStatus = "inactive"
)

type Project struct {
	PID        uint            `gorm:"primaryKey;column:p_id" json:"p_id"`
	Title      string          `gorm:"size:100;not null" json:"title"`
	TotalHours decimal.Decimal `gorm:"type:DECIMAL(10,2);not null;column:total_hours" json:"total_hours"`
	Status     string          `gorm:"size:20;default:'active';not null" json:"status"`
	CreatedAt  time.Time       `gorm:"column:create_at" json:"create_at"`
	UpdatedAt  time.Time       `gorm:"column:update_at" json:"update_at"`
}
