package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AllocationRole string

const (
	AllocationRoleLead   AllocationRole = "lead"
	AllocationRoleQALead AllocationRole = "qa_lead"
	AllocationRoleTester AllocationRole = "tester"
)

// Allocation is the budgeted-hours assignment of one user to one project.
// For a fixed project the sum of HoursAllocated across rows must never
// exceed the project's total_hours budget.
type Allocation struct {
	AID            uint            `gorm:"primaryKey;column:a_id" json:"a_id"`
	UserID         uint            `gorm:"not null;index;column:u_id" json:"u_id"`
	ProjectID      uint            `gorm:"not null;index;column:p_id" json:"p_id"`
	Role           string          `gorm:"size:20;default:'tester';not null" json:"role"`
	HoursAllocated decimal.Decimal `gorm:"type:DECIMAL(10,2);not null;column:hours_allocated" json:"hours_allocated"`
	CreatedAt      time.Time       `gorm:"column:create_at" json:"create_at"`
	UpdatedAt      time.Time       `gorm:"column:update_at" json:"update_at"`
}

// AllocationRow is the bulk-edit listing shape: an allocation joined with
// its user's name and the hours already utilized against it.
type AllocationRow struct {
	AID            uint            `gorm:"column:a_id" json:"a_id"`
	UserID         uint            `gorm:"column:u_id" json:"u_id"`
	Username       string          `gorm:"column:username" json:"username"`
	FullName       string          `gorm:"column:full_name" json:"full_name"`
	Role           string          `gorm:"column:role" json:"role"`
	HoursAllocated decimal.Decimal `gorm:"column:hours_allocated" json:"hours_allocated"`
	UtilizedHours  decimal.Decimal `gorm:"column:utilized_hours" json:"utilized_hours"`
	RemainingHours decimal.Decimal `gorm:"-" json:"remaining_hours"`
}
