package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one applied change. Rows are append-only; one row is
// written per accepted allocation edit, with BatchID linking the rows
// applied by a single bulk call.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index;column:u_id" json:"u_id"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:100" json:"resource_id"`
	BatchID      string         `gorm:"size:36;index" json:"batch_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	Description  string         `gorm:"type:text" json:"description"`
	IPAddress    string         `gorm:"size:45" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	CreatedAt    time.Time      `gorm:"column:create_at;index" json:"create_at"`
}
