package models

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleProjectLead UserRole = "project_lead"
	UserRoleQALead      UserRole = "qa_lead"
	UserRoleTester      UserRole = "tester"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	FullName  *string   `gorm:"size:50" json:"full_name,omitempty"`
	Role      string    `gorm:"size:20;default:'tester';not null" json:"role"`
	Status    string    `gorm:"size:20;default:'active';not null" json:"status"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
