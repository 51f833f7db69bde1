package dto

import "github.com/shopspring/decimal"

type UpdateComplianceSettingsDTO struct {
	MinimumHours        string `json:"minimum_hours" binding:"required"`
	ReminderTime        string `json:"reminder_time" binding:"required"`
	NotificationMessage string `json:"notification_message"`
	Enabled             bool   `json:"enabled"`
}

// ComplianceUserSummary is one user's standing for the scanned date.
type ComplianceUserSummary struct {
	UserID       uint             `json:"u_id"`
	Username     string           `json:"username"`
	FullName     string           `json:"full_name"`
	TotalHours   decimal.Decimal  `json:"total_hours"`
	Shortfall    *decimal.Decimal `json:"shortfall,omitempty"`
	ReminderSent bool             `json:"reminder_sent"`
}

type ComplianceSummary struct {
	Total             int `json:"total"`
	CompliantCount    int `json:"compliant_count"`
	NonCompliantCount int `json:"non_compliant_count"`
	ComplianceRate    int `json:"compliance_rate"`
}

type ComplianceReport struct {
	Date         string                  `json:"date"`
	MinimumHours decimal.Decimal         `json:"minimum_hours"`
	Compliant    []ComplianceUserSummary `json:"compliant"`
	NonCompliant []ComplianceUserSummary `json:"non_compliant"`
	Summary      ComplianceSummary       `json:"summary"`
}
