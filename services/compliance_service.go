package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pmhours/pmhours-go/config"
	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/shopspring/decimal"
)

// FieldValidationError names the settings field that failed so the
// caller can point at it. Stored settings are untouched when one is
// returned.
type FieldValidationError struct {
	Field   string
	Message string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ComplianceService struct {
	Repos *repositories.Repos
}

func NewComplianceService(repos *repositories.Repos) *ComplianceService {
	return &ComplianceService{
		Repos: repos,
	}
}

// GetReport partitions active users into compliant and non-compliant
// sets for one calendar date. It is a read; sending reminders is the
// dispatcher's job.
func (s *ComplianceService) GetReport(date time.Time) (dto.ComplianceReport, error) {
	settings, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return dto.ComplianceReport{}, err
	}

	totals, err := s.Repos.TimeLog.SumHoursByDate(date, config.ComplianceExcludedRoles)
	if err != nil {
		return dto.ComplianceReport{}, err
	}

	sent, err := s.Repos.Reminder.SentUserIDs(date)
	if err != nil {
		return dto.ComplianceReport{}, err
	}

	report := dto.ComplianceReport{
		Date:         date.Format("2006-01-02"),
		MinimumHours: settings.MinimumHours,
		Compliant:    []dto.ComplianceUserSummary{},
		NonCompliant: []dto.ComplianceUserSummary{},
	}

	for _, row := range totals {
		summary := dto.ComplianceUserSummary{
			UserID:       row.UserID,
			Username:     row.Username,
			FullName:     row.FullName,
			TotalHours:   row.TotalHours,
			ReminderSent: sent[row.UserID],
		}
		if row.TotalHours.GreaterThanOrEqual(settings.MinimumHours) {
			report.Compliant = append(report.Compliant, summary)
		} else {
			shortfall := settings.MinimumHours.Sub(row.TotalHours)
			summary.Shortfall = &shortfall
			report.NonCompliant = append(report.NonCompliant, summary)
		}
	}

	total := len(totals)
	report.Summary = dto.ComplianceSummary{
		Total:             total,
		CompliantCount:    len(report.Compliant),
		NonCompliantCount: len(report.NonCompliant),
	}
	if total > 0 {
		report.Summary.ComplianceRate = int(math.Round(float64(len(report.Compliant)) / float64(total) * 100))
	}

	return report, nil
}

func (s *ComplianceService) GetSettings() (models.ComplianceSettings, error) {
	return s.Repos.Settings.GetSettings()
}

// UpdateSettings validates field by field and replaces the stored row
// atomically on success.
func (s *ComplianceService) UpdateSettings(input dto.UpdateComplianceSettingsDTO) (models.ComplianceSettings, error) {
	minimum, err := decimal.NewFromString(strings.TrimSpace(input.MinimumHours))
	if err != nil {
		return models.ComplianceSettings{}, &FieldValidationError{Field: "minimum_hours", Message: "must be a number"}
	}
	if minimum.LessThanOrEqual(decimal.Zero) {
		return models.ComplianceSettings{}, &FieldValidationError{Field: "minimum_hours", Message: "must be greater than zero"}
	}

	reminderTime := strings.TrimSpace(input.ReminderTime)
	if _, err := time.Parse("15:04", reminderTime); err != nil {
		return models.ComplianceSettings{}, &FieldValidationError{Field: "reminder_time", Message: "must be a valid HH:MM time of day"}
	}

	message := strings.TrimSpace(input.NotificationMessage)
	if input.Enabled && message == "" {
		return models.ComplianceSettings{}, &FieldValidationError{Field: "notification_message", Message: "required when reminders are enabled"}
	}

	settings := models.ComplianceSettings{
		MinimumHours:        minimum,
		ReminderTime:        reminderTime,
		NotificationMessage: message,
		Enabled:             input.Enabled,
	}
	if err := s.Repos.Settings.UpdateSettings(settings); err != nil {
		return models.ComplianceSettings{}, err
	}
	return s.Repos.Settings.GetSettings()
}
