package repositories

import (
	"errors"

	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// settingsRowID pins the singleton compliance settings row.
const settingsRowID uint = 1

type SettingsRepo interface {
	GetSettings() (models.ComplianceSettings, error)
	UpdateSettings(s models.ComplianceSettings) error
}

type DBSettingsRepo struct{}

// GetSettings returns the singleton row, creating it with defaults on
// first use.
func (r *DBSettingsRepo) GetSettings() (models.ComplianceSettings, error) {
	var settings models.ComplianceSettings
	err := db.DB.First(&settings, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.ComplianceSettings{
			ID:                  settingsRowID,
			MinimumHours:        decimal.NewFromInt(8),
			ReminderTime:        "18:00",
			NotificationMessage: "You have not logged the minimum required hours for today.",
			Enabled:             true,
		}
		if err := db.DB.Create(&settings).Error; err != nil {
			return models.ComplianceSettings{}, err
		}
		return settings, nil
	}
	return settings, err
}

// UpdateSettings replaces the whole row in one statement so concurrent
// readers never observe a partial update.
func (r *DBSettingsRepo) UpdateSettings(s models.ComplianceSettings) error {
	s.ID = settingsRowID
	return db.DB.Save(&s).Error
}
