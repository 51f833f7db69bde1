//go:build integration
// +build integration

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/services"
)

func TestComplianceReport(t *testing.T) {
	resetTables(t)

	seedUser(t, "admin", "admin") // excluded from the scan
	alice := seedUser(t, "alice", "tester")
	bob := seedUser(t, "bob", "tester")
	carol := seedUser(t, "carol", "qa_lead")
	project := seedProject(t, "atlas", "100")

	date := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	// Multiple entries per day are summed; carol logs nothing at all.
	logEntry := func(userID uint, hours string, withProject bool) {
		input := dto.CreateTimeLogDTO{LogDate: "2026-08-28", HoursSpent: hours}
		if withProject {
			input.ProjectID = &project.PID
			input.Utilized = true
		}
		_, err := testSvcs.TimeLog.LogTime(userID, input)
		require.NoError(t, err)
	}
	logEntry(alice.UID, "4", true)
	logEntry(alice.UID, "4.5", false)
	logEntry(bob.UID, "5", true)

	report, err := testSvcs.Compliance.GetReport(date)
	require.NoError(t, err)

	// Defaults apply on first read: minimum 8 hours.
	assert.True(t, report.MinimumHours.Equal(dec(t, "8")))

	require.Len(t, report.Compliant, 1)
	assert.Equal(t, "alice", report.Compliant[0].Username)
	assert.True(t, report.Compliant[0].TotalHours.Equal(dec(t, "8.5")))

	require.Len(t, report.NonCompliant, 2)
	byName := map[string]dto.ComplianceUserSummary{}
	for _, s := range report.NonCompliant {
		byName[s.Username] = s
	}
	require.NotNil(t, byName["bob"].Shortfall)
	assert.True(t, byName["bob"].Shortfall.Equal(dec(t, "3")))
	require.NotNil(t, byName["carol"].Shortfall)
	assert.True(t, byName["carol"].Shortfall.Equal(dec(t, "8")))

	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 33, report.Summary.ComplianceRate)

	// A recorded reminder shows up on the next read.
	require.NoError(t, testRepos.Reminder.Create(&models.ReminderLog{
		UserID: bob.UID,
		Date:   date,
		SentAt: time.Now(),
	}))
	report, err = testSvcs.Compliance.GetReport(date)
	require.NoError(t, err)
	for _, s := range report.NonCompliant {
		if s.UserID == bob.UID {
			assert.True(t, s.ReminderSent)
		}
		if s.UserID == carol.UID {
			assert.False(t, s.ReminderSent)
		}
	}
}

func TestComplianceSettingsRoundTrip(t *testing.T) {
	resetTables(t)

	settings, err := testSvcs.Compliance.GetSettings()
	require.NoError(t, err)
	assert.True(t, settings.MinimumHours.Equal(dec(t, "8")))
	assert.Equal(t, "18:00", settings.ReminderTime)
	assert.True(t, settings.Enabled)

	updated, err := testSvcs.Compliance.UpdateSettings(dto.UpdateComplianceSettingsDTO{
		MinimumHours:        "6.5",
		ReminderTime:        "17:30",
		NotificationMessage: "please log your hours",
		Enabled:             true,
	})
	require.NoError(t, err)
	assert.True(t, updated.MinimumHours.Equal(dec(t, "6.5")))

	// A rejected update leaves the stored row untouched.
	_, err = testSvcs.Compliance.UpdateSettings(dto.UpdateComplianceSettingsDTO{
		MinimumHours:        "0",
		ReminderTime:        "17:30",
		NotificationMessage: "please log your hours",
		Enabled:             true,
	})
	var fieldErr *services.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "minimum_hours", fieldErr.Field)

	settings, err = testSvcs.Compliance.GetSettings()
	require.NoError(t, err)
	assert.True(t, settings.MinimumHours.Equal(dec(t, "6.5")))
	assert.Equal(t, "17:30", settings.ReminderTime)
}
