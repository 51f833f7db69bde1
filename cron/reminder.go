package cron

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/pmhours/pmhours-go/services"
	"github.com/robfig/cron/v3"
)

// Notifier delivers one reminder. The real transport (mail, push) lives
// outside this service.
type Notifier interface {
	Notify(user dto.ComplianceUserSummary, message string) error
}

// ConsoleNotifier is the default stand-in transport.
type ConsoleNotifier struct{}

func (n *ConsoleNotifier) Notify(user dto.ComplianceUserSummary, message string) error {
	log.Printf("reminder to %s (u_id=%d): %s", user.Username, user.UserID, message)
	return nil
}

// StartReminderJob runs the compliance scan daily at the configured
// reminder time and dispatches reminders to non-compliant users who have
// not received one for the date yet. The cron entry is rebuilt on a
// resync ticker so settings edits take effect without a restart.
func StartReminderJob(compliance *services.ComplianceService, reminders repositories.ReminderLogRepo, notifier Notifier) {
	go func() {
		c := cron.New()
		var mu sync.Mutex
		var entryID cron.EntryID
		var currentSpec string

		syncSchedule := func() {
			mu.Lock()
			defer mu.Unlock()

			settings, err := compliance.GetSettings()
			if err != nil {
				log.Printf("reminder: load settings: %v", err)
				return
			}

			spec := ""
			if settings.Enabled {
				t, err := time.Parse("15:04", settings.ReminderTime)
				if err != nil {
					log.Printf("reminder: invalid reminder_time %q: %v", settings.ReminderTime, err)
					return
				}
				spec = fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour())
			}

			if spec == currentSpec {
				return
			}
			if entryID != 0 {
				c.Remove(entryID)
				entryID = 0
			}
			currentSpec = spec
			if spec == "" {
				log.Println("reminder: disabled")
				return
			}

			entryID, err = c.AddFunc(spec, func() {
				runOnce(compliance, reminders, notifier)
			})
			if err != nil {
				log.Printf("reminder: invalid cron spec %q: %v", spec, err)
				return
			}
			log.Printf("reminder: scheduled daily at %s", settings.ReminderTime)
		}

		syncSchedule()
		c.Start()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			syncSchedule()
		}
	}()
}

func runOnce(compliance *services.ComplianceService, reminders repositories.ReminderLogRepo, notifier Notifier) {
	today := time.Now()
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	report, err := compliance.GetReport(date)
	if err != nil {
		log.Printf("reminder: compliance scan: %v", err)
		return
	}

	settings, err := compliance.GetSettings()
	if err != nil {
		log.Printf("reminder: load settings: %v", err)
		return
	}

	for _, user := range report.NonCompliant {
		if user.ReminderSent {
			continue
		}
		if err := notifier.Notify(user, settings.NotificationMessage); err != nil {
			log.Printf("reminder: notify u_id=%d: %v", user.UserID, err)
			continue
		}
		rl := &models.ReminderLog{UserID: user.UserID, Date: date, SentAt: time.Now()}
		if err := reminders.Create(rl); err != nil {
			log.Printf("reminder: record u_id=%d: %v", user.UserID, err)
		}
	}
	log.Printf("reminder: scan for %s done, %d non-compliant", report.Date, len(report.NonCompliant))
}
