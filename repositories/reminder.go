package repositories

import (
	"time"

	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/models"
)

type ReminderLogRepo interface {
	Create(rl *models.ReminderLog) error
	SentUserIDs(date time.Time) (map[uint]bool, error)
}

type DBReminderLogRepo struct{}

func (r *DBReminderLogRepo) Create(rl *models.ReminderLog) error {
	return db.DB.Create(rl).Error
}

// SentUserIDs returns the users who already received a reminder for the
// given date.
func (r *DBReminderLogRepo) SentUserIDs(date time.Time) (map[uint]bool, error) {
	var ids []uint
	err := db.DB.Model(&models.ReminderLog{}).
		Where("date = ?", date.Format("2006-01-02")).
		Pluck("u_id", &ids).Error
	if err != nil {
		return nil, err
	}
	sent := make(map[uint]bool, len(ids))
	for _, id := range ids {
		sent[id] = true
	}
	return sent, nil
}
