package repositories

import (
	"time"

	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/models"
)

type TimeLogRepo interface {
	CreateEntry(e *models.TimeLogEntry) error
	ListByUserAndDate(userID uint, date time.Time) ([]models.TimeLogEntry, error)
	SumHoursByDate(date time.Time, excludedRoles []string) ([]models.UserDayHours, error)
}

type DBTimeLogRepo struct{}

func (r *DBTimeLogRepo) CreateEntry(e *models.TimeLogEntry) error {
	return db.DB.Create(e).Error
}

func (r *DBTimeLogRepo) ListByUserAndDate(userID uint, date time.Time) ([]models.TimeLogEntry, error) {
	var entries []models.TimeLogEntry
	err := db.DB.Where("u_id = ? AND log_date = ?", userID, date.Format("2006-01-02")).
		Order("t_id").Find(&entries).Error
	return entries, err
}

// SumHoursByDate aggregates logged hours per active user for one calendar
// date. Users without entries appear with a zero total so the compliance
// scan sees them.
func (r *DBTimeLogRepo) SumHoursByDate(date time.Time, excludedRoles []string) ([]models.UserDayHours, error) {
	var rows []models.UserDayHours
	err := db.DB.Raw(`
		SELECT u.u_id AS user_id,
		       u.username,
		       COALESCE(u.full_name, '') AS full_name,
		       COALESCE(SUM(t.hours_spent), 0) AS total_hours
		FROM users u
		LEFT JOIN time_log_entries t
		       ON t.u_id = u.u_id AND t.log_date = ?
		WHERE u.status = ? AND u.role NOT IN ?
		GROUP BY u.u_id, u.username, u.full_name
		ORDER BY u.u_id`,
		date.Format("2006-01-02"), models.UserStatusActive, excludedRoles).
		Scan(&rows).Error
	return rows, err
}
