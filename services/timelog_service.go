package services

import (
	"errors"
	"strings"
	"time"

	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLogDate  = errors.New("log date must be YYYY-MM-DD")
	ErrInvalidLogHours = errors.New("hours spent must be a positive number")
)

type TimeLogService struct {
	Repos *repositories.Repos
}

func NewTimeLogService(repos *repositories.Repos) *TimeLogService {
	return &TimeLogService{
		Repos: repos,
	}
}

// LogTime appends one entry. Entries are never merged; daily totals are
// summed wherever they are read.
func (s *TimeLogService) LogTime(userID uint, input dto.CreateTimeLogDTO) (models.TimeLogEntry, error) {
	logDate, err := time.Parse("2006-01-02", strings.TrimSpace(input.LogDate))
	if err != nil {
		return models.TimeLogEntry{}, ErrInvalidLogDate
	}
	hours, err := decimal.NewFromString(strings.TrimSpace(input.HoursSpent))
	if err != nil || hours.LessThanOrEqual(decimal.Zero) {
		return models.TimeLogEntry{}, ErrInvalidLogHours
	}
	if input.ProjectID != nil {
		if _, err := s.Repos.Project.GetProjectByID(*input.ProjectID); err != nil {
			return models.TimeLogEntry{}, ErrProjectNotFound
		}
	}

	entry := models.TimeLogEntry{
		UserID:     userID,
		ProjectID:  input.ProjectID,
		LogDate:    logDate,
		HoursSpent: hours,
		Utilized:   input.Utilized,
	}
	if err := s.Repos.TimeLog.CreateEntry(&entry); err != nil {
		return models.TimeLogEntry{}, err
	}
	return entry, nil
}

func (s *TimeLogService) ListByUserAndDate(userID uint, date time.Time) ([]models.TimeLogEntry, error) {
	return s.Repos.TimeLog.ListByUserAndDate(userID, date)
}
