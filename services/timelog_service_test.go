package services_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/pmhours/pmhours-go/repositories/mock_repositories"
	"github.com/pmhours/pmhours-go/services"
	"gorm.io/gorm"
)

func setupTimeLogMocks(t *testing.T) (*services.TimeLogService,
	*mock_repositories.MockTimeLogRepo,
	*mock_repositories.MockProjectRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTimeLog := mock_repositories.NewMockTimeLogRepo(ctrl)
	mockProject := mock_repositories.NewMockProjectRepo(ctrl)

	repos := &repositories.Repos{
		TimeLog: mockTimeLog,
		Project: mockProject,
	}

	return services.NewTimeLogService(repos), mockTimeLog, mockProject
}

func TestLogTime(t *testing.T) {
	t.Run("malformed date", func(t *testing.T) {
		svc, _, _ := setupTimeLogMocks(t)

		_, err := svc.LogTime(1, dto.CreateTimeLogDTO{LogDate: "28/08/2026", HoursSpent: "4"})
		if !errors.Is(err, services.ErrInvalidLogDate) {
			t.Fatalf("expected ErrInvalidLogDate, got %v", err)
		}
	})

	t.Run("zero hours", func(t *testing.T) {
		svc, _, _ := setupTimeLogMocks(t)

		_, err := svc.LogTime(1, dto.CreateTimeLogDTO{LogDate: "2026-08-28", HoursSpent: "0"})
		if !errors.Is(err, services.ErrInvalidLogHours) {
			t.Fatalf("expected ErrInvalidLogHours, got %v", err)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		svc, _, mockProject := setupTimeLogMocks(t)

		pid := uint(9)
		mockProject.EXPECT().GetProjectByID(pid).Return(models.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.LogTime(1, dto.CreateTimeLogDTO{LogDate: "2026-08-28", HoursSpent: "4", ProjectID: &pid})
		if !errors.Is(err, services.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("creates an entry", func(t *testing.T) {
		svc, mockTimeLog, mockProject := setupTimeLogMocks(t)

		pid := uint(3)
		mockProject.EXPECT().GetProjectByID(pid).Return(models.Project{PID: pid}, nil)
		mockTimeLog.EXPECT().CreateEntry(gomock.Any()).DoAndReturn(func(e *models.TimeLogEntry) error {
			e.TID = 11
			return nil
		})

		entry, err := svc.LogTime(7, dto.CreateTimeLogDTO{LogDate: "2026-08-28", HoursSpent: "4.5", ProjectID: &pid, Utilized: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.TID != 11 || entry.UserID != 7 || !entry.HoursSpent.Equal(dec("4.5")) {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	})
}
