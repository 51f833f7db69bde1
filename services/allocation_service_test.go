package services_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pmhours/pmhours-go/config"
	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/pmhours/pmhours-go/repositories/mock_repositories"
	"github.com/pmhours/pmhours-go/services"
)

func setupAllocationMocks(t *testing.T) (*services.AllocationService,
	*mock_repositories.MockAllocationRepo,
	*mock_repositories.MockProjectRepo,
	*mock_repositories.MockUserRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAllocation := mock_repositories.NewMockAllocationRepo(ctrl)
	mockProject := mock_repositories.NewMockProjectRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)

	repos := &repositories.Repos{
		Allocation: mockAllocation,
		Project:    mockProject,
		User:       mockUser,
	}

	svc := services.NewAllocationService(repos)

	config.BulkUpdateMaxRows = 200

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("PUT", "/allocations/bulk", nil)

	return svc, mockAllocation, mockProject, mockUser, c
}

func TestValidateProposed(t *testing.T) {
	svc, mockAllocation, mockProject, _, _ := setupAllocationMocks(t)

	t.Run("ceiling excludes own current value", func(t *testing.T) {
		mockAllocation.EXPECT().GetAllocationByID(uint(1)).
			Return(models.Allocation{AID: 1, UserID: 10, ProjectID: 5, HoursAllocated: dec("40")}, nil)
		mockProject.EXPECT().GetProjectByID(uint(5)).
			Return(models.Project{PID: 5, Title: "website", TotalHours: dec("100")}, nil)
		mockAllocation.EXPECT().SumOtherAllocations(uint(5), uint(1)).Return(dec("30"), nil)

		v, err := svc.ValidateProposed(1, "70")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Valid {
			t.Fatal("expected valid")
		}
		if !v.MaxAllowed.Equal(dec("70")) {
			t.Fatalf("expected max 70, got %s", v.MaxAllowed)
		}
	})

	t.Run("non-numeric proposed", func(t *testing.T) {
		_, err := svc.ValidateProposed(1, "eight")
		if !errors.Is(err, services.ErrInvalidHours) {
			t.Fatalf("expected ErrInvalidHours, got %v", err)
		}
	})

	t.Run("allocation not found", func(t *testing.T) {
		mockAllocation.EXPECT().GetAllocationByID(uint(99)).
			Return(models.Allocation{}, errors.New("record not found"))
		_, err := svc.ValidateProposed(99, "10")
		if !errors.Is(err, services.ErrAllocationNotFound) {
			t.Fatalf("expected ErrAllocationNotFound, got %v", err)
		}
	})
}

func TestApplyBulkUpdate(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		svc, _, _, _, c := setupAllocationMocks(t)
		_, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{Edits: map[uint]string{1: "10"}, Reason: "  "}, 1)
		if !errors.Is(err, services.ErrReasonRequired) {
			t.Fatalf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		svc, _, _, _, c := setupAllocationMocks(t)
		result, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{Edits: map[uint]string{}, Reason: "rebalance"}, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Applied != 0 || result.Rejected != 0 {
			t.Fatalf("expected 0/0, got %d/%d", result.Applied, result.Rejected)
		}
	})

	t.Run("oversized batch", func(t *testing.T) {
		svc, _, _, _, c := setupAllocationMocks(t)
		config.BulkUpdateMaxRows = 1
		_, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{Edits: map[uint]string{1: "10", 2: "20"}, Reason: "rebalance"}, 1)
		if !errors.Is(err, services.ErrBatchTooLarge) {
			t.Fatalf("expected ErrBatchTooLarge, got %v", err)
		}
	})

	t.Run("blank and non-numeric rows are skipped", func(t *testing.T) {
		svc, _, _, _, c := setupAllocationMocks(t)
		result, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{
			Edits:  map[uint]string{1: "", 2: "n/a"},
			Reason: "rebalance",
		}, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Applied != 0 || result.Rejected != 0 {
			t.Fatalf("expected 0/0, got %d/%d", result.Applied, result.Rejected)
		}
		if len(result.Rows) != 2 {
			t.Fatalf("expected 2 row results, got %d", len(result.Rows))
		}
		for _, row := range result.Rows {
			if row.Status != dto.RowSkipped {
				t.Fatalf("expected skipped, got %s", row.Status)
			}
		}
	})

	t.Run("edit up to the ceiling is applied with one audit entry", func(t *testing.T) {
		svc, mockAllocation, mockProject, mockUser, c := setupAllocationMocks(t)

		// budget 100, U1 has 40, sibling has 30: ceiling for U1 is 70
		mockAllocation.EXPECT().GetAllocationByID(uint(1)).
			Return(models.Allocation{AID: 1, UserID: 10, ProjectID: 5, HoursAllocated: dec("40")}, nil)
		mockProject.EXPECT().GetProjectByID(uint(5)).
			Return(models.Project{PID: 5, Title: "website", TotalHours: dec("100")}, nil)
		mockAllocation.EXPECT().SumOtherAllocations(uint(5), uint(1)).Return(dec("30"), nil)
		mockUser.EXPECT().GetUserByID(uint(10)).Return(models.User{UID: 10, Username: "u1"}, nil)

		var captured *models.AuditLog
		mockAllocation.EXPECT().
			ApplyValidatedUpdate(uint(1), gomock.Any(), gomock.Any()).
			DoAndReturn(func(id uint, hours interface{}, audit *models.AuditLog) error {
				captured = audit
				return nil
			})

		result, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{
			Edits:  map[uint]string{1: "70"},
			Reason: "scope change",
		}, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Applied != 1 || result.Rejected != 0 {
			t.Fatalf("expected 1/0, got %d/%d", result.Applied, result.Rejected)
		}
		if captured == nil {
			t.Fatal("expected an audit entry")
		}
		if captured.UserID != 42 {
			t.Fatalf("expected actor 42, got %d", captured.UserID)
		}
		if captured.Description != "scope change" {
			t.Fatalf("expected reason on audit entry, got %q", captured.Description)
		}
		if captured.BatchID == "" {
			t.Fatal("expected a batch id")
		}
	})

	t.Run("sibling edit over the moved ceiling is rejected", func(t *testing.T) {
		svc, mockAllocation, mockProject, mockUser, c := setupAllocationMocks(t)

		// Row 1 moves U1 from 40 to 70; row 2 then sees 100-70=30 left and 65 is refused.
		mockAllocation.EXPECT().GetAllocationByID(uint(1)).
			Return(models.Allocation{AID: 1, UserID: 10, ProjectID: 5, HoursAllocated: dec("40")}, nil)
		mockAllocation.EXPECT().GetAllocationByID(uint(2)).
			Return(models.Allocation{AID: 2, UserID: 11, ProjectID: 5, HoursAllocated: dec("30")}, nil)
		mockProject.EXPECT().GetProjectByID(uint(5)).
			Return(models.Project{PID: 5, Title: "website", TotalHours: dec("100")}, nil).Times(2)
		mockAllocation.EXPECT().SumOtherAllocations(uint(5), uint(1)).Return(dec("30"), nil)
		mockAllocation.EXPECT().SumOtherAllocations(uint(5), uint(2)).Return(dec("70"), nil)
		mockUser.EXPECT().GetUserByID(uint(10)).Return(models.User{UID: 10, Username: "u1"}, nil)
		mockAllocation.EXPECT().ApplyValidatedUpdate(uint(1), gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{
			Edits:  map[uint]string{1: "70", 2: "65"},
			Reason: "rebalance",
		}, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Applied != 1 || result.Rejected != 1 {
			t.Fatalf("expected 1/1, got %d/%d", result.Applied, result.Rejected)
		}
		if result.Rows[1].Status != dto.RowRejected || result.Rows[1].AllocationID != 2 {
			t.Fatalf("expected row 2 rejected, got %+v", result.Rows[1])
		}
	})

	t.Run("missing allocation rejects only its row", func(t *testing.T) {
		svc, mockAllocation, mockProject, mockUser, c := setupAllocationMocks(t)

		mockAllocation.EXPECT().GetAllocationByID(uint(1)).
			Return(models.Allocation{}, errors.New("record not found"))
		mockAllocation.EXPECT().GetAllocationByID(uint(2)).
			Return(models.Allocation{AID: 2, UserID: 11, ProjectID: 5, HoursAllocated: dec("30")}, nil)
		mockProject.EXPECT().GetProjectByID(uint(5)).
			Return(models.Project{PID: 5, Title: "website", TotalHours: dec("100")}, nil)
		mockAllocation.EXPECT().SumOtherAllocations(uint(5), uint(2)).Return(dec("40"), nil)
		mockUser.EXPECT().GetUserByID(uint(11)).Return(models.User{UID: 11, Username: "u2"}, nil)
		mockAllocation.EXPECT().ApplyValidatedUpdate(uint(2), gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{
			Edits:  map[uint]string{1: "10", 2: "50"},
			Reason: "cleanup",
		}, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Applied != 1 || result.Rejected != 1 {
			t.Fatalf("expected 1/1, got %d/%d", result.Applied, result.Rejected)
		}
	})

	t.Run("commit conflict retries once then rejects", func(t *testing.T) {
		svc, mockAllocation, mockProject, mockUser, c := setupAllocationMocks(t)

		mockAllocation.EXPECT().GetAllocationByID(uint(1)).
			Return(models.Allocation{AID: 1, UserID: 10, ProjectID: 5, HoursAllocated: dec("40")}, nil)
		mockProject.EXPECT().GetProjectByID(uint(5)).
			Return(models.Project{PID: 5, Title: "website", TotalHours: dec("100")}, nil)
		// First-pass sum says 70 fits, the locked commit disagrees, and
		// the re-read shows a sibling has eaten the budget.
		mockAllocation.EXPECT().SumOtherAllocations(uint(5), uint(1)).Return(dec("30"), nil)
		mockUser.EXPECT().GetUserByID(uint(10)).Return(models.User{UID: 10, Username: "u1"}, nil)
		mockAllocation.EXPECT().ApplyValidatedUpdate(uint(1), gomock.Any(), gomock.Any()).
			Return(repositories.ErrBudgetConflict)
		mockAllocation.EXPECT().SumOtherAllocations(uint(5), uint(1)).Return(dec("60"), nil)

		result, err := svc.ApplyBulkUpdate(c, dto.BulkUpdateDTO{
			Edits:  map[uint]string{1: "70"},
			Reason: "rebalance",
		}, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Applied != 0 || result.Rejected != 1 {
			t.Fatalf("expected 0/1, got %d/%d", result.Applied, result.Rejected)
		}
	})
}
