package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pmhours/pmhours-go/config"
	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/pmhours/pmhours-go/utils"
	"github.com/shopspring/decimal"
)

var (
	ErrAllocationNotFound = errors.New("allocation not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidHours       = errors.New("proposed hours is not a number")
	ErrReasonRequired     = errors.New("reason is required")
	ErrBatchTooLarge      = errors.New("too many rows in one bulk update")
)

type AllocationService struct {
	Repos *repositories.Repos
}

func NewAllocationService(repos *repositories.Repos) *AllocationService {
	return &AllocationService{
		Repos: repos,
	}
}

// allocationSnapshot is the audit old/new payload for one edit.
type allocationSnapshot struct {
	HoursAllocated decimal.Decimal `json:"hours_allocated"`
	UserID         uint            `json:"u_id"`
	Username       string          `json:"username"`
	ProjectID      uint            `json:"p_id"`
	ProjectTitle   string          `json:"project_title"`
}

// ListActiveProjects feeds the bulk-edit screen; inactive projects are
// left out.
func (s *AllocationService) ListActiveProjects() ([]models.Project, error) {
	return s.Repos.Project.ListActiveProjects()
}

// ListProjectAllocations returns the bulk-edit rows for one project with
// utilized and remaining hours filled in.
func (s *AllocationService) ListProjectAllocations(projectID uint) ([]models.AllocationRow, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		return nil, ErrProjectNotFound
	}
	rows, err := s.Repos.Allocation.ListRowsByProject(projectID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].RemainingHours = rows[i].HoursAllocated.Sub(rows[i].UtilizedHours)
	}
	return rows, nil
}

// ValidateProposed is the single-row edit path. It shares its semantics
// with the per-row check inside ApplyBulkUpdate and writes nothing.
func (s *AllocationService) ValidateProposed(allocationID uint, proposed string) (dto.AllocationValidation, error) {
	hours, err := decimal.NewFromString(strings.TrimSpace(proposed))
	if err != nil {
		return dto.AllocationValidation{}, ErrInvalidHours
	}

	alloc, err := s.Repos.Allocation.GetAllocationByID(allocationID)
	if err != nil {
		return dto.AllocationValidation{}, ErrAllocationNotFound
	}
	project, err := s.Repos.Project.GetProjectByID(alloc.ProjectID)
	if err != nil {
		return dto.AllocationValidation{}, ErrProjectNotFound
	}
	others, err := s.Repos.Allocation.SumOtherAllocations(alloc.ProjectID, alloc.AID)
	if err != nil {
		return dto.AllocationValidation{}, err
	}

	return ValidateAllocation(project.TotalHours, others, hours), nil
}

// ApplyBulkUpdate processes a batch of independent edits. Rows never
// block each other: each one is validated and committed on its own, and
// the result carries per-row outcomes next to the applied/rejected
// counts. One audit entry is written per applied row, atomically with
// the row's write, all sharing one batch id.
func (s *AllocationService) ApplyBulkUpdate(c *gin.Context, input dto.BulkUpdateDTO, actorID uint) (dto.BulkUpdateResult, error) {
	result := dto.BulkUpdateResult{Rows: []dto.RowResult{}}

	if strings.TrimSpace(input.Reason) == "" {
		return result, ErrReasonRequired
	}
	if len(input.Edits) > config.BulkUpdateMaxRows {
		return result, ErrBatchTooLarge
	}

	ids := make([]uint, 0, len(input.Edits))
	for id := range input.Edits {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	batchID := uuid.NewString()

	for _, id := range ids {
		raw := strings.TrimSpace(input.Edits[id])
		if raw == "" {
			result.Rows = append(result.Rows, dto.RowResult{AllocationID: id, Status: dto.RowSkipped})
			continue
		}
		hours, err := decimal.NewFromString(raw)
		if err != nil {
			// Not a number means no change was requested for the row.
			result.Rows = append(result.Rows, dto.RowResult{AllocationID: id, Status: dto.RowSkipped})
			continue
		}

		row := s.applyOne(c, id, hours, input.Reason, actorID, batchID)
		result.Rows = append(result.Rows, row)
		switch row.Status {
		case dto.RowApplied:
			result.Applied++
		case dto.RowRejected:
			result.Rejected++
		}
	}

	return result, nil
}

func (s *AllocationService) applyOne(c *gin.Context, allocationID uint, hours decimal.Decimal, reason string, actorID uint, batchID string) dto.RowResult {
	rejected := func(why string) dto.RowResult {
		return dto.RowResult{AllocationID: allocationID, Status: dto.RowRejected, Reason: why}
	}

	alloc, err := s.Repos.Allocation.GetAllocationByID(allocationID)
	if err != nil {
		return rejected("allocation not found")
	}
	project, err := s.Repos.Project.GetProjectByID(alloc.ProjectID)
	if err != nil {
		return rejected("project not found")
	}
	others, err := s.Repos.Allocation.SumOtherAllocations(alloc.ProjectID, alloc.AID)
	if err != nil {
		return rejected(err.Error())
	}

	validation := ValidateAllocation(project.TotalHours, others, hours)
	if !validation.Valid {
		return rejected(fmt.Sprintf("exceeds remaining project budget (max allowed %s)", validation.MaxAllowed))
	}

	audit := s.buildEditAudit(c, actorID, batchID, alloc, project, hours, reason)
	err = s.Repos.Allocation.ApplyValidatedUpdate(alloc.AID, hours, audit)
	if errors.Is(err, repositories.ErrBudgetConflict) {
		// The sum moved between validation and commit. One retry against
		// fresh sums; a second conflict rejects the row.
		others, sumErr := s.Repos.Allocation.SumOtherAllocations(alloc.ProjectID, alloc.AID)
		if sumErr != nil {
			return rejected(sumErr.Error())
		}
		validation = ValidateAllocation(project.TotalHours, others, hours)
		if !validation.Valid {
			return rejected(fmt.Sprintf("exceeds remaining project budget (max allowed %s)", validation.MaxAllowed))
		}
		err = s.Repos.Allocation.ApplyValidatedUpdate(alloc.AID, hours, audit)
		if errors.Is(err, repositories.ErrBudgetConflict) {
			return rejected("allocation changed concurrently, please retry")
		}
	}
	if err != nil {
		return rejected(err.Error())
	}

	return dto.RowResult{AllocationID: allocationID, Status: dto.RowApplied}
}

func (s *AllocationService) buildEditAudit(c *gin.Context, actorID uint, batchID string, alloc models.Allocation, project models.Project, newHours decimal.Decimal, reason string) *models.AuditLog {
	var username string
	if user, err := s.Repos.User.GetUserByID(alloc.UserID); err == nil {
		username = user.Username
	}

	before := allocationSnapshot{
		HoursAllocated: alloc.HoursAllocated,
		UserID:         alloc.UserID,
		Username:       username,
		ProjectID:      project.PID,
		ProjectTitle:   project.Title,
	}
	after := before
	after.HoursAllocated = newHours

	return utils.BuildAuditLog(c, actorID, "update", "allocation",
		fmt.Sprintf("a_id=%d", alloc.AID), batchID, before, after, reason)
}
