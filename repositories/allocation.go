package repositories

import (
	"errors"

	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrBudgetConflict is returned when the locked re-check inside
// ApplyValidatedUpdate finds the proposed hours no longer fit the
// project's remaining budget.
var ErrBudgetConflict = errors.New("allocation exceeds remaining project budget")

type AllocationRepo interface {
	GetAllocationByID(id uint) (models.Allocation, error)
	ListRowsByProject(projectID uint) ([]models.AllocationRow, error)
	SumAllocations(projectID uint) (decimal.Decimal, error)
	SumOtherAllocations(projectID, excludeID uint) (decimal.Decimal, error)
	CreateAllocation(a *models.Allocation) error
	ApplyValidatedUpdate(allocationID uint, newHours decimal.Decimal, audit *models.AuditLog) error
}

type DBAllocationRepo struct{}

func (r *DBAllocationRepo) GetAllocationByID(id uint) (models.Allocation, error) {
	var alloc models.Allocation
	err := db.DB.First(&alloc, id).Error
	return alloc, err
}

func (r *DBAllocationRepo) ListRowsByProject(projectID uint) ([]models.AllocationRow, error) {
	var rows []models.AllocationRow
	err := db.DB.Raw(`
		SELECT a.a_id,
		       a.u_id,
		       u.username,
		       COALESCE(u.full_name, '') AS full_name,
		       a.role,
		       a.hours_allocated,
		       COALESCE(t.utilized_hours, 0) AS utilized_hours
		FROM allocations a
		JOIN users u ON u.u_id = a.u_id
		LEFT JOIN (
			SELECT u_id, p_id, SUM(hours_spent) AS utilized_hours
			FROM time_log_entries
			WHERE utilized = TRUE
			GROUP BY u_id, p_id
		) t ON t.u_id = a.u_id AND t.p_id = a.p_id
		WHERE a.p_id = ?
		ORDER BY a.a_id`, projectID).Scan(&rows).Error
	return rows, err
}

func (r *DBAllocationRepo) SumAllocations(projectID uint) (decimal.Decimal, error) {
	return sumAllocations(db.DB, projectID, 0)
}

func (r *DBAllocationRepo) SumOtherAllocations(projectID, excludeID uint) (decimal.Decimal, error) {
	return sumAllocations(db.DB, projectID, excludeID)
}

func (r *DBAllocationRepo) CreateAllocation(a *models.Allocation) error {
	return db.DB.Create(a).Error
}

// ApplyValidatedUpdate commits one accepted edit. The project row is
// locked for the duration of the transaction so concurrent bulk updates
// against the same project serialize, and the budget check is repeated
// against the locked state before the write. The allocation update and
// its audit entry commit together or not at all.
func (r *DBAllocationRepo) ApplyValidatedUpdate(allocationID uint, newHours decimal.Decimal, audit *models.AuditLog) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var alloc models.Allocation
		if err := tx.First(&alloc, allocationID).Error; err != nil {
			return err
		}

		var project models.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, alloc.ProjectID).Error; err != nil {
			return err
		}

		others, err := sumAllocations(tx, project.PID, alloc.AID)
		if err != nil {
			return err
		}

		remaining := project.TotalHours.Sub(others)
		if newHours.IsNegative() {
			return ErrBudgetConflict
		}
		if newHours.GreaterThan(remaining) && !newHours.IsZero() {
			return ErrBudgetConflict
		}

		alloc.HoursAllocated = newHours
		if err := tx.Save(&alloc).Error; err != nil {
			return err
		}
		return tx.Create(audit).Error
	})
}

func sumAllocations(tx *gorm.DB, projectID, excludeID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := tx.Model(&models.Allocation{}).Where("p_id = ?", projectID)
	if excludeID != 0 {
		query = query.Where("a_id <> ?", excludeID)
	}
	err := query.Select("COALESCE(SUM(hours_allocated), 0)").Scan(&total).Error
	return total, err
}
