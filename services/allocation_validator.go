package services

import (
	"github.com/pmhours/pmhours-go/dto"
	"github.com/shopspring/decimal"
)

// ValidateAllocation decides whether proposed hours are admissible for a
// row, given the project budget and the sum of the other allocations on
// the project. The ceiling is budget minus the others; when the project
// is already over-allocated by its other rows the ceiling goes negative
// and only zero is admissible.
func ValidateAllocation(projectTotalHours, sumOtherAllocations, proposedHours decimal.Decimal) dto.AllocationValidation {
	maxAllowed := projectTotalHours.Sub(sumOtherAllocations)

	if proposedHours.IsNegative() {
		return dto.AllocationValidation{Valid: false, MaxAllowed: maxAllowed}
	}
	if maxAllowed.IsNegative() {
		return dto.AllocationValidation{Valid: proposedHours.IsZero(), MaxAllowed: maxAllowed}
	}
	return dto.AllocationValidation{
		Valid:      proposedHours.LessThanOrEqual(maxAllowed),
		MaxAllowed: maxAllowed,
	}
}
