package dto

import "github.com/shopspring/decimal"

// ValidateAllocationDTO checks one proposed value without writing anything.
type ValidateAllocationDTO struct {
	AllocationID  uint   `json:"allocation_id" binding:"required"`
	ProposedHours string `json:"proposed_hours" binding:"required"`
}

type AllocationValidation struct {
	Valid      bool            `json:"valid"`
	MaxAllowed decimal.Decimal `json:"max_allowed"`
}

// BulkUpdateDTO carries one bulk-edit submission. Edits map allocation id
// to the proposed hours as entered; blank or non-numeric values mean "no
// change requested" for that row.
type BulkUpdateDTO struct {
	Edits  map[uint]string `json:"edits" binding:"required"`
	Reason string          `json:"reason" binding:"required"`
}

type RowStatus string

const (
	RowApplied  RowStatus = "applied"
	RowRejected RowStatus = "rejected"
	RowSkipped  RowStatus = "skipped"
)

// RowResult is the per-row outcome of a bulk update.
type RowResult struct {
	AllocationID uint      `json:"allocation_id"`
	Status       RowStatus `json:"status"`
	Reason       string    `json:"reason,omitempty"`
}

type BulkUpdateResult struct {
	Applied  int         `json:"applied"`
	Rejected int         `json:"rejected"`
	Rows     []RowResult `json:"rows"`
}
