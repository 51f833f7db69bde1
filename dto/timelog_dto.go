package dto

// CreateTimeLogDTO appends one logged-hours entry. ProjectID left nil
// records bench/off-prod time.
type CreateTimeLogDTO struct {
	ProjectID  *uint  `json:"p_id,omitempty"`
	LogDate    string `json:"log_date" binding:"required"`
	HoursSpent string `json:"hours_spent" binding:"required"`
	Utilized   bool   `json:"utilized"`
}
