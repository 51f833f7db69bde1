package services

import "github.com/pmhours/pmhours-go/repositories"

type Services struct {
	Allocation *AllocationService
	Compliance *ComplianceService
	TimeLog    *TimeLogService
	Audit      *AuditService
	User       *UserService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Allocation: NewAllocationService(repos),
		Compliance: NewComplianceService(repos),
		TimeLog:    NewTimeLogService(repos),
		Audit:      NewAuditService(repos),
		User:       NewUserService(repos),
	}
}
