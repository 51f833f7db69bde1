package handlers

import "github.com/pmhours/pmhours-go/services"

type Handlers struct {
	Allocation *AllocationHandler
	Compliance *ComplianceHandler
	TimeLog    *TimeLogHandler
	Audit      *AuditHandler
	User       *UserHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Allocation: NewAllocationHandler(svc.Allocation),
		Compliance: NewComplianceHandler(svc.Compliance),
		TimeLog:    NewTimeLogHandler(svc.TimeLog),
		Audit:      NewAuditHandler(svc.Audit),
		User:       NewUserHandler(svc.User),
	}
}
