package repositories

type Repos struct {
	Allocation AllocationRepo
	Project    ProjectRepo
	TimeLog    TimeLogRepo
	Audit      AuditRepo
	Settings   SettingsRepo
	Reminder   ReminderLogRepo
	User       UserRepo
}

func New() *Repos {
	return &Repos{
		Allocation: &DBAllocationRepo{},
		Project:    &DBProjectRepo{},
		TimeLog:    &DBTimeLogRepo{},
		Audit:      &DBAuditRepo{},
		Settings:   &DBSettingsRepo{},
		Reminder:   &DBReminderLogRepo{},
		User:       &DBUserRepo{},
	}
}
