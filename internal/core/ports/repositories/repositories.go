package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container.
type RepositoryProvider struct {
	WorkplaceRepo   WorkplaceRepositoryFacade
	ScheduleRepo    ScheduleRepositoryFacade
	AppointmentRepo AppointmentRepositoryFacade
}
