package services

import (
	portsrepo "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/repositories"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo)
	container.Schedule = NewScheduleService(repos.ScheduleRepo, repos.WorkplaceRepo)
	container.Appointment = NewAppointmentService(repos.AppointmentRepo, repos.ScheduleRepo, repos.WorkplaceRepo)
	container.Reporting = NewReportingService(repos.ScheduleRepo, repos.AppointmentRepo, repos.WorkplaceRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.WorkplaceSvcFacade   = (*workplaceService)(nil)
	_ portssvc.ScheduleSvcFacade    = (*scheduleService)(nil)
	_ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)
	_ portssvc.ReportingService     = (*reportingService)(nil)
)
