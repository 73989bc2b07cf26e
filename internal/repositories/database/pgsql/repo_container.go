package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	workplaceRepo := newPgxWorkplaceRepository(dbPool)
	scheduleRepo := newPgxScheduleRepository(dbPool)
	appointmentRepo := newPgxAppointmentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WorkplaceRepo:   workplaceRepo,
		ScheduleRepo:    scheduleRepo,
		AppointmentRepo: appointmentRepo,
	}
}
