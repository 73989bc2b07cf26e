package repositories

import (
	"context"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// AppointmentReader defines read operations for appointment data
type AppointmentReader interface {
	// FindAppointmentByID retrieves a specific appointment by its ID.
	FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)

	// ListAppointmentsBySchedule retrieves every appointment of a schedule.
	ListAppointmentsBySchedule(ctx context.Context, scheduleID string) ([]domain.Appointment, error)
}

// AppointmentWriter defines write operations for appointment data
type AppointmentWriter interface {
	// SaveAppointment persists a new appointment.
	SaveAppointment(ctx context.Context, appointment domain.Appointment) error

	// UpdateAppointment persists changes to an existing appointment.
	UpdateAppointment(ctx context.Context, appointment domain.Appointment) error

	// DeleteAppointment removes an appointment. Deletion is unconditional;
	// no business rules apply.
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

// AppointmentRepositoryFacade combines all appointment-related repository interfaces.
type AppointmentRepositoryFacade interface {
	AppointmentReader
	AppointmentWriter
}
