package services

import (
	"context"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
)

// AppointmentSvcFacade defines the service operations for appointments.
// Create and Update run the scheduling rule set before persisting; Delete
// never does.
type AppointmentSvcFacade interface {
	// CreateAppointment validates and persists a new appointment.
	CreateAppointment(ctx context.Context, req dto.SaveAppointmentRequest) (*domain.Appointment, error)

	// GetAppointmentByID retrieves an appointment by its ID.
	GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)

	// ListAppointments retrieves every appointment of a schedule.
	ListAppointments(ctx context.Context, scheduleID string) ([]domain.Appointment, error)

	// UpdateAppointment validates and persists changes to an appointment,
	// excluding the appointment itself from rule comparisons.
	UpdateAppointment(ctx context.Context, appointmentID string, req dto.SaveAppointmentRequest) (*domain.Appointment, error)

	// DeleteAppointment removes an appointment unconditionally.
	DeleteAppointment(ctx context.Context, appointmentID string) error
}
