package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/apperrors"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portsrepo "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/repositories"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/utils/scheduling"
)

// appointmentService implements the AppointmentSvcFacade interface
type appointmentService struct {
	BaseService
	appointmentRepo portsrepo.AppointmentRepositoryFacade
	scheduleRepo    portsrepo.ScheduleReader
	workplaceRepo   portsrepo.WorkplaceReader
}

// NewAppointmentService creates a new appointment service with the provided dependencies
func NewAppointmentService(
	appointmentRepo portsrepo.AppointmentRepositoryFacade,
	scheduleRepo portsrepo.ScheduleReader,
	workplaceRepo portsrepo.WorkplaceReader,
) portssvc.AppointmentSvcFacade {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		workplaceRepo:   workplaceRepo,
	}
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

// CreateAppointment validates and persists a new appointment
func (s *appointmentService) CreateAppointment(ctx context.Context, req dto.SaveAppointmentRequest) (*domain.Appointment, error) {
	appointment, err := s.buildValidated(ctx, req, "")
	if err != nil {
		return nil, err
	}
	appointment.AppointmentID = uuid.NewString()

	now := time.Now()
	appointment.CreatedAt = now
	appointment.LastUpdatedAt = now

	if err := s.appointmentRepo.SaveAppointment(ctx, *appointment); err != nil {
		s.LogError(ctx, err, "Failed to save appointment",
			slog.String("appointment_id", appointment.AppointmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Appointment created",
		slog.String("appointment_id", appointment.AppointmentID),
		slog.String("schedule_id", appointment.ScheduleID),
		slog.String("workplace_id", appointment.WorkplaceID))
	return appointment, nil
}

// GetAppointmentByID retrieves an appointment by its ID
func (s *appointmentService) GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find appointment by ID",
				slog.String("appointment_id", appointmentID))
		}
		return nil, err
	}
	return appointment, nil
}

// ListAppointments retrieves every appointment of a schedule
func (s *appointmentService) ListAppointments(ctx context.Context, scheduleID string) ([]domain.Appointment, error) {
	if _, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListAppointmentsBySchedule(ctx, scheduleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list appointments",
			slog.String("schedule_id", scheduleID))
		return nil, err
	}
	if appointments == nil {
		return []domain.Appointment{}, nil
	}
	return appointments, nil
}

// UpdateAppointment validates and persists changes to an appointment
func (s *appointmentService) UpdateAppointment(ctx context.Context, appointmentID string, req dto.SaveAppointmentRequest) (*domain.Appointment, error) {
	current, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment, err := s.buildValidated(ctx, req, appointmentID)
	if err != nil {
		return nil, err
	}
	appointment.AppointmentID = appointmentID
	appointment.CreatedAt = current.CreatedAt
	appointment.LastUpdatedAt = time.Now()

	if err := s.appointmentRepo.UpdateAppointment(ctx, *appointment); err != nil {
		s.LogError(ctx, err, "Failed to update appointment",
			slog.String("appointment_id", appointmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Appointment updated", slog.String("appointment_id", appointmentID))
	return appointment, nil
}

// DeleteAppointment removes an appointment unconditionally
func (s *appointmentService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if _, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID); err != nil {
		return err
	}

	if err := s.appointmentRepo.DeleteAppointment(ctx, appointmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete appointment",
			slog.String("appointment_id", appointmentID))
		return err
	}

	s.LogInfo(ctx, "Appointment deleted", slog.String("appointment_id", appointmentID))
	return nil
}

// buildValidated parses the request, runs the scheduling rule set against the
// schedule's current state and returns the appointment ready to persist. The
// stored duration is always the derived one.
func (s *appointmentService) buildValidated(ctx context.Context, req dto.SaveAppointmentRequest, editingID string) (*domain.Appointment, error) {
	if _, err := s.scheduleRepo.FindScheduleByID(ctx, req.AgendaID); err != nil {
		return nil, err
	}

	startTime, err := domain.ParseTimeOfDay(req.HoraInicio)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid start time")
	}
	endTime, err := domain.ParseTimeOfDay(req.HoraFim)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid end time")
	}

	workplaces, err := s.workplaceRepo.ListWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplaces for validation")
		return nil, err
	}
	existing, err := s.appointmentRepo.ListAppointmentsBySchedule(ctx, req.AgendaID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load appointments for validation",
			slog.String("schedule_id", req.AgendaID))
		return nil, err
	}

	candidate := scheduling.Candidate{
		WorkplaceID: req.LocalID,
		DayOfWeek:   req.DiaSemana,
		StartTime:   startTime,
		EndTime:     endTime,
	}
	if err := scheduling.Validate(candidate, editingID, existing, workplaces); err != nil {
		s.LogDebug(ctx, "Appointment rejected by scheduling rules",
			slog.String("schedule_id", req.AgendaID),
			slog.String("workplace_id", req.LocalID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	hourType := req.TipoHora
	if hourType == "" {
		hourType = domain.HourTypeNormal
	}

	return &domain.Appointment{
		ScheduleID:    req.AgendaID,
		WorkplaceID:   req.LocalID,
		DayOfWeek:     req.DiaSemana,
		StartTime:     startTime,
		EndTime:       endTime,
		Description:   req.Descricao,
		HourType:      hourType,
		DurationHours: candidate.DurationHours(),
	}, nil
}
