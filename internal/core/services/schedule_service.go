package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/apperrors"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portsrepo "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/repositories"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
)

// scheduleService implements the ScheduleSvcFacade interface
type scheduleService struct {
	BaseService
	scheduleRepo  portsrepo.ScheduleRepositoryFacade
	workplaceRepo portsrepo.WorkplaceReader
}

// NewScheduleService creates a new schedule service with the provided dependencies
func NewScheduleService(
	scheduleRepo portsrepo.ScheduleRepositoryFacade,
	workplaceRepo portsrepo.WorkplaceReader,
) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		scheduleRepo:  scheduleRepo,
		workplaceRepo: workplaceRepo,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// CreateSchedule creates a new schedule, applying display defaults
func (s *scheduleService) CreateSchedule(ctx context.Context, req dto.SaveScheduleRequest) (*domain.Schedule, error) {
	startDate, endDate, err := parseScheduleDates(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	schedule := domain.Schedule{
		ScheduleID:        uuid.NewString(),
		Name:              req.Nome,
		StartDate:         startDate,
		EndDate:           endDate,
		DisplayedWeekdays: domain.DefaultScheduleWeekdays,
		DefaultStartHour:  domain.DefaultScheduleStartHour,
		DefaultEndHour:    domain.DefaultScheduleEndHour,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := applyScheduleDisplay(&schedule, req); err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.SaveSchedule(ctx, schedule); err != nil {
		s.LogError(ctx, err, "Failed to save schedule",
			slog.String("schedule_id", schedule.ScheduleID))
		return nil, err
	}

	s.LogInfo(ctx, "Schedule created",
		slog.String("schedule_id", schedule.ScheduleID),
		slog.String("name", schedule.Name))
	return &schedule, nil
}

// GetScheduleByID retrieves a schedule by its ID
func (s *scheduleService) GetScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find schedule by ID",
				slog.String("schedule_id", scheduleID))
		}
		return nil, err
	}
	return schedule, nil
}

// ListSchedules retrieves all schedules
func (s *scheduleService) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	schedules, err := s.scheduleRepo.ListSchedules(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schedules")
		return nil, err
	}
	if schedules == nil {
		return []domain.Schedule{}, nil
	}
	return schedules, nil
}

// UpdateSchedule updates an existing schedule
func (s *scheduleService) UpdateSchedule(ctx context.Context, scheduleID string, req dto.SaveScheduleRequest) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := parseScheduleDates(req)
	if err != nil {
		return nil, err
	}

	schedule.Name = req.Nome
	schedule.StartDate = startDate
	schedule.EndDate = endDate
	if err := applyScheduleDisplay(schedule, req); err != nil {
		return nil, err
	}
	schedule.LastUpdatedAt = time.Now()

	if err := s.scheduleRepo.UpdateSchedule(ctx, *schedule); err != nil {
		s.LogError(ctx, err, "Failed to update schedule",
			slog.String("schedule_id", scheduleID))
		return nil, err
	}

	s.LogInfo(ctx, "Schedule updated", slog.String("schedule_id", scheduleID))
	return schedule, nil
}

// DeleteSchedule removes a schedule along with its appointments and overrides
func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if _, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteSchedule(ctx, scheduleID); err != nil {
		s.LogError(ctx, err, "Failed to delete schedule",
			slog.String("schedule_id", scheduleID))
		return err
	}

	s.LogInfo(ctx, "Schedule deleted", slog.String("schedule_id", scheduleID))
	return nil
}

// SetWorkplaceRate creates or replaces a per-schedule hourly rate override
func (s *scheduleService) SetWorkplaceRate(ctx context.Context, scheduleID, workplaceID string, req dto.SetWorkplaceRateRequest) (*domain.ScheduleWorkplaceRate, error) {
	if _, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	if _, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID); err != nil {
		return nil, err
	}

	rate := domain.ScheduleWorkplaceRate{
		ScheduleID:  scheduleID,
		WorkplaceID: workplaceID,
		HourlyRate:  decimal.NewFromFloat(req.ValorHora),
	}
	if err := s.scheduleRepo.UpsertWorkplaceRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to upsert workplace rate",
			slog.String("schedule_id", scheduleID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workplace rate override set",
		slog.String("schedule_id", scheduleID),
		slog.String("workplace_id", workplaceID))
	return &rate, nil
}

// ListWorkplaceRates retrieves all rate overrides of a schedule
func (s *scheduleService) ListWorkplaceRates(ctx context.Context, scheduleID string) ([]domain.ScheduleWorkplaceRate, error) {
	if _, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}

	rates, err := s.scheduleRepo.ListWorkplaceRates(ctx, scheduleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplace rates",
			slog.String("schedule_id", scheduleID))
		return nil, err
	}
	if rates == nil {
		return []domain.ScheduleWorkplaceRate{}, nil
	}
	return rates, nil
}

func parseScheduleDates(req dto.SaveScheduleRequest) (time.Time, time.Time, error) {
	startDate, err := time.Parse(time.DateOnly, req.DataInicio)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationFailedError("invalid start date")
	}
	endDate, err := time.Parse(time.DateOnly, req.DataFim)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationFailedError("invalid end date")
	}
	if !endDate.After(startDate) {
		return time.Time{}, time.Time{}, apperrors.NewValidationFailedError("end date must be after start date")
	}
	return startDate, endDate, nil
}

func applyScheduleDisplay(schedule *domain.Schedule, req dto.SaveScheduleRequest) error {
	if len(req.DiasSemana) > 0 {
		schedule.DisplayedWeekdays = req.DiasSemana
	}
	if req.HoraInicioPadrao != "" {
		t, err := domain.ParseTimeOfDay(req.HoraInicioPadrao)
		if err != nil {
			return apperrors.NewValidationFailedError("invalid default start hour")
		}
		schedule.DefaultStartHour = t
	}
	if req.HoraFimPadrao != "" {
		t, err := domain.ParseTimeOfDay(req.HoraFimPadrao)
		if err != nil {
			return apperrors.NewValidationFailedError("invalid default end hour")
		}
		schedule.DefaultEndHour = t
	}
	if !schedule.DefaultStartHour.Before(schedule.DefaultEndHour) {
		return apperrors.NewValidationFailedError("default end hour must be after default start hour")
	}
	return nil
}
