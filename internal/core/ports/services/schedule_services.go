package services

import (
	"context"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
)

// ScheduleSvcFacade defines the service operations for schedules and their
// per-workplace rate overrides.
type ScheduleSvcFacade interface {
	// CreateSchedule creates a new schedule, applying display defaults for
	// omitted weekdays and hours.
	CreateSchedule(ctx context.Context, req dto.SaveScheduleRequest) (*domain.Schedule, error)

	// GetScheduleByID retrieves a schedule by its ID.
	GetScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)

	// ListSchedules retrieves all schedules.
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)

	// UpdateSchedule updates an existing schedule.
	UpdateSchedule(ctx context.Context, scheduleID string, req dto.SaveScheduleRequest) (*domain.Schedule, error)

	// DeleteSchedule removes a schedule, cascading to its appointments and
	// rate overrides.
	DeleteSchedule(ctx context.Context, scheduleID string) error

	// SetWorkplaceRate creates or replaces the hourly-rate override a
	// schedule applies to one workplace when reporting.
	SetWorkplaceRate(ctx context.Context, scheduleID, workplaceID string, req dto.SetWorkplaceRateRequest) (*domain.ScheduleWorkplaceRate, error)

	// ListWorkplaceRates retrieves all rate overrides of a schedule.
	ListWorkplaceRates(ctx context.Context, scheduleID string) ([]domain.ScheduleWorkplaceRate, error)
}
