package repositories

import (
	"context"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// ScheduleReader defines read operations for schedule data
type ScheduleReader interface {
	// FindScheduleByID retrieves a specific schedule by its ID.
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)

	// ListSchedules retrieves all schedules.
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)
}

// ScheduleWriter defines write operations for schedule data
type ScheduleWriter interface {
	// SaveSchedule persists a new schedule.
	SaveSchedule(ctx context.Context, schedule domain.Schedule) error

	// UpdateSchedule persists changes to an existing schedule.
	UpdateSchedule(ctx context.Context, schedule domain.Schedule) error

	// DeleteSchedule removes a schedule and, with it, its appointments and
	// rate overrides.
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// ScheduleRateManager defines operations for the per-schedule workplace rate
// overrides used by reporting.
type ScheduleRateManager interface {
	// UpsertWorkplaceRate creates or replaces a rate override.
	UpsertWorkplaceRate(ctx context.Context, rate domain.ScheduleWorkplaceRate) error

	// ListWorkplaceRates retrieves all rate overrides of a schedule.
	ListWorkplaceRates(ctx context.Context, scheduleID string) ([]domain.ScheduleWorkplaceRate, error)
}

// ScheduleRepositoryFacade combines all schedule-related repository interfaces.
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
	ScheduleRateManager
}
