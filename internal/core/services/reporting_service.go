package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	portsrepo "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/repositories"
	portssvc "github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/ports/services"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/utils/payroll"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	scheduleRepo    portsrepo.ScheduleRepositoryFacade
	appointmentRepo portsrepo.AppointmentReader
	workplaceRepo   portsrepo.WorkplaceReader
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(
	scheduleRepo portsrepo.ScheduleRepositoryFacade,
	appointmentRepo portsrepo.AppointmentReader,
	workplaceRepo portsrepo.WorkplaceReader,
) portssvc.ReportingService {
	return &reportingService{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		workplaceRepo:   workplaceRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// WeeklyReport aggregates one week of the schedule into per-workplace totals
func (s *reportingService) WeeklyReport(ctx context.Context, scheduleID string) (*domain.Report, error) {
	if _, err := s.scheduleRepo.FindScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListAppointmentsBySchedule(ctx, scheduleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load appointments for report",
			slog.String("schedule_id", scheduleID))
		return nil, err
	}
	workplaces, err := s.workplaceRepo.ListWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workplaces for report")
		return nil, err
	}
	overrides, err := s.scheduleRepo.ListWorkplaceRates(ctx, scheduleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rate overrides for report",
			slog.String("schedule_id", scheduleID))
		return nil, err
	}

	overrideMap := make(map[string]decimal.Decimal, len(overrides))
	for _, o := range overrides {
		overrideMap[o.WorkplaceID] = o.HourlyRate
	}

	report := payroll.Aggregate(appointments, workplaces, overrideMap)
	s.LogDebug(ctx, "Weekly report computed",
		slog.String("schedule_id", scheduleID),
		slog.Int("workplaces", len(report.Rows)))
	return &report, nil
}

// MonthlyReport is the weekly report scaled to a four-week month
func (s *reportingService) MonthlyReport(ctx context.Context, scheduleID string) (*domain.Report, error) {
	weekly, err := s.WeeklyReport(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	monthly := payroll.Scale(*weekly, domain.MonthWeeks)
	return &monthly, nil
}
