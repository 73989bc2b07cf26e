package services

import (
	"context"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// ReportingService defines the hour/pay report operations.
type ReportingService interface {
	// WeeklyReport aggregates the schedule's appointments into per-workplace
	// totals and a grand total for one week.
	WeeklyReport(ctx context.Context, scheduleID string) (*domain.Report, error)

	// MonthlyReport is the weekly report scaled to a four-week month.
	MonthlyReport(ctx context.Context, scheduleID string) (*domain.Report, error)
}
