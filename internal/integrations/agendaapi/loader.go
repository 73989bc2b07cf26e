package agendaapi

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/dto"
)

// ReportLoader serializes report fetches for a consumer that fires them on
// every selection change. Only the most recently started request may deliver;
// responses of requests that were superseded while in flight are discarded
// and reported as ErrStaleResponse so the caller never renders outdated
// totals over newer ones.
type ReportLoader struct {
	client *Client

	mu     sync.Mutex
	latest uint64
}

// NewReportLoader creates a loader on top of an API client.
func NewReportLoader(client *Client) *ReportLoader {
	return &ReportLoader{client: client}
}

// LoadWeekly fetches the weekly report of a schedule.
func (l *ReportLoader) LoadWeekly(ctx context.Context, scheduleID string) (*dto.ReportPayload, error) {
	return l.load(ctx, scheduleID, l.client.WeeklyReport)
}

// LoadMonthly fetches the monthly report of a schedule.
func (l *ReportLoader) LoadMonthly(ctx context.Context, scheduleID string) (*dto.ReportPayload, error) {
	return l.load(ctx, scheduleID, l.client.MonthlyReport)
}

func (l *ReportLoader) load(ctx context.Context, scheduleID string, fetch func(context.Context, string) (*dto.ReportPayload, error)) (*dto.ReportPayload, error) {
	l.mu.Lock()
	l.latest++
	seq := l.latest
	l.mu.Unlock()

	report, err := fetch(ctx, scheduleID)

	l.mu.Lock()
	stale := seq != l.latest
	l.mu.Unlock()
	if stale {
		l.client.log.Debug("Discarding superseded report response",
			slog.String("schedule_id", scheduleID))
		return nil, ErrStaleResponse
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}
