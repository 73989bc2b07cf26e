package scheduling_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/utils/scheduling"
)

func stringPtr(s string) *string { return &s }

func workplace(id string, grace int, relatedTo *string) domain.Workplace {
	return domain.Workplace{
		WorkplaceID:        id,
		Name:               "Workplace " + id,
		GracePeriodMinutes: grace,
		RelatedTo:          relatedTo,
	}
}

func appointment(id, workplaceID string, day int, start, end string) domain.Appointment {
	s := domain.MustTimeOfDay(start)
	e := domain.MustTimeOfDay(end)
	return domain.Appointment{
		AppointmentID: id,
		ScheduleID:    "sched-1",
		WorkplaceID:   workplaceID,
		DayOfWeek:     day,
		StartTime:     s,
		EndTime:       e,
		DurationHours: domain.DeriveDurationHours(s, e),
	}
}

func candidate(workplaceID string, day int, start, end string) scheduling.Candidate {
	return scheduling.Candidate{
		WorkplaceID: workplaceID,
		DayOfWeek:   day,
		StartTime:   domain.MustTimeOfDay(start),
		EndTime:     domain.MustTimeOfDay(end),
	}
}

func TestValidate_WorkplaceAndDuration(t *testing.T) {
	workplaces := []domain.Workplace{workplace("a", 60, nil)}

	tests := []struct {
		name    string
		c       scheduling.Candidate
		wantErr error
	}{
		{
			name:    "unknown workplace",
			c:       candidate("ghost", 1, "08:00", "10:00"),
			wantErr: scheduling.ErrInvalidWorkplace,
		},
		{
			name:    "end equals start",
			c:       candidate("a", 1, "08:00", "08:00"),
			wantErr: scheduling.ErrInvalidDuration,
		},
		{
			name:    "end before start",
			c:       candidate("a", 1, "10:00", "08:00"),
			wantErr: scheduling.ErrInvalidDuration,
		},
		{
			name: "valid block",
			c:    candidate("a", 1, "08:00", "10:00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scheduling.Validate(tt.c, "", nil, workplaces)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_DailyCap(t *testing.T) {
	workplaces := []domain.Workplace{workplace("a", 60, nil)}
	existing := []domain.Appointment{
		appointment("appt-1", "a", 1, "08:00", "12:00"), // 4h
	}

	// 4h existing + 4h candidate = exactly 8h, still allowed
	err := scheduling.Validate(candidate("a", 1, "13:00", "17:00"), "", existing, workplaces)
	assert.NoError(t, err)

	// 4h existing + 4.5h candidate breaches the cap
	err = scheduling.Validate(candidate("a", 1, "13:00", "17:30"), "", existing, workplaces)
	require.Error(t, err)
	assert.ErrorIs(t, err, scheduling.ErrDailyCapExceeded)

	var capErr *scheduling.DailyCapError
	require.True(t, errors.As(err, &capErr))
	assert.True(t, capErr.TotalHours.Equal(decimal.RequireFromString("8.5")), "got %s", capErr.TotalHours)
	assert.True(t, capErr.CapHours.Equal(decimal.NewFromInt(8)))

	// Same load on another day is unaffected
	err = scheduling.Validate(candidate("a", 2, "13:00", "17:30"), "", existing, workplaces)
	assert.NoError(t, err)
}

func TestValidate_CapSharedAcrossRelatedGroup(t *testing.T) {
	// b declares the relation; the cap must bind in both directions.
	workplaces := []domain.Workplace{
		workplace("a", 60, nil),
		workplace("b", 60, stringPtr("a")),
		workplace("c", 60, nil),
	}
	existing := []domain.Appointment{
		appointment("appt-1", "a", 1, "08:00", "13:00"), // 5h at a
	}

	// 5h at a + 4h at b exceeds the shared 8h budget
	err := scheduling.Validate(candidate("b", 1, "14:00", "18:00"), "", existing, workplaces)
	assert.ErrorIs(t, err, scheduling.ErrDailyCapExceeded)

	// 5h at a + 3h at b fits exactly
	err = scheduling.Validate(candidate("b", 1, "14:00", "17:00"), "", existing, workplaces)
	assert.NoError(t, err)

	// c is unrelated, so it has its own budget (far enough away for grace)
	err = scheduling.Validate(candidate("c", 1, "15:00", "19:00"), "", existing, workplaces)
	assert.NoError(t, err)
}

func TestValidate_Overlap(t *testing.T) {
	workplaces := []domain.Workplace{workplace("a", 60, nil)}
	existing := []domain.Appointment{
		appointment("appt-1", "a", 1, "09:00", "11:00"),
	}

	tests := []struct {
		name    string
		start   string
		end     string
		overlap bool
	}{
		{name: "contained", start: "09:30", end: "10:30", overlap: true},
		{name: "spanning", start: "08:00", end: "12:00", overlap: true},
		{name: "head overlap", start: "08:00", end: "09:30", overlap: true},
		{name: "tail overlap", start: "10:30", end: "12:00", overlap: true},
		{name: "touching end", start: "11:00", end: "12:00", overlap: false},
		{name: "touching start", start: "08:00", end: "09:00", overlap: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scheduling.Validate(candidate("a", 1, tt.start, tt.end), "", existing, workplaces)
			if tt.overlap {
				require.Error(t, err)
				assert.ErrorIs(t, err, scheduling.ErrTimeOverlap)

				var overlapErr *scheduling.OverlapError
				require.True(t, errors.As(err, &overlapErr))
				assert.Equal(t, "appt-1", overlapErr.AppointmentID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_GracePeriod(t *testing.T) {
	workplaces := []domain.Workplace{
		workplace("a", 60, nil),
		workplace("b", 60, nil),
		workplace("c", 60, stringPtr("a")),
	}
	existing := []domain.Appointment{
		appointment("appt-1", "b", 1, "08:00", "12:00"),
	}

	// 30 minute gap after an unrelated workplace: rejected
	err := scheduling.Validate(candidate("a", 1, "12:30", "14:00"), "", existing, workplaces)
	require.Error(t, err)
	assert.ErrorIs(t, err, scheduling.ErrGracePeriodViolation)

	var graceErr *scheduling.GracePeriodError
	require.True(t, errors.As(err, &graceErr))
	assert.Equal(t, 60, graceErr.GraceMinutes)
	assert.Equal(t, 30, graceErr.GapMinutes)

	// Exactly the grace period: allowed
	err = scheduling.Validate(candidate("a", 1, "13:00", "14:30"), "", existing, workplaces)
	assert.NoError(t, err)

	// Candidate before the existing block with a short gap: rejected too
	err = scheduling.Validate(candidate("a", 1, "06:00", "07:30"), "", existing, workplaces)
	assert.ErrorIs(t, err, scheduling.ErrGracePeriodViolation)

	// Back to back with a related workplace: no grace between group members
	related := []domain.Appointment{
		appointment("appt-2", "c", 1, "08:00", "12:00"),
	}
	err = scheduling.Validate(candidate("a", 1, "12:00", "14:00"), "", related, workplaces)
	assert.NoError(t, err)
}

func TestValidate_EditingExcludesSelf(t *testing.T) {
	workplaces := []domain.Workplace{workplace("a", 60, nil)}
	existing := []domain.Appointment{
		appointment("appt-1", "a", 1, "09:00", "11:00"),
	}

	// Rescheduling the same appointment over its own slot must not trip the
	// overlap check, and its old duration must not count toward the cap.
	err := scheduling.Validate(candidate("a", 1, "09:30", "11:30"), "appt-1", existing, workplaces)
	assert.NoError(t, err)

	// A different appointment still conflicts.
	err = scheduling.Validate(candidate("a", 1, "09:30", "11:30"), "appt-other", existing, workplaces)
	assert.ErrorIs(t, err, scheduling.ErrTimeOverlap)
}

func TestRelatedGroup(t *testing.T) {
	workplaces := []domain.Workplace{
		workplace("a", 60, nil),
		workplace("b", 60, stringPtr("a")),
		workplace("c", 60, stringPtr("a")),
		workplace("d", 60, nil),
	}

	group := scheduling.RelatedGroup("a", workplaces)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, group)

	group = scheduling.RelatedGroup("b", workplaces)
	assert.Equal(t, map[string]bool{"a": true, "b": true}, group)

	group = scheduling.RelatedGroup("d", workplaces)
	assert.Equal(t, map[string]bool{"d": true}, group)
}

func TestCandidate_DurationHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "two hours", start: "08:00", end: "10:00", want: "2"},
		{name: "half hour", start: "08:00", end: "08:30", want: "0.5"},
		{name: "rounds to nearest half", start: "08:00", end: "09:20", want: "1.5"},
		{name: "rounds down", start: "08:00", end: "09:10", want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate("a", 1, tt.start, tt.end)
			got := c.DurationHours()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
