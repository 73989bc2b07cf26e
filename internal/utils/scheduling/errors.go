package scheduling

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// Sentinel errors for the appointment rule set. Use with errors.Is().
var (
	// ErrInvalidWorkplace is returned when the candidate references an
	// unknown workplace.
	ErrInvalidWorkplace = errors.New("workplace does not exist")

	// ErrInvalidDuration is returned when the candidate's derived duration
	// is not positive.
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrDailyCapExceeded is returned when the candidate would push the
	// workplace group past the daily hour cap.
	ErrDailyCapExceeded = errors.New("daily hour cap exceeded")

	// ErrTimeOverlap is returned when the candidate overlaps an existing
	// appointment on the same day.
	ErrTimeOverlap = errors.New("appointment times overlap")

	// ErrGracePeriodViolation is returned when the candidate sits too close
	// to an appointment at an unrelated workplace.
	ErrGracePeriodViolation = errors.New("grace period violated")
)

// DailyCapError reports the total that tripped the cap, so the caller can
// render a precise message.
type DailyCapError struct {
	TotalHours decimal.Decimal
	CapHours   decimal.Decimal
}

func (e *DailyCapError) Error() string {
	return fmt.Sprintf("daily hour cap exceeded: %s of %s hours", e.TotalHours, e.CapHours)
}

func (e *DailyCapError) Unwrap() error { return ErrDailyCapExceeded }

// OverlapError carries the existing appointment the candidate collided with.
type OverlapError struct {
	AppointmentID string
	Start         domain.TimeOfDay
	End           domain.TimeOfDay
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("appointment overlaps existing block %s-%s", e.Start, e.End)
}

func (e *OverlapError) Unwrap() error { return ErrTimeOverlap }

// GracePeriodError carries the configured grace minutes of the candidate's
// workplace and the offending gap.
type GracePeriodError struct {
	GraceMinutes int
	GapMinutes   int
}

func (e *GracePeriodError) Error() string {
	return fmt.Sprintf("grace period of %d minutes violated: gap of %d minutes to an unrelated workplace", e.GraceMinutes, e.GapMinutes)
}

func (e *GracePeriodError) Unwrap() error { return ErrGracePeriodViolation }

// IsRuleViolation reports whether err is any of the appointment rule
// violations, i.e. a client error rather than an infrastructure failure.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrInvalidWorkplace) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrDailyCapExceeded) ||
		errors.Is(err, ErrTimeOverlap) ||
		errors.Is(err, ErrGracePeriodViolation)
}
