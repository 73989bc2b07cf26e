// Package scheduling implements the appointment validation rule set: the
// daily hour cap per workplace group, overlap exclusion, and the grace period
// between unrelated workplaces. The entry point is Validate, a pure decision
// function over the supplied collections; it never mutates or persists
// anything.
package scheduling

import (
	"github.com/shopspring/decimal"

	"github.com/ronanzenatti/agenda-semanal-trabalho/internal/core/domain"
)

// Candidate is a proposed appointment, new or edited, to be checked against
// the existing appointments of the same schedule.
type Candidate struct {
	WorkplaceID string
	DayOfWeek   int
	StartTime   domain.TimeOfDay
	EndTime     domain.TimeOfDay
}

// DurationHours returns the candidate's duration derived from its start and
// end times. Any client-supplied duration is ignored here so it cannot be used
// to dodge the daily cap.
func (c Candidate) DurationHours() decimal.Decimal {
	return domain.DeriveDurationHours(c.StartTime, c.EndTime)
}

// RelatedGroup resolves the workplace group of workplaceID: the workplace
// itself plus every workplace directly related to it, in either direction.
// The relation is stored one-way but treated as symmetric. Only one hop is
// chased; the data never carries longer chains.
func RelatedGroup(workplaceID string, workplaces []domain.Workplace) map[string]bool {
	group := map[string]bool{workplaceID: true}
	for i := range workplaces {
		w := &workplaces[i]
		if w.WorkplaceID == workplaceID && w.RelatedTo != nil {
			group[*w.RelatedTo] = true
		}
		if w.IsRelatedTo(workplaceID) {
			group[w.WorkplaceID] = true
		}
	}
	return group
}

// Validate decides whether the candidate is legal given the full appointment
// and workplace sets of its schedule. editingID, when non-empty, identifies
// the appointment being edited so it is excluded from every comparison.
//
// Checks run in order and the first failure wins:
//  1. the workplace must exist
//  2. the derived duration must be positive
//  3. the workplace group's total for that day must stay within the cap
//  4. the candidate must not overlap any appointment on that day
//  5. the gap to appointments at unrelated workplaces must not fall inside
//     the candidate workplace's grace period
func Validate(c Candidate, editingID string, existing []domain.Appointment, workplaces []domain.Workplace) error {
	var workplace *domain.Workplace
	for i := range workplaces {
		if workplaces[i].WorkplaceID == c.WorkplaceID {
			workplace = &workplaces[i]
			break
		}
	}
	if workplace == nil {
		return ErrInvalidWorkplace
	}

	duration := c.DurationHours()
	if !duration.IsPositive() {
		return ErrInvalidDuration
	}

	group := RelatedGroup(c.WorkplaceID, workplaces)

	sameDay := make([]*domain.Appointment, 0, len(existing))
	for i := range existing {
		a := &existing[i]
		if editingID != "" && a.AppointmentID == editingID {
			continue
		}
		if a.DayOfWeek == c.DayOfWeek {
			sameDay = append(sameDay, a)
		}
	}

	// Daily cap is shared by the whole workplace group, not per workplace.
	groupTotal := decimal.Zero
	for _, a := range sameDay {
		if group[a.WorkplaceID] {
			groupTotal = groupTotal.Add(a.DurationHours)
		}
	}
	if total := groupTotal.Add(duration); total.GreaterThan(domain.DailyCapHours) {
		return &DailyCapError{TotalHours: total, CapHours: domain.DailyCapHours}
	}

	// Half-open interval overlap; touching boundaries are allowed.
	for _, a := range sameDay {
		if c.StartTime.Before(a.EndTime) && c.EndTime.After(a.StartTime) {
			return &OverlapError{AppointmentID: a.AppointmentID, Start: a.StartTime, End: a.EndTime}
		}
	}

	// Grace period applies only against workplaces outside the group. A
	// negative gap means overlap, which check 4 already rejected.
	grace := workplace.GracePeriodMinutes
	for _, a := range sameDay {
		if group[a.WorkplaceID] {
			continue
		}
		gapBefore := c.StartTime.Sub(a.EndTime)
		gapAfter := a.StartTime.Sub(c.EndTime)
		if gapBefore >= 0 && gapBefore < grace {
			return &GracePeriodError{GraceMinutes: grace, GapMinutes: gapBefore}
		}
		if gapAfter >= 0 && gapAfter < grace {
			return &GracePeriodError{GraceMinutes: grace, GapMinutes: gapAfter}
		}
	}

	return nil
}
