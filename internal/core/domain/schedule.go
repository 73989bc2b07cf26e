package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Schedule is a named, dated container of appointments with its own displayed
// weekdays and display window. Deleting a schedule deletes its appointments.
type Schedule struct {
	ScheduleID        string    `json:"scheduleID"`
	Name              string    `json:"name"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	DisplayedWeekdays []int     `json:"displayedWeekdays"`
	DefaultStartHour  TimeOfDay `json:"defaultStartHour"`
	DefaultEndHour    TimeOfDay `json:"defaultEndHour"`
	AuditFields
}

// Display window defaults, applied when a schedule is created without them.
var (
	DefaultScheduleWeekdays  = []int{1, 2, 3, 4, 5, 6}
	DefaultScheduleStartHour = TimeOfDay{Minutes: 7 * 60}
	DefaultScheduleEndHour   = TimeOfDay{Minutes: 23 * 60}
)

// ScheduleWorkplaceRate is a per-schedule hourly rate override for a
// workplace, used only when reporting within that schedule.
type ScheduleWorkplaceRate struct {
	ScheduleID  string          `json:"scheduleID"`
	WorkplaceID string          `json:"workplaceID"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
}
