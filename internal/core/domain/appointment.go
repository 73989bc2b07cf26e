package domain

import "github.com/shopspring/decimal"

// Hour types. The hour type is opaque to most of the system; the aggregator
// treats HourTypeBonus entries as bonus hours paid at rate * (1 + bonus%).
const (
	HourTypeNormal = "normal"
	HourTypeBonus  = "HA"
)

// DailyCapHours is the maximum total duration allowed per day for a workplace
// and its related workplaces combined.
var DailyCapHours = decimal.NewFromInt(8)

// Appointment is a single recurring weekly time block at a workplace within a
// schedule. DayOfWeek follows time.Weekday numbering: 0 = Sunday.
type Appointment struct {
	AppointmentID string          `json:"appointmentID"`
	ScheduleID    string          `json:"scheduleID"`
	WorkplaceID   string          `json:"workplaceID"`
	DayOfWeek     int             `json:"dayOfWeek"`
	StartTime     TimeOfDay       `json:"startTime"`
	EndTime       TimeOfDay       `json:"endTime"`
	Description   string          `json:"description"`
	HourType      string          `json:"hourType"`
	DurationHours decimal.Decimal `json:"durationHours"`
	AuditFields
}

// IsBonusHours reports whether this appointment's hours qualify for the
// workplace bonus percentage.
func (a *Appointment) IsBonusHours() bool {
	return a.HourType == HourTypeBonus
}

// DeriveDurationHours computes the duration between start and end in hours,
// rounded to the nearest half hour. The stored duration on an appointment is a
// display hint; validation and reporting always work from the derived value so
// a mismatched client-supplied duration cannot dodge the daily cap.
func DeriveDurationHours(start, end TimeOfDay) decimal.Decimal {
	minutes := decimal.NewFromInt(int64(end.Sub(start)))
	hours := minutes.Div(decimal.NewFromInt(60))
	return hours.Mul(decimal.NewFromInt(2)).Round(0).Div(decimal.NewFromInt(2))
}
