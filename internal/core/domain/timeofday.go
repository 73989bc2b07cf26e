package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TimeOfDay is a naive wall-clock time within a single day, stored as minutes
// since midnight. The wire format is "HH:MM".
type TimeOfDay struct {
	Minutes int
}

// ParseTimeOfDay parses an "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay{Minutes: h*60 + m}, nil
}

// MustTimeOfDay parses an "HH:MM" string and panics on failure. Intended for
// tests and constants.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Minutes/60, t.Minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Minutes < other.Minutes }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.Minutes > other.Minutes }

// Sub returns the difference t - other in minutes.
func (t TimeOfDay) Sub(other TimeOfDay) int { return t.Minutes - other.Minutes }

// Value implements driver.Valuer, storing the time as an "HH:MM" string.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner, reading an "HH:MM" string column.
func (t *TimeOfDay) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("time of day must be an HH:MM string: %w", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
