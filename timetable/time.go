package timetable

import (
	"github.com/theoremus-urban-solutions/train-timetable/utils"
)

// Time is a wall-clock time of day. Hour and Minute are not range checked by the
// Timetable; use Validate on values that come from outside.
type Time struct {
	Hour   int `yaml:"hour" validate:"gte=0,lte=23"`
	Minute int `yaml:"minute" validate:"gte=0,lte=59"`
}

// At is shorthand for Time{Hour: hour, Minute: minute}.
func At(hour, minute int) Time {
	return Time{Hour: hour, Minute: minute}
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.Hour < u.Hour:
		return -1
	case t.Hour > u.Hour:
		return 1
	case t.Minute < u.Minute:
		return -1
	case t.Minute > u.Minute:
		return 1
	}
	return 0
}

// Before reports whether t is earlier than u.
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }

// After reports whether t is later than u.
func (t Time) After(u Time) bool { return t.Compare(u) > 0 }

// String formats t as HH:MM.
func (t Time) String() string {
	return utils.FormatClock(t.Hour, t.Minute)
}
