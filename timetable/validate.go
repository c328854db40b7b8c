package timetable

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate reports whether t is a real time of day (00:00 to 23:59).
func (t Time) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: time %s: %v", ErrInvalidStopValues, t, err)
	}
	return nil
}

// Validate reports whether s has a station name and a real time of day.
func (s Stop) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: stop %q: %v", ErrInvalidStopValues, s.Name, err)
	}
	return nil
}
