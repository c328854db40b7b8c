package timetable

import (
	"golang.org/x/exp/slices"
)

// Stop is a station together with the arrival (or, for the base station, departure) time.
type Stop struct {
	Name string `yaml:"name" validate:"required"`
	Time Time   `yaml:"time"`
}

func (s Stop) String() string {
	return s.Name + " " + s.Time.String()
}

// Train is a snapshot of one train: its name and its stops ordered by time.
// The first stop is the base station, the last one the destination.
type Train struct {
	Name  string
	Stops []Stop
}

// NewTrain builds a Train value from stops given in schedule order.
func NewTrain(name string, stops ...Stop) Train {
	return Train{Name: name, Stops: slices.Clone(stops)}
}

// Departure returns the time the train leaves the base station.
func (t Train) Departure() Time {
	if len(t.Stops) == 0 {
		return Time{}
	}
	return t.Stops[0].Time
}

// Destination returns the last stop of the train.
func (t Train) Destination() Stop {
	if len(t.Stops) == 0 {
		return Stop{}
	}
	return t.Stops[len(t.Stops)-1]
}

// Arrival returns the arrival time at the destination.
func (t Train) Arrival() Time {
	return t.Destination().Time
}

// StopAt returns the first stop of the train at the given station.
func (t Train) StopAt(station string) (Stop, bool) {
	i := slices.IndexFunc(t.Stops, func(s Stop) bool { return s.Name == station })
	if i < 0 {
		return Stop{}, false
	}
	return t.Stops[i], true
}

// Equal reports whether both trains have the same name and the same stops.
func (t Train) Equal(other Train) bool {
	return t.Name == other.Name && slices.Equal(t.Stops, other.Stops)
}
