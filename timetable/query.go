package timetable

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Train returns a copy of the named train.
func (tt *Timetable) Train(name string) (Train, bool) {
	stops, ok := tt.trains[name]
	if !ok {
		return Train{}, false
	}
	return NewTrain(name, stops...), true
}

// Trains returns every train ordered by departure from the base station.
// Trains departing at the same time are ordered by name.
func (tt *Timetable) Trains() []Train {
	trains := tt.snapshot(func(Train) bool { return true })
	slices.SortFunc(trains, func(a, b Train) int {
		if c := a.Departure().Compare(b.Departure()); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return trains
}

// TrainsTo returns the trains departing at or after currentTime that call at
// destination (as any of their stops), ordered by arrival time at destination.
func (tt *Timetable) TrainsTo(currentTime Time, destination string) []Train {
	trains := tt.snapshot(func(t Train) bool {
		if t.Departure().Before(currentTime) {
			return false
		}
		_, ok := t.StopAt(destination)
		return ok
	})
	slices.SortFunc(trains, func(a, b Train) int {
		at, _ := a.StopAt(destination)
		bt, _ := b.StopAt(destination)
		if c := at.Time.Compare(bt.Time); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return trains
}

func (tt *Timetable) snapshot(keep func(Train) bool) []Train {
	trains := make([]Train, 0, len(tt.trains))
	for name, stops := range tt.trains {
		// the filter sees the live slice; only kept trains are copied
		if t := (Train{Name: name, Stops: stops}); keep(t) {
			trains = append(trains, NewTrain(name, stops...))
		}
	}
	return trains
}
