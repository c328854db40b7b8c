package timetable

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Timetable stores the trains departing from one base station.
type Timetable struct {
	baseStation string
	trains      map[string][]Stop // train name -> stops ordered by time
	logger      zerolog.Logger
}

// Option configures a Timetable in New.
type Option func(*Timetable)

// WithLogger sets the logger used for mutation events. Defaults to the global zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(tt *Timetable) {
		tt.logger = logger
	}
}

// New creates an empty timetable for baseStation.
func New(baseStation string, opts ...Option) *Timetable {
	tt := &Timetable{
		baseStation: baseStation,
		trains:      map[string][]Stop{},
		logger:      log.Logger,
	}
	for _, opt := range opts {
		opt(tt)
	}
	tt.logger = tt.logger.With().Str("baseStation", baseStation).Logger()
	return tt
}

// BaseStation returns the station every train departs from.
func (tt *Timetable) BaseStation() string { return tt.baseStation }

// Len returns the number of trains.
func (tt *Timetable) Len() int { return len(tt.trains) }

// AddTrain registers a train leaving the base station at depart and arriving at
// destination. It returns false without changes if the train already exists.
func (tt *Timetable) AddTrain(train string, depart Time, destination Stop) (bool, error) {
	if _, ok := tt.trains[train]; ok {
		tt.logger.Debug().Str("train", train).Msg("train already registered")
		return false, nil
	}
	if destination.Name == tt.baseStation {
		return false, tt.reject(train, destination, fmt.Errorf("%w: destination %q is the base station", ErrDuplicateStation, destination.Name))
	}
	if !destination.Time.After(depart) {
		return false, tt.reject(train, destination, fmt.Errorf("%w: arrival %s is not after departure %s", ErrTimeOrder, destination.Time, depart))
	}

	tt.trains[train] = []Stop{
		{Name: tt.baseStation, Time: depart},
		destination,
	}
	tt.logger.Debug().Str("train", train).Stringer("departure", depart).Stringer("destination", destination).Msg("train added")
	return true, nil
}

// RemoveTrain deletes a train with all of its stops. It returns false if the train
// does not exist.
func (tt *Timetable) RemoveTrain(train string) bool {
	if _, ok := tt.trains[train]; !ok {
		return false
	}
	delete(tt.trains, train)
	tt.logger.Debug().Str("train", train).Msg("train removed")
	return true
}

// AddStop adds an intermediate stop or retimes an existing one.
//
// A station the train does not call at yet becomes an intermediate stop and true is
// returned. A station already on the schedule gets its time updated and false is
// returned. The base station may only move to an earlier departure. The destination
// may move earlier or later as long as it stays after every other stop. Intermediate
// stops must stay strictly between departure and arrival. A time already used by another stop of the train is an error.
func (tt *Timetable) AddStop(train string, stop Stop) (bool, error) {
	stops, ok := tt.trains[train]
	if !ok {
		return false, tt.reject(train, stop, fmt.Errorf("%w %q", ErrUnknownTrain, train))
	}

	idx := indexOfStation(stops, stop.Name)
	if taken, found := indexOfTime(stops, stop.Time); found && taken != idx {
		return false, tt.reject(train, stop, fmt.Errorf("%w: %s is used by %q", ErrTimeCollision, stop.Time, stops[taken].Name))
	}

	first, last := stops[0], stops[len(stops)-1]
	switch idx {
	case -1:
		if !stop.Time.After(first.Time) || !stop.Time.Before(last.Time) {
			return false, tt.reject(train, stop, fmt.Errorf("%w: %s not within %s-%s", ErrOutOfInterval, stop.Time, first.Time, last.Time))
		}
		tt.trains[train] = insertByTime(stops, stop)
		tt.logger.Debug().Str("train", train).Stringer("stop", stop).Msg("stop added")
		return true, nil

	case 0:
		if !stop.Time.Before(first.Time) {
			return false, tt.reject(train, stop, fmt.Errorf("%w: departure may only move earlier than %s", ErrTimeOrder, first.Time))
		}
		stops[0].Time = stop.Time

	case len(stops) - 1:
		previous := stops[len(stops)-2].Time
		if !stop.Time.After(previous) {
			return false, tt.reject(train, stop, fmt.Errorf("%w: arrival must be after %s", ErrTimeOrder, previous))
		}
		stops[len(stops)-1].Time = stop.Time

	default:
		if !stop.Time.After(first.Time) || !stop.Time.Before(last.Time) {
			return false, tt.reject(train, stop, fmt.Errorf("%w: %s not within %s-%s", ErrOutOfInterval, stop.Time, first.Time, last.Time))
		}
		stops = slices.Delete(stops, idx, idx+1)
		tt.trains[train] = insertByTime(stops, stop)
	}

	tt.logger.Debug().Str("train", train).Stringer("stop", stop).Msg("stop retimed")
	return false, nil
}

// RemoveStop removes an intermediate stop. It returns false if the train does not
// call at stopName or if stopName is the base station or the destination.
func (tt *Timetable) RemoveStop(train, stopName string) (bool, error) {
	stops, ok := tt.trains[train]
	if !ok {
		return false, tt.reject(train, Stop{Name: stopName}, fmt.Errorf("%w %q", ErrUnknownTrain, train))
	}
	idx := indexOfStation(stops, stopName)
	if idx <= 0 || idx == len(stops)-1 {
		return false, nil
	}
	tt.trains[train] = slices.Delete(stops, idx, idx+1)
	tt.logger.Debug().Str("train", train).Str("stop", stopName).Msg("stop removed")
	return true, nil
}

func (tt *Timetable) reject(train string, stop Stop, err error) error {
	tt.logger.Debug().Err(err).Str("train", train).Stringer("stop", stop).Msg("change rejected")
	return err
}

func indexOfStation(stops []Stop, name string) int {
	return slices.IndexFunc(stops, func(s Stop) bool { return s.Name == name })
}

// indexOfTime relies on stops being ordered by time.
func indexOfTime(stops []Stop, t Time) (int, bool) {
	return slices.BinarySearchFunc(stops, t, func(s Stop, target Time) int {
		return s.Time.Compare(target)
	})
}

func insertByTime(stops []Stop, stop Stop) []Stop {
	i, _ := indexOfTime(stops, stop.Time)
	return slices.Insert(stops, i, stop)
}
