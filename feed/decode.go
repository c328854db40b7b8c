package feed

import (
	"errors"
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/train-timetable/timetable"
	"github.com/theoremus-urban-solutions/train-timetable/utils"
)

var ErrMalformedTrip = errors.New("malformed trip update")

// Unmarshal decodes protobuf bytes and returns the trains it describes, in feed order.
// Entities without a trip update are skipped.
func Unmarshal(data []byte) ([]timetable.Train, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("failed to decode feed message: %w", err)
	}
	return TrainsFromFeedMessage(&fm)
}

// TrainsFromFeedMessage extracts trains from an already decoded feed
func TrainsFromFeedMessage(fm *gtfsrtpb.FeedMessage) ([]timetable.Train, error) {
	trains := make([]timetable.Train, 0, len(fm.GetEntity()))
	for _, e := range fm.GetEntity() {
		tu := e.GetTripUpdate()
		if tu == nil {
			continue
		}
		train, err := trainFromTripUpdate(tu)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.GetId(), err)
		}
		trains = append(trains, train)
	}
	return trains, nil
}

func trainFromTripUpdate(tu *gtfsrtpb.TripUpdate) (timetable.Train, error) {
	trip := tu.GetTrip()
	if trip.GetTripId() == "" {
		return timetable.Train{}, fmt.Errorf("%w: missing trip_id", ErrMalformedTrip)
	}
	serviceDate := trip.GetStartDate()
	stops := make([]timetable.Stop, 0, len(tu.GetStopTimeUpdate()))
	for _, stu := range tu.GetStopTimeUpdate() {
		epoch, ok := stopTimeEpoch(stu)
		if !ok {
			return timetable.Train{}, fmt.Errorf("%w: stop %q has no time", ErrMalformedTrip, stu.GetStopId())
		}
		hour, minute, err := utils.ClockFromEpoch(serviceDate, epoch)
		if err != nil {
			return timetable.Train{}, fmt.Errorf("%w: stop %q: %v", ErrMalformedTrip, stu.GetStopId(), err)
		}
		stop := timetable.Stop{Name: stu.GetStopId(), Time: timetable.At(hour, minute)}
		if err := stop.Validate(); err != nil {
			return timetable.Train{}, err
		}
		stops = append(stops, stop)
	}
	if len(stops) < 2 {
		return timetable.Train{}, fmt.Errorf("%w: trip %q has %d stops", ErrMalformedTrip, trip.GetTripId(), len(stops))
	}
	return timetable.NewTrain(trip.GetTripId(), stops...), nil
}

// stopTimeEpoch prefers the arrival time and falls back to the departure time
func stopTimeEpoch(stu *gtfsrtpb.TripUpdate_StopTimeUpdate) (int64, bool) {
	if a := stu.GetArrival(); a != nil && a.Time != nil {
		return a.GetTime(), true
	}
	if d := stu.GetDeparture(); d != nil && d.Time != nil {
		return d.GetTime(), true
	}
	return 0, false
}

// Load decodes a feed and rebuilds a timetable for baseStation through AddTrain and
// AddStop, so every schedule invariant is checked again. Each trip must start at
// baseStation.
func Load(data []byte, baseStation string, opts ...timetable.Option) (*timetable.Timetable, error) {
	trains, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	tt := timetable.New(baseStation, opts...)
	for _, train := range trains {
		if err := addTrain(tt, train); err != nil {
			return nil, fmt.Errorf("train %q: %w", train.Name, err)
		}
	}
	return tt, nil
}

func addTrain(tt *timetable.Timetable, train timetable.Train) error {
	origin := train.Stops[0]
	if origin.Name != tt.BaseStation() {
		return fmt.Errorf("%w: starts at %q, not %q", ErrMalformedTrip, origin.Name, tt.BaseStation())
	}
	added, err := tt.AddTrain(train.Name, origin.Time, train.Destination())
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("%w: duplicate trip", ErrMalformedTrip)
	}
	for _, stop := range train.Stops[1 : len(train.Stops)-1] {
		added, err := tt.AddStop(train.Name, stop)
		if err != nil {
			return err
		}
		if !added {
			return fmt.Errorf("%w: station %q listed twice", ErrMalformedTrip, stop.Name)
		}
	}
	return nil
}
