package feed

import (
	"fmt"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/train-timetable/config"
	"github.com/theoremus-urban-solutions/train-timetable/timetable"
	"github.com/theoremus-urban-solutions/train-timetable/utils"
)

const gtfsRealtimeVersion = "2.0"

// Options controls how trains are placed in a feed
type Options struct {
	AgencyID       string
	ServiceDate    string // YYYYMMDD
	Incrementality string // full|differential
}

// OptionsFromConfig maps the feed section of the configuration
func OptionsFromConfig(cfg config.FeedConfig) Options {
	return Options{
		AgencyID:       cfg.AgencyID,
		ServiceDate:    cfg.ServiceDate,
		Incrementality: cfg.Incrementality,
	}
}

// EntityID returns the feed entity id used for a train: {agency}_{train}
func EntityID(agencyID, train string) string {
	if agencyID == "" {
		return train
	}
	return agencyID + "_" + train
}

// BuildFeedMessage creates a TripUpdates feed with one entity per train, in the given order
func BuildFeedMessage(trains []timetable.Train, opts Options, now time.Time) (*gtfsrtpb.FeedMessage, error) {
	incrementality := gtfsrtpb.FeedHeader_FULL_DATASET
	if opts.Incrementality == "differential" {
		incrementality = gtfsrtpb.FeedHeader_DIFFERENTIAL
	}
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String(gtfsRealtimeVersion),
			Incrementality:      incrementality.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
		Entity: make([]*gtfsrtpb.FeedEntity, 0, len(trains)),
	}
	for _, train := range trains {
		tu, err := buildTripUpdate(train, opts)
		if err != nil {
			return nil, fmt.Errorf("train %q: %w", train.Name, err)
		}
		fm.Entity = append(fm.Entity, &gtfsrtpb.FeedEntity{
			Id:         proto.String(EntityID(opts.AgencyID, train.Name)),
			TripUpdate: tu,
		})
	}
	return fm, nil
}

func buildTripUpdate(train timetable.Train, opts Options) (*gtfsrtpb.TripUpdate, error) {
	if len(train.Stops) < 2 {
		return nil, fmt.Errorf("needs at least two stops, has %d", len(train.Stops))
	}
	departure := train.Departure()
	tu := &gtfsrtpb.TripUpdate{
		Trip: &gtfsrtpb.TripDescriptor{
			TripId:               proto.String(train.Name),
			StartDate:            proto.String(opts.ServiceDate),
			StartTime:            proto.String(utils.FormatGTFSClock(departure.Hour, departure.Minute)),
			ScheduleRelationship: gtfsrtpb.TripDescriptor_SCHEDULED.Enum(),
		},
		StopTimeUpdate: make([]*gtfsrtpb.TripUpdate_StopTimeUpdate, 0, len(train.Stops)),
	}
	last := len(train.Stops) - 1
	for i, stop := range train.Stops {
		epoch, err := utils.ServiceDayEpoch(opts.ServiceDate, stop.Time.Hour, stop.Time.Minute)
		if err != nil {
			return nil, err
		}
		stu := &gtfsrtpb.TripUpdate_StopTimeUpdate{
			StopSequence:         proto.Uint32(uint32(i + 1)),
			StopId:               proto.String(stop.Name),
			ScheduleRelationship: gtfsrtpb.TripUpdate_StopTimeUpdate_SCHEDULED.Enum(),
		}
		if i > 0 {
			stu.Arrival = &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(epoch)}
		}
		if i < last {
			stu.Departure = &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(epoch)}
		}
		tu.StopTimeUpdate = append(tu.StopTimeUpdate, stu)
	}
	return tu, nil
}

// Marshal builds the feed message and encodes it as protobuf bytes
func Marshal(trains []timetable.Train, opts Options, now time.Time) ([]byte, error) {
	fm, err := BuildFeedMessage(trains, opts, now)
	if err != nil {
		return nil, err
	}
	b, err := proto.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feed message: %w", err)
	}
	return b, nil
}
