package feed

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/transit-types/siri"

	"github.com/theoremus-urban-solutions/train-timetable/timetable"
	"github.com/theoremus-urban-solutions/train-timetable/utils"
)

const (
	siriVersion = "2.0"
	vehicleMode = "rail"
)

// BuildEstimatedTimetable converts trains to a SIRI ET delivery with one
// EstimatedVehicleJourney per train. Every stop is an EstimatedCall carrying the
// scheduled times, so expected times equal aimed ones.
func BuildEstimatedTimetable(trains []timetable.Train, opts Options, now time.Time) (siri.EstimatedTimetableDelivery, error) {
	agencyID := opts.AgencyID
	if agencyID == "" {
		agencyID = "UNKNOWN"
	}
	timestamp := utils.Iso8601FromUnixSeconds(now.Unix())

	journeys := make([]siri.EstimatedVehicleJourney, 0, len(trains))
	for _, train := range trains {
		journey, err := buildEstimatedVehicleJourney(train, agencyID, opts.ServiceDate, timestamp)
		if err != nil {
			return siri.EstimatedTimetableDelivery{}, fmt.Errorf("train %q: %w", train.Name, err)
		}
		journeys = append(journeys, journey)
	}

	frame := siri.EstimatedJourneyVersionFrame{
		RecordedAtTime:          timestamp,
		EstimatedVehicleJourney: journeys,
	}

	return siri.EstimatedTimetableDelivery{
		Version:                      siriVersion,
		ResponseTimestamp:            timestamp,
		EstimatedJourneyVersionFrame: []siri.EstimatedJourneyVersionFrame{frame},
	}, nil
}

func buildEstimatedVehicleJourney(train timetable.Train, agencyID, serviceDate, recordedAt string) (siri.EstimatedVehicleJourney, error) {
	if len(train.Stops) < 2 {
		return siri.EstimatedVehicleJourney{}, fmt.Errorf("needs at least two stops, has %d", len(train.Stops))
	}
	midnight, err := utils.ServiceDayEpoch(serviceDate, 0, 0)
	if err != nil {
		return siri.EstimatedVehicleJourney{}, err
	}

	calls := make([]siri.EstimatedCall, 0, len(train.Stops))
	last := len(train.Stops) - 1
	for order, stop := range train.Stops {
		epoch, err := utils.ServiceDayEpoch(serviceDate, stop.Time.Hour, stop.Time.Minute)
		if err != nil {
			return siri.EstimatedVehicleJourney{}, err
		}
		aimed := utils.Iso8601FromUnixSeconds(epoch)

		// StopPointRef as {codespace}:Quay:{station}
		call := siri.EstimatedCall{
			StopPointRef:  agencyID + ":Quay:" + stop.Name,
			Order:         order + 1,
			StopPointName: stop.Name,
		}
		if order > 0 {
			call.AimedArrivalTime = aimed
			call.ExpectedArrivalTime = aimed
			call.ArrivalStatus = "onTime"
		}
		if order < last {
			call.AimedDepartureTime = aimed
			call.ExpectedDepartureTime = aimed
			call.DepartureStatus = "onTime"
		}
		calls = append(calls, call)
	}

	return siri.EstimatedVehicleJourney{
		RecordedAtTime: recordedAt,
		LineRef:        agencyID + ":Line:" + train.Name,
		DirectionRef:   "0",
		FramedVehicleJourneyRef: siri.FramedVehicleJourneyRef{
			DataFrameRef:           utils.Iso8601DateFromUnixSeconds(midnight),
			DatedVehicleJourneyRef: agencyID + ":ServiceJourney:" + train.Name,
		},
		VehicleMode:            vehicleMode,
		OriginName:             train.Stops[0].Name,
		DestinationName:        train.Destination().Name,
		DataSource:             agencyID,
		OperatorRef:            agencyID,
		EstimatedCalls:         calls,
		IsCompleteStopSequence: true,
	}, nil
}
