// Package feed converts timetable snapshots to and from GTFS-Realtime TripUpdates.
//
// Each train becomes one FeedEntity whose TripUpdate lists every stop in order.
// The base station carries only a departure, the destination only an arrival, and
// intermediate stops carry both with the same time. Times are absolute epochs on the
// configured service date (UTC).
//
//	data, err := feed.Marshal(tt.Trains(), feed.Options{AgencyID: "RZD", ServiceDate: "20260101"}, time.Now())
//
//	restored, err := feed.Load(data, tt.BaseStation())
//	restored.Equal(tt) // true
//
// BuildEstimatedTimetable renders the same snapshot as a SIRI ET delivery, one
// EstimatedVehicleJourney per train with the base station as OriginName.
package feed
