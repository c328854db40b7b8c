package traintimetable

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/theoremus-urban-solutions/transit-types/siri"

	"github.com/theoremus-urban-solutions/train-timetable/config"
	"github.com/theoremus-urban-solutions/train-timetable/feed"
	"github.com/theoremus-urban-solutions/train-timetable/internal"
	"github.com/theoremus-urban-solutions/train-timetable/timetable"
	"github.com/theoremus-urban-solutions/train-timetable/utils"
)

// Environment bundles the loaded configuration with the timetable it configures.
type Environment struct {
	Config      config.AppConfig
	Timetable   *timetable.Timetable
	FeedOptions feed.Options
}

// Setup loads the configuration (see config.LoadAppConfig for the path search),
// initializes logging and creates an empty timetable for the configured base station.
func Setup(paths ...string) (*Environment, error) {
	cfg, err := config.LoadAppConfig(paths...)
	if err != nil {
		return nil, err
	}
	return NewEnvironment(cfg), nil
}

// NewEnvironment is Setup for an already loaded configuration.
func NewEnvironment(cfg config.AppConfig) *Environment {
	internal.InitLogging(cfg.Log)
	env := &Environment{
		Config:      cfg,
		Timetable:   timetable.New(cfg.Timetable.BaseStation, timetable.WithLogger(log.Logger)),
		FeedOptions: feed.OptionsFromConfig(cfg.Feed),
	}
	log.Info().
		Str("baseStation", cfg.Timetable.BaseStation).
		Str("agencyID", cfg.Feed.AgencyID).
		Str("serviceDate", cfg.Feed.ServiceDate).
		Msg("timetable ready")
	return env
}

// ExportFeed encodes every train of the timetable as a GTFS-Realtime feed.
func (e *Environment) ExportFeed(now time.Time) ([]byte, error) {
	trains := e.Timetable.Trains()
	data, err := feed.Marshal(trains, e.FeedOptions, now)
	if err != nil {
		return nil, fmt.Errorf("failed to export feed: %w", err)
	}
	log.Debug().
		Int("trains", len(trains)).
		Int("bytes", len(data)).
		Str("timestamp", utils.Iso8601FromUnixSeconds(now.Unix())).
		Msg("feed exported")
	return data, nil
}

// EstimatedTimetable renders every train of the timetable as a SIRI ET delivery.
func (e *Environment) EstimatedTimetable(now time.Time) (siri.EstimatedTimetableDelivery, error) {
	et, err := feed.BuildEstimatedTimetable(e.Timetable.Trains(), e.FeedOptions, now)
	if err != nil {
		return siri.EstimatedTimetableDelivery{}, fmt.Errorf("failed to build estimated timetable: %w", err)
	}
	return et, nil
}

// ImportFeed replaces the timetable with the trains found in a feed. The current
// timetable is kept if the feed does not describe a valid timetable.
func (e *Environment) ImportFeed(data []byte) error {
	tt, err := feed.Load(data, e.Config.Timetable.BaseStation, timetable.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("failed to import feed: %w", err)
	}
	e.Timetable = tt
	log.Info().Int("trains", tt.Len()).Msg("feed imported")
	return nil
}
