package config

// TimetableConfig selects the station the timetable is built for
type TimetableConfig struct {
	BaseStation string `yaml:"baseStation" validate:"required"`
}

// FeedConfig contains GTFS-Realtime export settings
type FeedConfig struct {
	AgencyID       string `yaml:"agencyID" validate:"required"`
	ServiceDate    string `yaml:"serviceDate" validate:"required,datetime=20060102"`
	Incrementality string `yaml:"incrementality" validate:"omitempty,oneof=full differential"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Timetable TimetableConfig `yaml:"timetable" validate:"required"`
	Feed      FeedConfig      `yaml:"feed" validate:"required"`
	Log       LogConfig       `yaml:"log"`
}
