package utils

import (
	"fmt"
	"time"
)

// ServiceDateFormat is the GTFS start_date layout (YYYYMMDD).
const ServiceDateFormat = "20060102"

// FormatClock formats a time of day as HH:MM
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatGTFSClock formats a time of day as the GTFS HH:MM:SS string
func FormatGTFSClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}

// ServiceDayEpoch returns the Unix time of hour:minute on the given service date (UTC)
func ServiceDayEpoch(serviceDate string, hour, minute int) (int64, error) {
	day, err := time.ParseInLocation(ServiceDateFormat, serviceDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid service date %q: %w", serviceDate, err)
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute).Unix(), nil
}

// ClockFromEpoch converts a Unix time back to a time of day on the given service date.
// Epochs outside that day are rejected.
func ClockFromEpoch(serviceDate string, epoch int64) (int, int, error) {
	day, err := time.ParseInLocation(ServiceDateFormat, serviceDate, time.UTC)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid service date %q: %w", serviceDate, err)
	}
	offset := time.Unix(epoch, 0).UTC().Sub(day)
	if offset < 0 || offset >= 24*time.Hour {
		return 0, 0, fmt.Errorf("epoch %d is not on service date %s", epoch, serviceDate)
	}
	return int(offset / time.Hour), int(offset%time.Hour) / int(time.Minute), nil
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// Iso8601DateFromUnixSeconds returns just the date portion in YYYY-MM-DD format
func Iso8601DateFromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02")
}
