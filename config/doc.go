// Package config loads the YAML configuration: the base station, GTFS-Realtime
// export settings and logging.
//
// Example config.yml:
//
//	timetable:
//	  baseStation: "Moscow"
//	feed:
//	  agencyID: "RZD"
//	  serviceDate: "20260101"
//	log:
//	  level: "debug"
//	  format: "json"
package config
