// Package utils holds small time-of-day helpers shared by the timetable and feed packages.
//
// All conversions are in UTC; a service date plus a time of day maps to exactly one
// Unix timestamp.
package utils
