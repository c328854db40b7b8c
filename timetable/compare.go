package timetable

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/exp/slices"
)

// Equal reports whether both timetables have the same base station and the same
// trains, stop for stop.
func (tt *Timetable) Equal(other *Timetable) bool {
	if tt == nil || other == nil {
		return tt == other
	}
	if tt.baseStation != other.baseStation || len(tt.trains) != len(other.trains) {
		return false
	}
	for name, stops := range tt.trains {
		otherStops, ok := other.trains[name]
		if !ok || !slices.Equal(stops, otherStops) {
			return false
		}
	}
	return true
}

// Hash returns a digest of the timetable contents. Equal timetables hash the same.
func (tt *Timetable) Hash() string {
	hash := sha256.New()

	hash.Write([]byte(tt.baseStation))
	hash.Write([]byte{0})

	names := make([]string, 0, len(tt.trains))
	for name := range tt.trains {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		hash.Write([]byte(name))
		hash.Write([]byte{0})
		for _, stop := range tt.trains[name] {
			hash.Write([]byte(stop.Name))
			hash.Write([]byte{0})
			fmt.Fprintf(hash, "%d:%d", stop.Time.Hour, stop.Time.Minute)
			hash.Write([]byte{0})
		}
		hash.Write([]byte{1})
	}

	return hex.EncodeToString(hash.Sum(nil))
}
