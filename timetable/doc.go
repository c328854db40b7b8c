/*
Package timetable keeps the train schedule of a single departure station in memory.

A Timetable is created for one base station. Every train registered in it starts at
that station and ends at its own destination; intermediate stops can be added,
retimed and removed afterwards.

# Basic Usage

	tt := timetable.New("Moscow")

	ok, err := tt.AddTrain("Sapsan 752", timetable.At(8, 0), timetable.Stop{Name: "St. Petersburg", Time: timetable.At(12, 0)})
	if err != nil {
	    // destination is not after departure, or reuses the base station
	}

	// New intermediate stop: returns true
	added, err := tt.AddStop("Sapsan 752", timetable.Stop{Name: "Tver", Time: timetable.At(9, 10)})

	// Existing stop retimed: returns false
	added, err = tt.AddStop("Sapsan 752", timetable.Stop{Name: "Tver", Time: timetable.At(9, 15)})

	// Every train, by departure from the base station
	all := tt.Trains()

	// Trains leaving at or after 08:30 that call at Tver, by arrival at Tver
	toTver := tt.TrainsTo(timetable.At(8, 30), "Tver")

# Invariants

For every train the stops are strictly increasing in time, the first stop is the base
station, the last stop is the destination, and no station appears twice. Operations
that would break one of these return an error wrapping ErrInvalidArgument and leave the
timetable untouched. Outcomes that simply do not apply (adding an existing train,
removing an unknown one, removing an endpoint stop) are reported through the boolean
result with a nil error.

# Concurrency

A Timetable has no internal locking. Callers that share one across goroutines must
serialize mutations themselves; concurrent reads are fine while no mutation runs.
*/
package timetable
