package domain

import (
	"time"
	_ "time/tzdata"
)

// Location is the local time zone of every eatery.
var Location = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// DayBounds returns the [start, end) Unix window of the local calendar day
// that is offset days away from now.
func DayBounds(now time.Time, offset int) (int64, int64) {
	local := now.In(Location)
	start := time.Date(local.Year(), local.Month(), local.Day()+offset, 0, 0, 0, 0, Location)
	end := time.Date(local.Year(), local.Month(), local.Day()+offset+1, 0, 0, 0, 0, Location)
	return start.Unix(), end.Unix()
}

// TimeWindow is a half-open [Start, End) range of Unix seconds.
type TimeWindow struct {
	Start int64
	End   int64
}

func Today(now time.Time) TimeWindow {
	start, end := DayBounds(now, 0)
	return TimeWindow{Start: start, End: end}
}
