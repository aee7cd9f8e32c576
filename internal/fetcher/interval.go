package fetcher

import (
	"fmt"
	"time"
)

const intervalTimeLayout = "2006-01-02 15:04:05"

// Interval is an inclusive received-time window. Either bound may be nil,
// in which case that side is unbounded.
type Interval struct {
	Start *time.Time
	End   *time.Time
}

// TodayInterval returns the window from the start of the current local day
// (00:00:00) to the current instant.
func TodayInterval() Interval {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Interval{Start: &start, End: &now}
}

// Validate fails when both bounds are set and the start is after the end.
func (iv Interval) Validate() error {
	if iv.Start != nil && iv.End != nil && iv.Start.After(*iv.End) {
		return fmt.Errorf("interval start %s is after interval end %s",
			iv.Start.Format(intervalTimeLayout), iv.End.Format(intervalTimeLayout))
	}
	return nil
}

// Contains reports whether t falls within the interval. Both bounds are inclusive.
func (iv Interval) Contains(t time.Time) bool {
	if iv.Start != nil && t.Before(*iv.Start) {
		return false
	}
	if iv.End != nil && t.After(*iv.End) {
		return false
	}
	return true
}

func (iv Interval) String() string {
	start := "unbounded"
	if iv.Start != nil {
		start = iv.Start.Format(intervalTimeLayout)
	}
	end := "unbounded"
	if iv.End != nil {
		end = iv.End.Format(intervalTimeLayout)
	}
	return fmt.Sprintf("[%s, %s]", start, end)
}
