// Package unixtime bridges time.Time and calendar timestamps.
// Sub-second precision and locations are dropped: every time.Time is
// converted to UTC first.
package unixtime

import (
	"fmt"
	"time"

	"github.com/ngrash/gregorian/calendar"
)

// FromTime returns the calendar timestamp of t.
func FromTime(t time.Time) (int64, error) {
	return calendar.UnixToTimestamp(t.Unix())
}

// ToTime returns the UTC time of a calendar timestamp.
func ToTime(timestamp int64) (time.Time, error) {
	unix, err := calendar.TimestampToUnix(timestamp)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0).UTC(), nil
}

// Now returns the calendar timestamp of the current second. It fails when
// the system clock is outside of the years 1 through 9999.
func Now() (int64, error) {
	ts, err := FromTime(time.Now())
	if err != nil {
		return 0, fmt.Errorf("system clock: %w", err)
	}
	return ts, nil
}
