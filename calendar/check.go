package calendar

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("out of range")

// OutOfRangeError reports a value outside of its closed interval [Min, Max].
type OutOfRangeError struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

// Error returns a string representation of the error, implementing the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func checkRange(field string, value, min, max int64) error {
	if value < min || value > max {
		return &OutOfRangeError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}

// Valid ranges of the unix timestamps that map onto [1, SecondsOf9999Years].
const (
	MinUnixtime = -SecondsOf1969Years
	MaxUnixtime = SecondsOf9999Years - SecondsOf1969Years - 1
)

// CheckYear checks that year is within 1 through 9999.
func CheckYear(year int) error {
	return checkRange("year", int64(year), 1, 9999)
}

// CheckMonth checks that month is within 1 through 12.
func CheckMonth(month int) error {
	return checkRange("month", int64(month), 1, 12)
}

// CheckDay checks day against the length of month. The month is checked first.
func CheckDay(month, day int, isLeapYear bool) error {
	if err := CheckMonth(month); err != nil {
		return err
	}
	field := fmt.Sprintf("day of month %d", month)
	if month == 2 && isLeapYear {
		field += " in a leap year"
	}
	return checkRange(field, int64(day), 1, int64(daysInMonth(month, isLeapYear)))
}

// CheckYearday checks yearday against the length of the year.
func CheckYearday(yearday int, isLeapYear bool) error {
	field := "yearday"
	if isLeapYear {
		field += " in a leap year"
	}
	return checkRange(field, int64(yearday), 1, int64(DaysInYear(isLeapYear)))
}

// CheckWeek checks that week is within 1 through 53.
func CheckWeek(week int) error {
	return checkRange("week", int64(week), 1, 53)
}

// CheckWeekOfYear checks week against the number of ISO weeks in year.
func CheckWeekOfYear(year, week int) error {
	if err := CheckWeek(week); err != nil {
		return err
	}
	weeks, err := WeeksInYear(year)
	if err != nil {
		return err
	}
	return checkRange(fmt.Sprintf("week of %04d", year), int64(week), 1, int64(weeks))
}

// CheckWeekday checks that weekday is within 1 (Monday) through 7 (Sunday).
func CheckWeekday(weekday int) error {
	return checkRange("weekday", int64(weekday), 1, 7)
}

// CheckHour checks that hour is within 0 through 23.
func CheckHour(hour int) error {
	return checkRange("hour", int64(hour), 0, 23)
}

// CheckMinute checks that minute is within 0 through 59.
func CheckMinute(minute int) error {
	return checkRange("minute", int64(minute), 0, 59)
}

// CheckSecond checks that second is within 0 through 59. Leap seconds are rejected.
func CheckSecond(second int) error {
	return checkRange("second", int64(second), 0, 59)
}

// CheckDaystamp checks that daystamp is within 1 through DaysOf9999Years.
func CheckDaystamp(daystamp int) error {
	return checkRange("daystamp", int64(daystamp), 1, DaysOf9999Years)
}

// CheckTimestamp checks that timestamp is within 1 through SecondsOf9999Years.
func CheckTimestamp(timestamp int64) error {
	return checkRange("timestamp", timestamp, 1, SecondsOf9999Years)
}

// CheckUnixtime checks that unixtime is within MinUnixtime through MaxUnixtime.
func CheckUnixtime(unixtime int64) error {
	return checkRange("unixtime", unixtime, MinUnixtime, MaxUnixtime)
}
