package calendar

import (
	"errors"
	"fmt"
)

// ErrNoDate is returned when a DateTime without a date is converted to a timestamp.
var ErrNoDate = errors.New("no date form provided")

// TimestampToDaystamp returns the daystamp of the day timestamp falls on.
func TimestampToDaystamp(timestamp int64) (int, error) {
	if err := CheckTimestamp(timestamp); err != nil {
		return 0, err
	}
	return timestampToDaystamp(timestamp), nil
}

func timestampToDaystamp(timestamp int64) int {
	return int((timestamp-1)/SecondsOfDay) + 1
}

// TimestampToTimeOfDay returns the time of day of timestamp.
func TimestampToTimeOfDay(timestamp int64) (TimeOfDay, error) {
	if err := CheckTimestamp(timestamp); err != nil {
		return TimeOfDay{}, err
	}
	return timestampToTimeOfDay(timestamp), nil
}

func timestampToTimeOfDay(timestamp int64) TimeOfDay {
	s := (timestamp - 1) % SecondsOfDay
	return NewHMS(
		int(s/SecondsOfHour),
		int(s%SecondsOfHour/SecondsOfMinute),
		int(s%SecondsOfMinute/SecondsOfSecond),
	)
}

// YeardayToTimestamp returns the timestamp of 00:00:00 on the given day of year.
func YeardayToTimestamp(year, yearday int) (int64, error) {
	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, err
	}
	if err := CheckYearday(yearday, leap); err != nil {
		return 0, err
	}
	return dayToTimestamp(daysBeforeYear(year) + yearday), nil
}

func dayToTimestamp(daystamp int) int64 {
	return 1 + int64(daystamp-1)*SecondsOfDay
}

// TimeOfDayToSecondOffset returns the number of seconds since midnight.
func TimeOfDayToSecondOffset(hour, minute, second int) (int64, error) {
	if err := CheckHour(hour); err != nil {
		return 0, err
	}
	if err := CheckMinute(minute); err != nil {
		return 0, err
	}
	if err := CheckSecond(second); err != nil {
		return 0, err
	}
	return int64(hour)*SecondsOfHour + int64(minute)*SecondsOfMinute + int64(second)*SecondsOfSecond, nil
}

// SecondOffset returns the number of seconds since midnight, treating
// absent fields as zero.
func (t TimeOfDay) SecondOffset() (int64, error) {
	var hour, minute, second int
	switch t.Precision {
	case PrecisionSecond:
		second = t.Second
		fallthrough
	case PrecisionMinute:
		minute = t.Minute
		fallthrough
	case PrecisionHour:
		hour = t.Hour
	case PrecisionNone:
	default:
		return 0, checkRange("time precision", int64(t.Precision), int64(PrecisionNone), int64(PrecisionSecond))
	}
	return TimeOfDayToSecondOffset(hour, minute, second)
}

// TimestampToMoment resolves every calendar field of timestamp.
func TimestampToMoment(timestamp int64) (Moment, error) {
	if err := CheckTimestamp(timestamp); err != nil {
		return Moment{}, err
	}

	t := timestampToTimeOfDay(timestamp)
	daystamp := timestampToDaystamp(timestamp)
	yd, err := DaystampToYearDay(daystamp)
	if err != nil {
		return Moment{}, err
	}
	md, err := YeardayToMonthDay(yd.Day, yd.IsLeapYear)
	if err != nil {
		return Moment{}, err
	}
	wd := weekdayOf(daystamp)
	weekYear, week := isoWeek(yd.Year, yd.Day, wd)

	return Moment{
		Timestamp:  timestamp,
		Daystamp:   daystamp,
		Year:       yd.Year,
		IsLeapYear: yd.IsLeapYear,
		YearDay:    yd.Day,
		Month:      md.Month,
		Day:        md.Day,
		WeekYear:   weekYear,
		Week:       week,
		Weekday:    wd,
		Hour:       t.Hour,
		Minute:     t.Minute,
		Second:     t.Second,
	}, nil
}

// TimestampToDateTime returns the calendar date and time of day of timestamp.
func TimestampToDateTime(timestamp int64) (DateTime, error) {
	m, err := TimestampToMoment(timestamp)
	if err != nil {
		return DateTime{}, err
	}
	return m.DateTime(), nil
}

// DateTimeToTimestamp converts dt to a timestamp. Absent time fields count as zero.
func DateTimeToTimestamp(dt DateTime) (int64, error) {
	offset, err := dt.Time.SecondOffset()
	if err != nil {
		return 0, err
	}
	var ts int64
	switch d := dateValue(dt.Date).(type) {
	case OrdinalDate:
		ts, err = YeardayToTimestamp(d.Year, d.Day)
	case CalendarDate:
		ts, err = calendarDateToTimestamp(d)
	case WeekDate:
		ts, err = weekDateToTimestamp(d)
	case nil:
		return 0, ErrNoDate
	default:
		return 0, fmt.Errorf("unsupported date form %T", d)
	}
	if err != nil {
		return 0, err
	}
	return ts + offset, nil
}

// dateValue dereferences pointer date forms. A nil pointer yields a nil Date.
func dateValue(d Date) Date {
	switch p := d.(type) {
	case *OrdinalDate:
		if p == nil {
			return nil
		}
		return *p
	case *CalendarDate:
		if p == nil {
			return nil
		}
		return *p
	case *WeekDate:
		if p == nil {
			return nil
		}
		return *p
	}
	return d
}

func calendarDateToTimestamp(d CalendarDate) (int64, error) {
	leap, err := IsLeapYear(d.Year)
	if err != nil {
		return 0, err
	}
	if err := CheckDay(d.Month, d.Day, leap); err != nil {
		return 0, err
	}
	return YeardayToTimestamp(d.Year, monthToYearday(d.Month, leap)+d.Day-1)
}

func weekDateToTimestamp(d WeekDate) (int64, error) {
	if err := CheckYear(d.Year); err != nil {
		return 0, err
	}
	if err := CheckWeekOfYear(d.Year, d.Week); err != nil {
		return 0, err
	}
	if err := CheckWeekday(d.Weekday); err != nil {
		return 0, err
	}
	days := daysBeforeYear(d.Year)
	jan4 := weekdayOf(days + 4)
	ts := dayToTimestamp(days + weekToYearday(d.Week, d.Weekday, jan4))
	// The week may reach into year 10000.
	if err := CheckTimestamp(ts); err != nil {
		return 0, err
	}
	return ts, nil
}

// UnixToTimestamp converts seconds since 1970-01-01 00:00:00 to a timestamp.
func UnixToTimestamp(unixtime int64) (int64, error) {
	if err := CheckUnixtime(unixtime); err != nil {
		return 0, err
	}
	return unixtime + SecondsOf1969Years + 1, nil
}

// TimestampToUnix converts a timestamp to seconds since 1970-01-01 00:00:00.
func TimestampToUnix(timestamp int64) (int64, error) {
	if err := CheckTimestamp(timestamp); err != nil {
		return 0, err
	}
	return timestamp - SecondsOf1969Years - 1, nil
}
