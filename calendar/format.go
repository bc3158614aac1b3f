package calendar

import "fmt"

// String returns the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String returns the date as YYYY-Www-D.
func (d WeekDate) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", d.Year, d.Week, d.Weekday)
}

// String returns the date as YYYY-DDD.
func (d OrdinalDate) String() string {
	return fmt.Sprintf("%04d-%03d", d.Year, d.Day)
}

// String returns the time as THH:MM:SS or THH:MM, or the empty string if no
// field is present. A time with only the hour renders as THH:00.
func (t TimeOfDay) String() string {
	switch t.Precision {
	case PrecisionSecond:
		return fmt.Sprintf("T%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	case PrecisionMinute:
		return fmt.Sprintf("T%02d:%02d", t.Hour, t.Minute)
	case PrecisionHour:
		return fmt.Sprintf("T%02d:00", t.Hour)
	default:
		return ""
	}
}

// String returns the date followed by the time of day.
func (dt DateTime) String() string {
	d := dateValue(dt.Date)
	if d == nil {
		return dt.Time.String()
	}
	return d.String() + dt.Time.String()
}
