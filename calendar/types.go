package calendar

// YearDay is a day identified by its position within its year.
// IsLeapYear is derived from Year and carried along so that callers do not
// have to recompute it.
type YearDay struct {
	Year       int
	Day        int
	IsLeapYear bool
}

// MonthDay is a day identified by its month and its day of the month.
type MonthDay struct {
	Month int
	Day   int
}

// Precision tells which fields of a TimeOfDay are present.
// A field is present if and only if all fields before it are present.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
)

// TimeOfDay is a possibly partial wall clock time.
// Fields beyond Precision are ignored.
type TimeOfDay struct {
	Hour      int
	Minute    int
	Second    int
	Precision Precision
}

// NewHour returns a TimeOfDay with only the hour set.
func NewHour(hour int) TimeOfDay {
	return TimeOfDay{Hour: hour, Precision: PrecisionHour}
}

// NewHourMinute returns a TimeOfDay with hour and minute set.
func NewHourMinute(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Precision: PrecisionMinute}
}

// NewHMS returns a TimeOfDay with all fields set.
func NewHMS(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Precision: PrecisionSecond}
}

// Date is one of OrdinalDate, CalendarDate or WeekDate.
type Date interface {
	isDate()
	String() string
}

// OrdinalDate is a date of the form YYYY-DDD.
type OrdinalDate struct {
	Year int
	Day  int
}

// CalendarDate is a date of the form YYYY-MM-DD.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// WeekDate is an ISO 8601 week date of the form YYYY-Www-D.
// Year is the ISO week-numbering year, which differs from the calendar
// year for some days around January 1.
type WeekDate struct {
	Year    int
	Week    int
	Weekday int
}

func (OrdinalDate) isDate()  {}
func (CalendarDate) isDate() {}
func (WeekDate) isDate()     {}

// DateTime is a date in one of the three date forms, optionally combined
// with a time of day. A DateTime without a Date cannot be converted to a
// timestamp.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// Moment holds every field of a resolved timestamp.
type Moment struct {
	Timestamp  int64 `yaml:"timestamp"`
	Daystamp   int   `yaml:"daystamp"`
	Year       int   `yaml:"year"`
	IsLeapYear bool  `yaml:"leap_year"`
	YearDay    int   `yaml:"yearday"`
	Month      int   `yaml:"month"`
	Day        int   `yaml:"day"`
	WeekYear   int   `yaml:"week_year"`
	Week       int   `yaml:"week"`
	Weekday    int   `yaml:"weekday"`
	Hour       int   `yaml:"hour"`
	Minute     int   `yaml:"minute"`
	Second     int   `yaml:"second"`
}

// CalendarDate returns the year, month and day of m.
func (m Moment) CalendarDate() CalendarDate {
	return CalendarDate{Year: m.Year, Month: m.Month, Day: m.Day}
}

// WeekDate returns the ISO week date of m. Its year is the week-numbering year.
func (m Moment) WeekDate() WeekDate {
	return WeekDate{Year: m.WeekYear, Week: m.Week, Weekday: m.Weekday}
}

// OrdinalDate returns the year and day of year of m.
func (m Moment) OrdinalDate() OrdinalDate {
	return OrdinalDate{Year: m.Year, Day: m.YearDay}
}

// TimeOfDay returns the time of day of m with second precision.
func (m Moment) TimeOfDay() TimeOfDay {
	return NewHMS(m.Hour, m.Minute, m.Second)
}

// DateTime returns the calendar form of m with the full time of day.
func (m Moment) DateTime() DateTime {
	return DateTime{Date: m.CalendarDate(), Time: m.TimeOfDay()}
}
