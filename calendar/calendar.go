// Package calendar implements a proleptic Gregorian calendar starting at
// Monday 0001-01-01 00:00:00 and ending at Friday 9999-12-31 23:59:59.
//
// Timestamps count seconds and daystamps count days since the start of the
// calendar. Both are 1-based: timestamp 1 is the first second of year 1 and
// daystamp 1 is its first day. Zero is never valid, which makes it usable as
// a sentinel. The last valid timestamp is 315537897600.
//
// All conversions use integer arithmetic over fixed-length leap cycles of
// 400, 100 and 4 years. Monday is the first day of the week and weeks are
// numbered according to ISO 8601. Leap seconds are ignored: they are
// announced only weeks in advance, and system clocks need regular
// synchronisation anyway.
package calendar

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) (bool, error) {
	if err := CheckYear(year); err != nil {
		return false, err
	}
	return isLeapYear(year), nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysBeforeYear returns the number of days between the start of the
// calendar and January 1 of year.
func DaysBeforeYear(year int) (int, error) {
	if err := CheckYear(year); err != nil {
		return 0, err
	}
	return daysBeforeYear(year), nil
}

// daysBeforeYear does not check year so that it can also be used for the
// year following 9999.
func daysBeforeYear(year int) int {
	y := year - 1 // the calendar starts at year 1
	return DaysOf400Years*(y/400) +
		DaysOf100Years*(y%400/100) +
		DaysOf4Years*(y%100/4) +
		DaysOfNormalYear*(y%4)
}

// YearToDaystamp returns the daystamp of January 1 of year.
func YearToDaystamp(year int) (int, error) {
	days, err := DaysBeforeYear(year)
	if err != nil {
		return 0, err
	}
	return days + 1, nil
}

// DaystampToYearDay converts a daystamp to its year and day of the year.
//
// The checks descend from the 400-year cycle to single years. Each cycle
// ends with its exceptional year, so the order of the checks matters.
func DaystampToYearDay(daystamp int) (YearDay, error) {
	if err := CheckDaystamp(daystamp); err != nil {
		return YearDay{}, err
	}
	d := daystamp - 1

	year := 1 + 400*(d/DaysOf400Years)
	d %= DaysOf400Years
	if d >= DaysOf399Years {
		return YearDay{Year: year + 399, Day: 1 + d - DaysOf399Years, IsLeapYear: true}, nil
	}

	year += 100 * (d / DaysOf100Years)
	d %= DaysOf100Years
	if d >= DaysOf99Years {
		// Century years are only leap years when divisible by 400, which
		// is covered above.
		return YearDay{Year: year + 99, Day: 1 + d - DaysOf99Years, IsLeapYear: false}, nil
	}

	year += 4 * (d / DaysOf4Years)
	d %= DaysOf4Years
	if d >= DaysOf3Years {
		return YearDay{Year: year + 3, Day: 1 + d - DaysOf3Years, IsLeapYear: true}, nil
	}

	return YearDay{Year: year + d/DaysOfNormalYear, Day: 1 + d%DaysOfNormalYear, IsLeapYear: false}, nil
}

// MonthToYearday returns the day of the year of the first day of month.
func MonthToYearday(month int, isLeapYear bool) (int, error) {
	if err := CheckMonth(month); err != nil {
		return 0, err
	}
	return monthToYearday(month, isLeapYear), nil
}

func monthToYearday(month int, isLeapYear bool) int {
	yearday := 1
	for m := 1; m < month; m++ {
		yearday += daysInMonth(m, isLeapYear)
	}
	return yearday
}

// YeardayToMonthDay converts a day of the year to its month and day of the month.
func YeardayToMonthDay(yearday int, isLeapYear bool) (MonthDay, error) {
	if err := CheckYearday(yearday, isLeapYear); err != nil {
		return MonthDay{}, err
	}
	d := yearday - 1
	month := 1
	for n := daysInMonth(month, isLeapYear); d >= n; n = daysInMonth(month, isLeapYear) {
		d -= n
		month++
	}
	return MonthDay{Month: month, Day: d + 1}, nil
}

// DaystampToWeekday returns the weekday of daystamp, 1 being Monday and 7 Sunday.
func DaystampToWeekday(daystamp int) (int, error) {
	if err := CheckDaystamp(daystamp); err != nil {
		return 0, err
	}
	return weekdayOf(daystamp), nil
}

// weekdayOf expects a positive daystamp. 0001-01-01 is a Monday.
func weekdayOf(daystamp int) int {
	return 1 + (daystamp-1)%DaysOfWeek
}

// WeekdayOfYearDay returns the weekday of the given day of year.
func WeekdayOfYearDay(year, yearday int) (int, error) {
	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, err
	}
	if err := CheckYearday(yearday, leap); err != nil {
		return 0, err
	}
	return weekdayOf(daysBeforeYear(year) + yearday), nil
}
