package calendar

// Weeknr returns the ISO 8601 week number of a day. Days early in January
// may belong to the last week of the previous year and days late in
// December may belong to week 1 of the next year; use ISOWeek to also
// learn the week-numbering year.
func Weeknr(year, yearday, weekday int) (int, error) {
	_, week, err := ISOWeek(year, yearday, weekday)
	return week, err
}

// ISOWeek returns the ISO 8601 week-numbering year and week of a day.
// The weekday must be the one of the given day.
func ISOWeek(year, yearday, weekday int) (weekYear, week int, err error) {
	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, 0, err
	}
	if err := CheckYearday(yearday, leap); err != nil {
		return 0, 0, err
	}
	if err := CheckWeekday(weekday); err != nil {
		return 0, 0, err
	}
	weekYear, week = isoWeek(year, yearday, weekday)
	return weekYear, week, nil
}

// isoWeek expects valid arguments.
func isoWeek(year, yearday, weekday int) (int, int) {
	week := (10 + yearday - weekday) / 7
	switch week {
	case 0:
		// Last week of the previous year. This never happens for year 1
		// because 0001-01-01 is a Monday.
		days := DaysInYear(isLeapYear(year - 1))
		dec31 := weekdayOf(daysBeforeYear(year))
		return year - 1, (10 + days - dec31) / 7
	case 53:
		// Week 53 only exists if January 1 of the next year falls on a
		// Friday, Saturday or Sunday.
		jan1 := weekdayOf(daysBeforeYear(year+1) + 1)
		if (10+1-jan1)/7 != 0 {
			return year + 1, 1
		}
	}
	return year, week
}

// WeeksInYear returns 52 or 53, the number of ISO weeks in year.
func WeeksInYear(year int) (int, error) {
	leap, err := IsLeapYear(year)
	if err != nil {
		return 0, err
	}
	// December 28 is always in the last week of its year.
	dec28 := DaysInYear(leap) - 3
	_, week := isoWeek(year, dec28, weekdayOf(daysBeforeYear(year)+dec28))
	return week, nil
}

// WeekToYearday returns the day of the year of a week date, given the
// weekday of January 4, which by definition lies in week 1.
// The result is outside of [1, DaysInYear] when the week date falls in the
// previous or next calendar year.
func WeekToYearday(week, weekday, weekdayOfJan4 int) (int, error) {
	if err := CheckWeek(week); err != nil {
		return 0, err
	}
	if err := CheckWeekday(weekday); err != nil {
		return 0, err
	}
	if err := CheckWeekday(weekdayOfJan4); err != nil {
		return 0, err
	}
	return weekToYearday(week, weekday, weekdayOfJan4), nil
}

func weekToYearday(week, weekday, weekdayOfJan4 int) int {
	return week*7 + weekday - (weekdayOfJan4 + 3)
}
