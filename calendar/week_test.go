package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestISOWeek(t *testing.T) {
	type in struct {
		Year, Yearday, Weekday int
	}
	type want struct {
		WeekYear, Week int
	}
	cases := []struct {
		name string
		in   in
		want want
	}{
		{"first day of the calendar", in{1, 1, 1}, want{1, 1}},
		// 1999-12-31 is a Friday
		{"1999-12-31", in{1999, 365, 5}, want{1999, 52}},
		// 2000-01-01 is a Saturday and belongs to the last week of 1999
		{"2000-01-01", in{2000, 1, 6}, want{1999, 52}},
		{"2000-01-02", in{2000, 2, 7}, want{1999, 52}},
		{"2000-01-03", in{2000, 3, 1}, want{2000, 1}},
		// 2004-12-31 is a Friday in week 53
		{"2004-12-31", in{2004, 366, 5}, want{2004, 53}},
		// 2005-01-01 is a Saturday in week 53 of 2004
		{"2005-01-01", in{2005, 1, 6}, want{2004, 53}},
		// 2008-12-31 is a Wednesday in week 1 of 2009
		{"2008-12-31", in{2008, 366, 3}, want{2009, 1}},
		// 2008-12-29 is a Monday in week 1 of 2009
		{"2008-12-29", in{2008, 364, 1}, want{2009, 1}},
		{"2010-01-03", in{2010, 3, 7}, want{2009, 53}},
		{"9999-12-31", in{9999, 365, 5}, want{9999, 52}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			y, w, err := ISOWeek(c.in.Year, c.in.Yearday, c.in.Weekday)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, want{y, w}); diff != "" {
				t.Errorf("ISOWeek(%+v) mismatch (-want +got):\n%s", c.in, diff)
			}
			week, err := Weeknr(c.in.Year, c.in.Yearday, c.in.Weekday)
			if err != nil {
				t.Fatal(err)
			}
			if week != c.want.Week {
				t.Errorf("Weeknr(%+v) = %d, want %d", c.in, week, c.want.Week)
			}
		})
	}
}

func TestISOWeek_Invalid(t *testing.T) {
	cases := []struct {
		year, yearday, weekday int
	}{
		{0, 1, 1},
		{2001, 366, 1},
		{2000, 0, 1},
		{2000, 1, 0},
		{2000, 1, 8},
	}
	for _, c := range cases {
		if _, err := Weeknr(c.year, c.yearday, c.weekday); err == nil {
			t.Errorf("Weeknr(%d, %d, %d) succeeded, want error", c.year, c.yearday, c.weekday)
		}
	}
}

// Compare every week number near the turn of the year with the time package.
func TestISOWeek_AgreesWithTimePackage(t *testing.T) {
	for year := 1; year <= 9999; year++ {
		leap := isLeapYear(year)
		days := DaysInYear(leap)
		for _, yd := range []int{1, 2, 3, 4, 5, 6, 7, 100, days - 6, days - 5, days - 4, days - 3, days - 2, days - 1, days} {
			d := daysBeforeYear(year) + yd
			wd := weekdayOf(d)
			gotYear, gotWeek, err := ISOWeek(year, yd, wd)
			if err != nil {
				t.Fatalf("ISOWeek(%d, %d, %d) error: %v", year, yd, wd, err)
			}
			wantYear, wantWeek := civil(d).ISOWeek()
			if gotYear != wantYear || gotWeek != wantWeek {
				t.Fatalf("ISOWeek(%d, %d, %d) = %d-W%02d, time package says %d-W%02d",
					year, yd, wd, gotYear, gotWeek, wantYear, wantWeek)
			}
		}
	}
}

func TestWeeksInYear(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{1999, 52},
		{2004, 53},
		{2009, 53},
		{2015, 53},
		{2020, 53},
		{2021, 52},
		{2026, 53},
	}
	for _, c := range cases {
		got, err := WeeksInYear(c.year)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", c.year, got, c.want)
		}
	}

	for year := 1; year <= 9999; year += 7 {
		got, err := WeeksInYear(year)
		if err != nil {
			t.Fatal(err)
		}
		_, want := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
		if got != want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestWeekToYearday(t *testing.T) {
	cases := []struct {
		name                         string
		week, weekday, weekdayOfJan4 int
		want                         int
	}{
		// 2004-01-04 is a Sunday, so week 1 starts on 2003-12-29.
		{"2004-W01-1", 1, 1, 7, -2},
		{"2004-W01-4", 1, 4, 7, 1},
		{"2004-W53-5", 53, 5, 7, 366},
		// 2009-01-04 is a Sunday too.
		{"2009-W01-1", 1, 1, 7, -2},
		// 2010-01-04 is a Monday.
		{"2010-W01-1", 1, 1, 1, 4},
		// 2021-01-04 is a Monday.
		{"2021-W52-7", 52, 7, 1, 367},
	}
	for _, c := range cases {
		got, err := WeekToYearday(c.week, c.weekday, c.weekdayOfJan4)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: WeekToYearday(%d, %d, %d) = %d, want %d", c.name, c.week, c.weekday, c.weekdayOfJan4, got, c.want)
		}
	}

	if _, err := WeekToYearday(54, 1, 1); err == nil {
		t.Error("WeekToYearday(54, 1, 1) succeeded, want error")
	}
	if _, err := WeekToYearday(1, 1, 0); err == nil {
		t.Error("WeekToYearday(1, 1, 0) succeeded, want error")
	}
}
