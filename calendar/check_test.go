package calendar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChecks(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want *OutOfRangeError
	}{
		{"year 0", CheckYear(0), &OutOfRangeError{"year", 0, 1, 9999}},
		{"year 1", CheckYear(1), nil},
		{"year 9999", CheckYear(9999), nil},
		{"year 10000", CheckYear(10000), &OutOfRangeError{"year", 10000, 1, 9999}},
		{"month 0", CheckMonth(0), &OutOfRangeError{"month", 0, 1, 12}},
		{"month 12", CheckMonth(12), nil},
		{"month 13", CheckMonth(13), &OutOfRangeError{"month", 13, 1, 12}},
		{"Feb 29 normal", CheckDay(2, 29, false), &OutOfRangeError{"day of month 2", 29, 1, 28}},
		{"Feb 29 leap", CheckDay(2, 29, true), nil},
		{"Feb 30 leap", CheckDay(2, 30, true), &OutOfRangeError{"day of month 2 in a leap year", 30, 1, 29}},
		{"Apr 31", CheckDay(4, 31, false), &OutOfRangeError{"day of month 4", 31, 1, 30}},
		{"day 0", CheckDay(1, 0, false), &OutOfRangeError{"day of month 1", 0, 1, 31}},
		{"day of month 13", CheckDay(13, 1, false), &OutOfRangeError{"month", 13, 1, 12}},
		{"yearday 366 normal", CheckYearday(366, false), &OutOfRangeError{"yearday", 366, 1, 365}},
		{"yearday 366 leap", CheckYearday(366, true), nil},
		{"yearday 0 leap", CheckYearday(0, true), &OutOfRangeError{"yearday in a leap year", 0, 1, 366}},
		{"week 0", CheckWeek(0), &OutOfRangeError{"week", 0, 1, 53}},
		{"week 53", CheckWeek(53), nil},
		{"week 54", CheckWeek(54), &OutOfRangeError{"week", 54, 1, 53}},
		{"week 53 of 2004", CheckWeekOfYear(2004, 53), nil},
		{"week 53 of 2005", CheckWeekOfYear(2005, 53), &OutOfRangeError{"week of 2005", 53, 1, 52}},
		{"weekday 0", CheckWeekday(0), &OutOfRangeError{"weekday", 0, 1, 7}},
		{"weekday 8", CheckWeekday(8), &OutOfRangeError{"weekday", 8, 1, 7}},
		{"hour 24", CheckHour(24), &OutOfRangeError{"hour", 24, 0, 23}},
		{"hour -1", CheckHour(-1), &OutOfRangeError{"hour", -1, 0, 23}},
		{"minute 60", CheckMinute(60), &OutOfRangeError{"minute", 60, 0, 59}},
		{"second 60", CheckSecond(60), &OutOfRangeError{"second", 60, 0, 59}},
		{"second 0", CheckSecond(0), nil},
		{"daystamp 0", CheckDaystamp(0), &OutOfRangeError{"daystamp", 0, 1, 3652059}},
		{"daystamp max", CheckDaystamp(DaysOf9999Years), nil},
		{"timestamp 0", CheckTimestamp(0), &OutOfRangeError{"timestamp", 0, 1, 315537897600}},
		{"timestamp max+1", CheckTimestamp(315537897601), &OutOfRangeError{"timestamp", 315537897601, 1, 315537897600}},
		{"unixtime 0", CheckUnixtime(0), nil},
		{"unixtime min", CheckUnixtime(-62135596800), nil},
		{"unixtime min-1", CheckUnixtime(-62135596801), &OutOfRangeError{"unixtime", -62135596801, -62135596800, 253402300799}},
		{"unixtime max+1", CheckUnixtime(253402300800), &OutOfRangeError{"unixtime", 253402300800, -62135596800, 253402300799}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.want == nil {
				if c.err != nil {
					t.Fatalf("unexpected error: %v", c.err)
				}
				return
			}
			var got *OutOfRangeError
			if !errors.As(c.err, &got) {
				t.Fatalf("error = %v, want *OutOfRangeError", c.err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
			if !errors.Is(c.err, ErrOutOfRange) {
				t.Errorf("errors.Is(%v, ErrOutOfRange) = false", c.err)
			}
		})
	}
}

func TestOutOfRangeErrorMessage(t *testing.T) {
	err := CheckMonth(13)
	want := "month 13 out of range [1, 12]"
	if err == nil || err.Error() != want {
		t.Errorf("CheckMonth(13) = %v, want %q", err, want)
	}
}
