package calendar

// Second counts. Leap seconds are ignored.
const (
	SecondsOfSecond int64 = 1
	SecondsOfMinute       = 60 * SecondsOfSecond
	SecondsOfHour         = 60 * SecondsOfMinute
	SecondsOfDay          = 24 * SecondsOfHour

	// SecondsOf1969Years is the number of seconds before 1970-01-01 00:00:00.
	SecondsOf1969Years = DaysOf1969Years * SecondsOfDay

	// SecondsOf9999Years is the number of seconds in the years 1 through 9999
	// and therefore also the largest valid timestamp.
	SecondsOf9999Years = DaysOf9999Years * SecondsOfDay
)
