package calendar

// Day counts of fixed-length year groups. Every group ends with its
// exceptional year: the leap year of a four-year group is its last one and
// the century year of a hundred-year group is its last one, which is what
// makes the closed-form decomposition in DaystampToYearDay exact.
const (
	DaysOfWeek       = 7
	DaysOfNormalYear = 365
	DaysOfLeapYear   = 366
	DaysOf3Years     = 3 * DaysOfNormalYear
	DaysOf4Years     = DaysOf3Years + DaysOfLeapYear
	DaysOf99Years    = 24*DaysOf4Years + DaysOf3Years
	DaysOf100Years   = DaysOf99Years + DaysOfNormalYear
	DaysOf399Years   = 3*DaysOf100Years + DaysOf99Years
	DaysOf400Years   = DaysOf399Years + DaysOfLeapYear

	// DaysOf1969Years is the number of days before 1970-01-01.
	DaysOf1969Years = 4*DaysOf400Years + 3*DaysOf100Years + 17*DaysOf4Years + DaysOfNormalYear

	// DaysOf9999Years is the number of days in the years 1 through 9999.
	DaysOf9999Years = 24*DaysOf400Years + 3*DaysOf100Years + 24*DaysOf4Years + DaysOf3Years
)

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(month int, isLeapYear bool) (int, error) {
	if err := CheckMonth(month); err != nil {
		return 0, err
	}
	return daysInMonth(month, isLeapYear), nil
}

// daysInMonth expects a valid month.
//
// Outside of February, months alternate between 31 and 30 days with the
// parity flipping at August:
//
//	m      1  3  4  5  6  7  8  9 10 11 12
//	m&8>>3 0  0  0  0  0  0  1  1  1  1  1
//	m&1    1  1  0  1  0  1  0  1  0  1  0
//	xor    1  1  0  1  0  1  1  0  1  0  1
func daysInMonth(month int, isLeapYear bool) int {
	if month == 2 {
		if isLeapYear {
			return 29
		}
		return 28
	}
	return 30 + ((month&8)>>3 ^ month&1)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(isLeapYear bool) int {
	if isLeapYear {
		return DaysOfLeapYear
	}
	return DaysOfNormalYear
}
