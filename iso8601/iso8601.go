// Package iso8601 parses ISO 8601 date and time notation into calendar values.
//
// Supported forms, in extended and basic notation:
//
//	YYYY-MM-DD   YYYYMMDD   calendar date
//	YYYY-Www-D   YYYYWwwD   week date
//	YYYY-DDD     YYYYDDD    ordinal date
//
// A date may be followed by 'T' (or a single space) and a time of day of the
// form hh, hh:mm, hh:mm:ss, hhmm or hhmmss. A time of day on its own must be
// prefixed with 'T'. Reduced precision dates (YYYY, YYYY-MM), fractional
// seconds and time zone designators are rejected.
//
// Input is normalized to NFKC first so that full-width digits and
// separators are accepted.
package iso8601

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ngrash/gregorian/calendar"
)

var (
	// ErrSyntax is wrapped by errors for malformed input.
	ErrSyntax = errors.New("invalid syntax")
	// ErrUnsupported is wrapped by errors for valid ISO 8601 notation this package does not handle.
	ErrUnsupported = errors.New("unsupported notation")
)

// ParseError is an error that occurred during parsing.
// Offset is the byte offset of the offending field within the normalized input.
type ParseError struct {
	Input  string
	Offset int
	Err    error
}

// Error returns a string representation of the parse error, implementing the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: offset %d: %v", e.Input, e.Offset, e.Err)
}

// Unwrap returns the underlying syntax or range error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses s into a DateTime. Out of range fields are reported with
// errors wrapping *calendar.OutOfRangeError.
func Parse(s string) (calendar.DateTime, error) {
	p := &parser{in: norm.NFKC.String(strings.TrimSpace(s))}
	return p.parse()
}

// MustParse is like Parse but panics on error.
func MustParse(s string) calendar.DateTime {
	dt, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return dt
}

type parser struct {
	in   string
	pos  int
	mark int // start of the field being parsed
}

func (p *parser) fail(err error) error {
	return &ParseError{Input: p.in, Offset: p.mark, Err: err}
}

func (p *parser) done() bool {
	return p.pos >= len(p.in)
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.in[p.pos]
}

func (p *parser) accept(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(c byte, after string) error {
	p.mark = p.pos
	if !p.accept(c) {
		return p.fail(fmt.Errorf("%w: expected %q after %s", ErrSyntax, c, after))
	}
	return nil
}

// run returns the number of consecutive digits at the current position.
func (p *parser) run() int {
	n := 0
	for p.pos+n < len(p.in) && '0' <= p.in[p.pos+n] && p.in[p.pos+n] <= '9' {
		n++
	}
	return n
}

// digits consumes exactly n digits.
func (p *parser) digits(n int, field string) (int, error) {
	p.mark = p.pos
	if p.run() < n {
		return 0, p.fail(fmt.Errorf("%w: %s must have %d digits", ErrSyntax, field, n))
	}
	v, err := strconv.Atoi(p.in[p.pos : p.pos+n])
	if err != nil {
		return 0, p.fail(fmt.Errorf("%s: %w", field, err))
	}
	p.pos += n
	return v, nil
}

// check wraps a range check failure of the field that was parsed last.
func (p *parser) check(err error) error {
	if err != nil {
		return p.fail(err)
	}
	return nil
}

func (p *parser) parse() (calendar.DateTime, error) {
	var dt calendar.DateTime
	if p.done() {
		return dt, p.fail(fmt.Errorf("%w: empty input", ErrSyntax))
	}

	if !p.accept('T') {
		date, err := p.date()
		if err != nil {
			return dt, err
		}
		dt.Date = date
		if p.done() {
			return dt, nil
		}
		p.mark = p.pos
		if !p.accept('T') && !p.accept(' ') {
			return dt, p.fail(fmt.Errorf("%w: unexpected %q after date", ErrSyntax, p.in[p.pos:]))
		}
	}

	t, err := p.time()
	if err != nil {
		return dt, err
	}
	dt.Time = t
	if !p.done() {
		p.mark = p.pos
		return dt, p.fail(p.trailing())
	}
	return dt, nil
}

func (p *parser) trailing() error {
	switch p.peek() {
	case 'Z', '+', '-':
		return fmt.Errorf("%w: time zone designator %q", ErrUnsupported, p.in[p.pos:])
	case '.', ',':
		return fmt.Errorf("%w: fractional time %q", ErrUnsupported, p.in[p.pos:])
	default:
		return fmt.Errorf("%w: unexpected %q after time", ErrSyntax, p.in[p.pos:])
	}
}

func (p *parser) date() (calendar.Date, error) {
	year, err := p.digits(4, "year")
	if err != nil {
		return nil, err
	}
	if err := p.check(calendar.CheckYear(year)); err != nil {
		return nil, err
	}

	extended := p.accept('-')
	if p.accept('W') {
		return p.weekDate(year, extended)
	}

	p.mark = p.pos
	switch n := p.run(); {
	case n == 3:
		return p.ordinalDate(year)
	case extended && n == 2, !extended && n == 4:
		return p.calendarDate(year, extended)
	case n == 0 && !extended && p.done():
		return nil, p.fail(fmt.Errorf("%w: reduced precision date", ErrUnsupported))
	default:
		return nil, p.fail(fmt.Errorf("%w: malformed date", ErrSyntax))
	}
}

func (p *parser) calendarDate(year int, extended bool) (calendar.Date, error) {
	month, err := p.digits(2, "month")
	if err != nil {
		return nil, err
	}
	if err := p.check(calendar.CheckMonth(month)); err != nil {
		return nil, err
	}
	if extended {
		if p.done() {
			return nil, p.fail(fmt.Errorf("%w: reduced precision date", ErrUnsupported))
		}
		if err := p.expect('-', "month"); err != nil {
			return nil, err
		}
	}
	day, err := p.digits(2, "day")
	if err != nil {
		return nil, err
	}
	leap, _ := calendar.IsLeapYear(year) // year is valid
	if err := p.check(calendar.CheckDay(month, day, leap)); err != nil {
		return nil, err
	}
	return calendar.CalendarDate{Year: year, Month: month, Day: day}, nil
}

func (p *parser) ordinalDate(year int) (calendar.Date, error) {
	day, err := p.digits(3, "day of year")
	if err != nil {
		return nil, err
	}
	leap, _ := calendar.IsLeapYear(year)
	if err := p.check(calendar.CheckYearday(day, leap)); err != nil {
		return nil, err
	}
	return calendar.OrdinalDate{Year: year, Day: day}, nil
}

func (p *parser) weekDate(year int, extended bool) (calendar.Date, error) {
	week, err := p.digits(2, "week")
	if err != nil {
		return nil, err
	}
	if err := p.check(calendar.CheckWeekOfYear(year, week)); err != nil {
		return nil, err
	}
	if extended {
		if err := p.expect('-', "week"); err != nil {
			return nil, err
		}
	}
	weekday, err := p.digits(1, "weekday")
	if err != nil {
		return nil, err
	}
	if err := p.check(calendar.CheckWeekday(weekday)); err != nil {
		return nil, err
	}
	return calendar.WeekDate{Year: year, Week: week, Weekday: weekday}, nil
}

func (p *parser) time() (calendar.TimeOfDay, error) {
	hour, err := p.digits(2, "hour")
	if err != nil {
		return calendar.TimeOfDay{}, err
	}
	if err := p.check(calendar.CheckHour(hour)); err != nil {
		return calendar.TimeOfDay{}, err
	}

	extended := p.accept(':')
	if !extended && p.run() < 2 {
		return calendar.NewHour(hour), nil
	}
	minute, err := p.digits(2, "minute")
	if err != nil {
		return calendar.TimeOfDay{}, err
	}
	if err := p.check(calendar.CheckMinute(minute)); err != nil {
		return calendar.TimeOfDay{}, err
	}

	if extended && !p.accept(':') || !extended && p.run() < 2 {
		return calendar.NewHourMinute(hour, minute), nil
	}
	second, err := p.digits(2, "second")
	if err != nil {
		return calendar.TimeOfDay{}, err
	}
	if err := p.check(calendar.CheckSecond(second)); err != nil {
		return calendar.TimeOfDay{}, err
	}
	return calendar.NewHMS(hour, minute, second), nil
}
