// Package calendar computes month grids for the picker and holds the
// navigation/selection state that drives them.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Display and ISO layouts accepted by ParseDate.
const (
	DisplayLayout = "2006/01/02"
	ISOLayout     = "2006-01-02"
	MonthLayout   = "2006-01"
)

// CalendarDate is an immutable (year, month, day) value.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewDate validates and builds a CalendarDate.
func NewDate(year int, month time.Month, day int) (CalendarDate, error) {
	if month < time.January || month > time.December {
		return CalendarDate{}, &DateError{Op: "new", Year: year, Month: int(month), Day: day, Err: ErrInvalidDate}
	}
	if day < 1 || day > DaysIn(year, month) {
		return CalendarDate{}, &DateError{Op: "new", Year: year, Month: int(month), Day: day, Err: ErrInvalidDate}
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// MustDate is NewDate for literals known to be valid.
func MustDate(year int, month time.Month, day int) CalendarDate {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime takes the date portion of t in t's location.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// ParseDate accepts YYYY/MM/DD or YYYY-MM-DD.
func ParseDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DisplayLayout, ISOLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return CalendarDate{}, &DateError{Op: "parse", Input: s, Err: ErrInvalidDate}
}

func (d CalendarDate) Year() int { return d.year }
func (d CalendarDate) Month() time.Month { return d.month }
func (d CalendarDate) Day() int { return d.day }
func (d CalendarDate) IsZero() bool { return d.month == 0 }

// Valid reports whether d names a real day. The zero value is not valid.
func (d CalendarDate) Valid() bool {
	return d.YearMonth().Valid() && d.day >= 1 && d.day <= d.DaysInMonth()
}
func (d CalendarDate) YearMonth() YearMonth { return YearMonth{Year: d.year, Month: d.month} }

// Time returns midnight of the date in loc.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// ISOWeekday returns Monday=1 .. Sunday=7.
func (d CalendarDate) ISOWeekday() int {
	wd := int(d.Time(time.UTC).Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

func (d CalendarDate) DaysInMonth() int {
	return DaysIn(d.year, d.month)
}

func (d CalendarDate) FirstOfMonth() CalendarDate {
	return CalendarDate{year: d.year, month: d.month, day: 1}
}

// AddMonths moves by n whole months, clamping the day to the last day of
// the target month (Jan 31 + 1 month = Feb 28/29).
func (d CalendarDate) AddMonths(n int) CalendarDate {
	ym := d.YearMonth().AddMonths(n)
	day := d.day
	if last := ym.DaysInMonth(); day > last {
		day = last
	}
	return CalendarDate{year: ym.Year, month: ym.Month, day: day}
}

func (d CalendarDate) Equal(o CalendarDate) bool {
	return d == o
}

func (d CalendarDate) Before(o CalendarDate) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// Format renders the date with a time layout.
func (d CalendarDate) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

func (d CalendarDate) String() string {
	return d.Format(ISOLayout)
}

// YearMonth is a day-agnostic month, used as the grid reference.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth validates and builds a YearMonth.
func NewYearMonth(year int, month time.Month) (YearMonth, error) {
	ym := YearMonth{Year: year, Month: month}
	if !ym.Valid() {
		return YearMonth{}, &DateError{Op: "new month", Year: year, Month: int(month), Err: ErrInvalidDate}
	}
	return ym, nil
}

// ParseYearMonth accepts YYYY-MM.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return YearMonth{}, &DateError{Op: "parse month", Input: s, Err: ErrInvalidDate}
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// AddMonths normalizes across year boundaries in both directions.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + int(ym.Month-1) + n
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: time.Month(month + 1)}
}

func (ym YearMonth) Valid() bool {
	return ym.Month >= time.January && ym.Month <= time.December
}

// DaysInMonth is 0 for an invalid month.
func (ym YearMonth) DaysInMonth() int {
	return DaysIn(ym.Year, ym.Month)
}

func (ym YearMonth) FirstDay() CalendarDate {
	return CalendarDate{year: ym.Year, month: ym.Month, day: 1}
}

// Date resolves day inside the month.
func (ym YearMonth) Date(day int) (CalendarDate, error) {
	return NewDate(ym.Year, ym.Month, day)
}

func (ym YearMonth) Contains(d CalendarDate) bool {
	return d.year == ym.Year && d.month == ym.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// DaysIn returns the number of days of month in year, leap years included,
// and 0 when month is outside January..December.
func DaysIn(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}
