package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestNewDateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"month thirteen", 2024, 13, 1},
		{"month zero", 2024, 0, 1},
		{"day zero", 2024, time.March, 0},
		{"feb 30", 2024, time.February, 30},
		{"feb 29 non leap", 2023, time.February, 29},
		{"april 31", 2024, time.April, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("NewDate(%d, %d, %d) err = %v, want ErrInvalidDate", tt.year, tt.month, tt.day, err)
			}
			var de *DateError
			if !errors.As(err, &de) || de.Op != "new" {
				t.Fatalf("expected *DateError with op new, got %#v", err)
			}
		})
	}
}

func TestNewDateLeapDay(t *testing.T) {
	d, err := NewDate(2024, time.February, 29)
	if err != nil {
		t.Fatalf("NewDate failed: %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Fatalf("String() = %q", d.String())
	}
}

func TestParseDate(t *testing.T) {
	want := MustDate(2024, time.February, 15)
	for _, in := range []string{"2024/02/15", "2024-02-15", "  2024/02/15 "} {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "2024/13/01", "2024/02/30", "15.02.2024", "tomorrow"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q) err = %v, want ErrInvalidDate", in, err)
		}
	}
}

func TestParseYearMonth(t *testing.T) {
	ym, err := ParseYearMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseYearMonth failed: %v", err)
	}
	if ym != (YearMonth{Year: 2024, Month: time.February}) {
		t.Fatalf("ParseYearMonth = %v", ym)
	}
	if _, err := ParseYearMonth("2024-13"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestDisplayFormat(t *testing.T) {
	d := MustDate(2024, time.March, 3)
	if got := d.Format(DisplayLayout); got != "2024/03/03" {
		t.Fatalf("Format = %q", got)
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		date CalendarDate
		want int
	}{
		{MustDate(2024, time.January, 1), 1},  // Monday
		{MustDate(2024, time.February, 1), 4}, // Thursday
		{MustDate(2023, time.October, 1), 7},  // Sunday
		{MustDate(2000, time.January, 1), 6},  // Saturday
	}
	for _, tt := range tests {
		if got := tt.date.ISOWeekday(); got != tt.want {
			t.Errorf("%v.ISOWeekday() = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{2100, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
		{2024, 0, 0},
		{2024, 13, 0},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestNewYearMonth(t *testing.T) {
	ym, err := NewYearMonth(2024, time.February)
	if err != nil || ym != (YearMonth{Year: 2024, Month: time.February}) {
		t.Fatalf("NewYearMonth(2024, Feb) = %v, %v", ym, err)
	}
	for _, month := range []time.Month{0, 13} {
		_, err := NewYearMonth(2024, month)
		var de *DateError
		if !errors.As(err, &de) || !errors.Is(err, ErrInvalidDate) || de.Op != "new month" {
			t.Fatalf("NewYearMonth(2024, %d) err = %#v", month, err)
		}
	}
	if (YearMonth{Year: 2024, Month: 13}).DaysInMonth() != 0 {
		t.Fatalf("invalid month must report 0 days")
	}
}

func TestCalendarDateValid(t *testing.T) {
	if (CalendarDate{}).Valid() {
		t.Fatalf("zero date must not be valid")
	}
	if !MustDate(2024, time.February, 29).Valid() {
		t.Fatalf("leap day must be valid")
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		from CalendarDate
		n    int
		want CalendarDate
	}{
		{MustDate(2024, time.January, 31), -1, MustDate(2023, time.December, 31)},
		{MustDate(2024, time.January, 31), 1, MustDate(2024, time.February, 29)},
		{MustDate(2023, time.January, 31), 1, MustDate(2023, time.February, 28)},
		{MustDate(2024, time.March, 31), -1, MustDate(2024, time.February, 29)},
		{MustDate(2024, time.May, 31), 1, MustDate(2024, time.June, 30)},
		{MustDate(2024, time.December, 15), 1, MustDate(2025, time.January, 15)},
	}
	for _, tt := range tests {
		if got := tt.from.AddMonths(tt.n); !got.Equal(tt.want) {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestAddMonthsWraparound(t *testing.T) {
	for year := 2000; year <= 2100; year++ {
		for month := time.January; month <= time.December; month++ {
			d := MustDate(year, month, 1)
			if got := d.AddMonths(12); got.Year() != year+1 || got.Month() != month {
				t.Fatalf("%v.AddMonths(12) = %v", d, got)
			}
			if got := d.AddMonths(1).AddMonths(-1); got.YearMonth() != d.YearMonth() {
				t.Fatalf("%v +1-1 = %v", d, got)
			}
			ym := d.YearMonth()
			if got := ym.AddMonths(-12); got.Year != year-1 || got.Month != month {
				t.Fatalf("%v.AddMonths(-12) = %v", ym, got)
			}
		}
	}
}

func TestYearMonthAddMonthsLarge(t *testing.T) {
	ym := YearMonth{Year: 2024, Month: time.February}
	if got := ym.AddMonths(-26); got != (YearMonth{Year: 2021, Month: time.December}) {
		t.Fatalf("AddMonths(-26) = %v", got)
	}
	if got := ym.AddMonths(35); got != (YearMonth{Year: 2027, Month: time.January}) {
		t.Fatalf("AddMonths(35) = %v", got)
	}
}

func TestBefore(t *testing.T) {
	a := MustDate(2024, time.February, 28)
	b := MustDate(2024, time.March, 1)
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Fatalf("Before ordering broken for %v and %v", a, b)
	}
}
