package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestComputeGridFebruary2024(t *testing.T) {
	g := MustGrid(YearMonth{Year: 2024, Month: time.February})
	if g.Leading != 3 || g.Current != 29 || g.Trailing != 10 {
		t.Fatalf("counts = %d/%d/%d, want 3/29/10", g.Leading, g.Current, g.Trailing)
	}
	for i, want := range []int{29, 30, 31} {
		c := g.Cells[i]
		if c.Day != want || c.Membership != Previous {
			t.Fatalf("cell %d = %+v, want previous %d", i, c, want)
		}
	}
	if c := g.Cells[3]; c.Day != 1 || c.Membership != Current {
		t.Fatalf("cell 3 = %+v, want current 1", c)
	}
	for i := 0; i < 10; i++ {
		c := g.Cells[GridSize-10+i]
		if c.Day != i+1 || c.Membership != Next {
			t.Fatalf("trailing cell %d = %+v, want next %d", i, c, i+1)
		}
	}
	d, err := g.Resolve(0)
	if err != nil || !d.Equal(MustDate(2024, time.January, 29)) {
		t.Fatalf("Resolve(0) = %v, %v", d, err)
	}
	d, err = g.Resolve(GridSize - 1)
	if err != nil || !d.Equal(MustDate(2024, time.March, 10)) {
		t.Fatalf("Resolve(41) = %v, %v", d, err)
	}
}

func TestComputeGridMondayStart(t *testing.T) {
	// January 2024 starts on a Monday.
	g := MustGrid(YearMonth{Year: 2024, Month: time.January})
	if g.Leading != 0 {
		t.Fatalf("Leading = %d, want 0", g.Leading)
	}
	if c := g.Cells[0]; c.Day != 1 || c.Membership != Current {
		t.Fatalf("first cell = %+v", c)
	}
}

func TestComputeGridMaxTrailing(t *testing.T) {
	// February 2021: 28 days starting on Monday leaves two full weeks.
	g := MustGrid(YearMonth{Year: 2021, Month: time.February})
	if g.Leading != 0 || g.Current != 28 || g.Trailing != 14 {
		t.Fatalf("counts = %d/%d/%d", g.Leading, g.Current, g.Trailing)
	}
}

func TestComputeGridSundayStart(t *testing.T) {
	// October 2023 starts on a Sunday: six leading cells.
	g := MustGrid(YearMonth{Year: 2023, Month: time.October})
	if g.Leading != 6 {
		t.Fatalf("Leading = %d, want 6", g.Leading)
	}
	want := []int{25, 26, 27, 28, 29, 30}
	for i, day := range want {
		if g.Cells[i].Day != day {
			t.Fatalf("leading cell %d = %d, want %d", i, g.Cells[i].Day, day)
		}
	}
}

func TestComputeGridPropertiesAcrossCentury(t *testing.T) {
	for year := 2000; year <= 2100; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := YearMonth{Year: year, Month: month}
			g := MustGrid(ref)
			if g.Leading+g.Current+g.Trailing != GridSize {
				t.Fatalf("%v: counts sum to %d", ref, g.Leading+g.Current+g.Trailing)
			}
			if g.Leading < 0 || g.Leading > 6 {
				t.Fatalf("%v: Leading = %d", ref, g.Leading)
			}
			if g.Trailing < 0 || g.Trailing > 14 {
				t.Fatalf("%v: Trailing = %d", ref, g.Trailing)
			}
			if g.Current != time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day() {
				t.Fatalf("%v: Current = %d", ref, g.Current)
			}
			if g.Leading != ref.FirstDay().ISOWeekday()-1 {
				t.Fatalf("%v: Leading mismatch", ref)
			}
			checkContiguous(t, g)
			if g != MustGrid(ref) {
				t.Fatalf("%v: ComputeGrid not idempotent", ref)
			}
		}
	}
}

func checkContiguous(t *testing.T, g Grid) {
	t.Helper()
	prevDays := g.Reference.AddMonths(-1).DaysInMonth()
	for i, c := range g.Cells {
		switch {
		case i < g.Leading:
			if c.Membership != Previous || c.Day != prevDays-g.Leading+1+i {
				t.Fatalf("%v cell %d = %+v", g.Reference, i, c)
			}
		case i < g.Leading+g.Current:
			if c.Membership != Current || c.Day != i-g.Leading+1 {
				t.Fatalf("%v cell %d = %+v", g.Reference, i, c)
			}
		default:
			if c.Membership != Next || c.Day != i-g.Leading-g.Current+1 {
				t.Fatalf("%v cell %d = %+v", g.Reference, i, c)
			}
		}
		if _, err := g.Resolve(i); err != nil {
			t.Fatalf("%v cell %d does not resolve: %v", g.Reference, i, err)
		}
	}
}

func TestGridRowsAndIndexOf(t *testing.T) {
	g := MustGrid(YearMonth{Year: 2024, Month: time.February})
	row := g.Row(0)
	if len(row) != GridColumns || row[3].Day != 1 {
		t.Fatalf("Row(0) = %+v", row)
	}
	if g.Row(GridRows) != nil || g.Row(-1) != nil {
		t.Fatalf("expected nil for out-of-range rows")
	}
	idx, ok := g.IndexOf(MustDate(2024, time.February, 15))
	if !ok || idx != 17 {
		t.Fatalf("IndexOf = %d, %v", idx, ok)
	}
	if _, ok := g.IndexOf(MustDate(2024, time.March, 1)); ok {
		t.Fatalf("IndexOf should ignore dates outside the reference month")
	}
	if _, err := g.Resolve(GridSize); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}

func TestMembershipString(t *testing.T) {
	if Previous.String() != "previous" || Current.String() != "current" || Next.String() != "next" {
		t.Fatalf("unexpected membership names")
	}
	if Membership(9).String() != "unknown" {
		t.Fatalf("expected unknown")
	}
}

func TestGridCache(t *testing.T) {
	c := NewGridCache()
	ref := YearMonth{Year: 2024, Month: time.February}
	a, err := c.Get(ref)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	b, _ := c.Get(ref)
	if a != b || c.Len() != 1 {
		t.Fatalf("expected memoized grid")
	}
	c.Get(ref.AddMonths(1))
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, err := c.Get(YearMonth{Year: 2024, Month: 13}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Get(2024-13) err = %v, want ErrInvalidDate", err)
	}
	if c.Len() != 2 {
		t.Fatalf("invalid month must not be cached, Len = %d", c.Len())
	}
}

func TestComputeGridRejectsInvalidMonth(t *testing.T) {
	for _, month := range []time.Month{0, 13, -1} {
		ref := YearMonth{Year: 2024, Month: month}
		g, err := ComputeGrid(ref)
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ComputeGrid(%v) err = %v, want ErrInvalidDate", ref, err)
		}
		var de *DateError
		if !errors.As(err, &de) || de.Op != "grid" || de.Month != int(month) {
			t.Fatalf("expected *DateError with op grid, got %#v", err)
		}
		if g != (Grid{}) {
			t.Fatalf("expected zero grid on error")
		}
	}
}
