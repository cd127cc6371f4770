package calendar

import "sync"

// Fixed grid geometry: six Monday-first weeks.
const (
	GridRows    = 6
	GridColumns = 7
	GridSize    = GridRows * GridColumns
)

// Membership tags a cell as belonging to the month before, the reference
// month, or the month after.
type Membership int

const (
	Previous Membership = iota
	Current
	Next
)

func (m Membership) String() string {
	switch m {
	case Previous:
		return "previous"
	case Current:
		return "current"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// Offset is the month delta from the reference month.
func (m Membership) Offset() int {
	switch m {
	case Previous:
		return -1
	case Next:
		return 1
	default:
		return 0
	}
}

// Cell is a day number plus its membership; the absolute date is only
// known together with the grid's reference month.
type Cell struct {
	Day        int
	Membership Membership
}

// Grid is the 42-cell layout for one reference month.
type Grid struct {
	Reference YearMonth
	Cells     [GridSize]Cell
	Leading   int
	Current   int
	Trailing  int
}

// ComputeGrid lays out ref as leading previous-month days, every day of
// ref, then trailing next-month days up to 42 cells. A month outside
// January..December is rejected with ErrInvalidDate.
func ComputeGrid(ref YearMonth) (Grid, error) {
	if !ref.Valid() {
		return Grid{}, &DateError{Op: "grid", Year: ref.Year, Month: int(ref.Month), Err: ErrInvalidDate}
	}
	first := ref.FirstDay()
	g := Grid{Reference: ref}
	g.Leading = first.ISOWeekday() - 1
	g.Current = ref.DaysInMonth()
	g.Trailing = GridSize - g.Leading - g.Current

	prevDays := ref.AddMonths(-1).DaysInMonth()
	i := 0
	for d := prevDays - g.Leading + 1; d <= prevDays; d++ {
		g.Cells[i] = Cell{Day: d, Membership: Previous}
		i++
	}
	for d := 1; d <= g.Current; d++ {
		g.Cells[i] = Cell{Day: d, Membership: Current}
		i++
	}
	for d := 1; d <= g.Trailing; d++ {
		g.Cells[i] = Cell{Day: d, Membership: Next}
		i++
	}
	return g, nil
}

// MustGrid is ComputeGrid for months known to be valid.
func MustGrid(ref YearMonth) Grid {
	g, err := ComputeGrid(ref)
	if err != nil {
		panic(err)
	}
	return g
}

// Row returns the seven cells of row r (0..5).
func (g Grid) Row(r int) []Cell {
	if r < 0 || r >= GridRows {
		return nil
	}
	start := r * GridColumns
	return g.Cells[start : start+GridColumns]
}

// MonthOf returns the month a membership refers to.
func (g Grid) MonthOf(m Membership) YearMonth {
	return g.Reference.AddMonths(m.Offset())
}

// Resolve returns the absolute date of cell idx.
func (g Grid) Resolve(idx int) (CalendarDate, error) {
	if idx < 0 || idx >= GridSize {
		return CalendarDate{}, &DateError{Op: "resolve", Year: g.Reference.Year, Month: int(g.Reference.Month), Day: idx, Err: ErrInvalidDate}
	}
	c := g.Cells[idx]
	return g.MonthOf(c.Membership).Date(c.Day)
}

// IndexOf finds d among the current-month cells.
func (g Grid) IndexOf(d CalendarDate) (int, bool) {
	if !g.Reference.Contains(d) {
		return -1, false
	}
	return g.Leading + d.Day() - 1, true
}

// GridCache memoizes grids per reference month. Each navigator owns one.
type GridCache struct {
	mu    sync.Mutex
	grids map[YearMonth]Grid
}

func NewGridCache() *GridCache {
	return &GridCache{grids: make(map[YearMonth]Grid)}
}

func (c *GridCache) Get(ref YearMonth) (Grid, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.grids[ref]; ok {
		return g, nil
	}
	g, err := ComputeGrid(ref)
	if err != nil {
		return Grid{}, err
	}
	c.grids[ref] = g
	return g, nil
}

func (c *GridCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.grids)
}
