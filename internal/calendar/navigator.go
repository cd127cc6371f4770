package calendar

import (
	"time"

	"go.uber.org/zap"
)

// Transition names the inputs the navigator accepts.
type Transition string

const (
	TransitionMonthForward  Transition = "month_forward"
	TransitionMonthBackward Transition = "month_backward"
	TransitionDayClicked    Transition = "day_clicked"
	TransitionSelectToday   Transition = "select_today"
	TransitionClear         Transition = "clear"
	TransitionExternalSet   Transition = "external_set"
)

// SelectionChange is emitted by DayClicked, SelectToday and Clear.
// Date is meaningless when Cleared is set.
type SelectionChange struct {
	Date       CalendarDate
	Cleared    bool
	Source     Transition
	ClosePopup bool
}

// Clock supplies "today".
type Clock func() time.Time

// Navigator owns the reference month and the optional selection of one
// picker instance. It is not safe for concurrent use; callers drive it
// from a single event loop.
type Navigator struct {
	reference YearMonth
	selected  CalendarDate
	hasSel    bool
	clock     Clock
	grids     *GridCache
	logger    *zap.Logger
	listeners []func(SelectionChange)
}

// NewNavigator starts on today's month, or centred on initial when given.
// An initial date that is not a real day (the zero CalendarDate included)
// fails with ErrInvalidDate.
func NewNavigator(clock Clock, initial *CalendarDate, logger *zap.Logger) (*Navigator, error) {
	if initial != nil {
		if err := checkDate("init", *initial); err != nil {
			return nil, err
		}
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &Navigator{clock: clock, grids: NewGridCache(), logger: logger}
	n.reference = n.Today().YearMonth()
	if initial != nil {
		n.selected = *initial
		n.hasSel = true
		n.reference = initial.YearMonth()
	}
	return n, nil
}

// OnSelectionChanged registers a listener for emitted selection changes.
func (n *Navigator) OnSelectionChanged(fn func(SelectionChange)) {
	if fn != nil {
		n.listeners = append(n.listeners, fn)
	}
}

func (n *Navigator) Today() CalendarDate {
	return FromTime(n.clock())
}

func (n *Navigator) Reference() YearMonth {
	return n.reference
}

// Selected returns a copy of the selection, if any.
func (n *Navigator) Selected() (CalendarDate, bool) {
	return n.selected, n.hasSel
}

// Grid derives the display grid for the reference month.
func (n *Navigator) Grid() Grid {
	g, err := n.grids.Get(n.reference)
	if err != nil {
		// Every way into the reference month is validated.
		panic(err)
	}
	return g
}

func (n *Navigator) MonthForward() {
	n.reference = n.reference.AddMonths(1)
	n.trace(TransitionMonthForward)
}

func (n *Navigator) MonthBackward() {
	n.reference = n.reference.AddMonths(-1)
	n.trace(TransitionMonthBackward)
}

// DayClicked resolves (day, membership) against the reference month and
// selects it. Clicks on previous/next cells also page to that month.
func (n *Navigator) DayClicked(day int, m Membership) (SelectionChange, error) {
	target := n.reference.AddMonths(m.Offset())
	date, err := target.Date(day)
	if err != nil {
		n.logger.Debug("rejected day click",
			zap.Int("day", day),
			zap.Stringer("membership", m),
			zap.Stringer("reference", n.reference),
			zap.Error(err))
		return SelectionChange{}, err
	}
	if m != Current {
		n.reference = target
	}
	return n.selectDate(date, TransitionDayClicked), nil
}

// SelectToday selects today and pages to today's month.
func (n *Navigator) SelectToday() SelectionChange {
	today := n.Today()
	n.reference = today.YearMonth()
	return n.selectDate(today, TransitionSelectToday)
}

// Clear drops the selection; the reference month is kept.
func (n *Navigator) Clear() SelectionChange {
	n.selected = CalendarDate{}
	n.hasSel = false
	n.trace(TransitionClear)
	change := SelectionChange{Cleared: true, Source: TransitionClear}
	n.emit(change)
	return change
}

// ExternalSelectionSet mirrors a value set by the owning input. A nil date
// clears the selection without touching the reference month. An invalid
// date is rejected and leaves the navigator unchanged.
func (n *Navigator) ExternalSelectionSet(date *CalendarDate) error {
	if date == nil {
		n.selected = CalendarDate{}
		n.hasSel = false
	} else {
		if err := checkDate("external set", *date); err != nil {
			n.logger.Debug("rejected external selection", zap.Error(err))
			return err
		}
		n.selected = *date
		n.hasSel = true
		n.reference = date.YearMonth()
	}
	n.trace(TransitionExternalSet)
	return nil
}

func checkDate(op string, d CalendarDate) error {
	if d.Valid() {
		return nil
	}
	return &DateError{Op: op, Year: d.Year(), Month: int(d.Month()), Day: d.Day(), Err: ErrInvalidDate}
}

func (n *Navigator) selectDate(date CalendarDate, source Transition) SelectionChange {
	n.selected = date
	n.hasSel = true
	n.trace(source)
	change := SelectionChange{Date: date, Source: source, ClosePopup: true}
	n.emit(change)
	return change
}

func (n *Navigator) emit(change SelectionChange) {
	for _, fn := range n.listeners {
		fn(change)
	}
}

func (n *Navigator) trace(t Transition) {
	if ce := n.logger.Check(zap.DebugLevel, "transition"); ce != nil {
		fields := []zap.Field{
			zap.String("transition", string(t)),
			zap.Stringer("reference", n.reference),
		}
		if n.hasSel {
			fields = append(fields, zap.Stringer("selected", n.selected))
		}
		ce.Write(fields...)
	}
}
