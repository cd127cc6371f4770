package testutil

import (
	"time"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"go.uber.org/zap"
)

// FixedClock pins "today" to noon of the given day.
func FixedClock(year int, month time.Month, day int) calendar.Clock {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	}
}

// NavigatorBuilder provides fluent API for creating test navigators.
type NavigatorBuilder struct {
	clock     calendar.Clock
	initial   *calendar.CalendarDate
	reference *calendar.YearMonth
	logger    *zap.Logger
	err       error
}

func NewNavigator() *NavigatorBuilder {
	return &NavigatorBuilder{
		clock:  FixedClock(2024, time.June, 12),
		logger: zap.NewNop(),
	}
}

func (b *NavigatorBuilder) WithToday(year int, month time.Month, day int) *NavigatorBuilder {
	b.clock = FixedClock(year, month, day)
	return b
}

func (b *NavigatorBuilder) WithSelection(year int, month time.Month, day int) *NavigatorBuilder {
	d := calendar.MustDate(year, month, day)
	b.initial = &d
	return b
}

// WithReference pages to the month after construction without selecting
// anything. An invalid month surfaces as an error from Build.
func (b *NavigatorBuilder) WithReference(year int, month time.Month) *NavigatorBuilder {
	ym, err := calendar.NewYearMonth(year, month)
	if err != nil {
		b.err = err
		return b
	}
	b.reference = &ym
	return b
}

func (b *NavigatorBuilder) WithLogger(l *zap.Logger) *NavigatorBuilder {
	b.logger = l
	return b
}

func (b *NavigatorBuilder) Build() (*calendar.Navigator, error) {
	if b.err != nil {
		return nil, b.err
	}
	n, err := calendar.NewNavigator(b.clock, b.initial, b.logger)
	if err != nil {
		return nil, err
	}
	if b.reference != nil {
		steps := monthIndex(*b.reference) - monthIndex(n.Reference())
		for ; steps > 0; steps-- {
			n.MonthForward()
		}
		for ; steps < 0; steps++ {
			n.MonthBackward()
		}
	}
	return n, nil
}

func monthIndex(ym calendar.YearMonth) int {
	return ym.Year*12 + int(ym.Month) - 1
}
