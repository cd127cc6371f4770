package tui

import (
	"fmt"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/akyairhashvil/datepick/internal/config"
)

// Labels are the locale-dependent strings of the panel. Weeks always
// start on Monday.
type Labels struct {
	Weekdays [calendar.GridColumns]string
	Today    string
	Clear    string
	title    func(calendar.YearMonth) string
}

var EnglishLabels = Labels{
	Weekdays: [calendar.GridColumns]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	Today:    "Today",
	Clear:    "Clear",
	title: func(ym calendar.YearMonth) string {
		return fmt.Sprintf("%s %d", ym.Month, ym.Year)
	},
}

var ChineseLabels = Labels{
	Weekdays: [calendar.GridColumns]string{"一", "二", "三", "四", "五", "六", "日"},
	Today:    "今天",
	Clear:    "清除",
	title: func(ym calendar.YearMonth) string {
		return fmt.Sprintf("%d年 %d月", ym.Year, int(ym.Month))
	},
}

// LabelsFor picks the label set for a configured locale.
func LabelsFor(locale string) Labels {
	if locale == config.LocaleChinese {
		return ChineseLabels
	}
	return EnglishLabels
}

func (l Labels) Title(ym calendar.YearMonth) string {
	if l.title == nil {
		return fmt.Sprintf("%s %d", ym.Month, ym.Year)
	}
	return l.title(ym)
}
