package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/charmbracelet/lipgloss"
)

// PlainMonth renders a grid without styling for non-interactive output.
// The selected day is bracketed and neighbouring-month days are wrapped in
// parentheses.
func PlainMonth(g calendar.Grid, labels Labels, selected *calendar.CalendarDate) string {
	cell := lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(5 * calendar.GridColumns).Align(lipgloss.Center).Render(labels.Title(g.Reference)))
	b.WriteString("\n")
	for _, w := range labels.Weekdays {
		b.WriteString(cell.Render(w))
	}
	for r := 0; r < calendar.GridRows; r++ {
		b.WriteString("\n")
		for _, c := range g.Row(r) {
			text := fmt.Sprintf("%2d", c.Day)
			switch {
			case c.Membership != calendar.Current:
				text = "(" + text + ")"
			case selected != nil && g.Reference.Contains(*selected) && selected.Day() == c.Day:
				text = "[" + text + "]"
			}
			b.WriteString(cell.Render(text))
		}
	}
	return b.String()
}
