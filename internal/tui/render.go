package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/akyairhashvil/datepick/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel geometry. The panel starts on the line below the input box.
const (
	panelTop    = 1
	contentX    = 1 + config.PanelPaddingX
	innerWidth  = calendar.GridColumns * config.CellWidth
	headerRow   = 0
	weekdayRow  = 1
	firstDayRow = 2
	footerRow   = firstDayRow + calendar.GridRows
	footerGap   = "  "
)

type hitKind int

const (
	hitNone hitKind = iota
	hitInput
	hitClearMarker
	hitPanel
	hitPrev
	hitNext
	hitCell
	hitToday
	hitClear
)

type hit struct {
	kind  hitKind
	index int
}

type span struct {
	kind       hitKind
	label      string
	start, end int
}

func (m PickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.inputLine())
	if m.open {
		b.WriteString("\n")
		b.WriteString(m.renderPanel())
	}
	b.WriteString("\n")
	help := m.keys.Help(m)
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, "…")
	}
	b.WriteString(CurrentTheme.Dim.Render(help))
	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Error.Render(m.err.Error()))
	case m.message != "":
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Highlight.Render(m.message))
	}
	return b.String()
}

func (m PickerModel) showClearMarker() bool {
	_, ok := m.nav.Selected()
	return ok && m.cfg.Picker.AllowClear
}

func (m PickerModel) inputView() string {
	return CurrentTheme.Input.Render(m.input.View())
}

func (m PickerModel) inputLine() string {
	line := m.inputView()
	if m.showClearMarker() {
		line += " " + CurrentTheme.Action.Render(config.ClearMarker)
	}
	return line
}

func (m PickerModel) hasFooter() bool {
	return m.cfg.Picker.ShowToday || m.cfg.Picker.AllowClear
}

func (m PickerModel) contentRows() int {
	if m.hasFooter() {
		return footerRow + 1
	}
	return footerRow
}

func (m PickerModel) renderPanel() string {
	lines := []string{m.renderHeader(), m.renderWeekdays()}
	g := m.nav.Grid()
	for r := 0; r < calendar.GridRows; r++ {
		lines = append(lines, m.renderRow(g, r))
	}
	if m.hasFooter() {
		lines = append(lines, m.renderFooter())
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, config.PanelPaddingX).
		Render(strings.Join(lines, "\n"))
}

func (m PickerModel) renderHeader() string {
	arrow := CurrentTheme.Arrow.Width(config.CellWidth)
	title := CurrentTheme.Header.
		Width(innerWidth - 2*config.CellWidth).
		Align(lipgloss.Center).
		Render(m.labels.Title(m.nav.Reference()))
	return arrow.Align(lipgloss.Left).Render(config.PrevArrow) +
		title +
		arrow.Align(lipgloss.Right).Render(config.NextArrow)
}

func (m PickerModel) renderWeekdays() string {
	style := CurrentTheme.Weekday.Width(config.CellWidth).Align(lipgloss.Center)
	var b strings.Builder
	for _, label := range m.labels.Weekdays {
		b.WriteString(style.Render(label))
	}
	return b.String()
}

func (m PickerModel) renderRow(g calendar.Grid, r int) string {
	sel, hasSel := m.nav.Selected()
	today := m.nav.Today()
	var b strings.Builder
	for _, cell := range g.Row(r) {
		style := CurrentTheme.Day
		switch {
		case cell.Membership == calendar.Current && hasSel && g.Reference.Contains(sel) && cell.Day == sel.Day():
			style = CurrentTheme.Selected
		case cell.Membership == calendar.Current && g.Reference.Contains(today) && cell.Day == today.Day():
			style = CurrentTheme.Today
		case cell.Membership != calendar.Current:
			style = CurrentTheme.Outside
		}
		b.WriteString(style.Width(config.CellWidth).Align(lipgloss.Center).Render(fmt.Sprintf("%2d", cell.Day)))
	}
	return b.String()
}

// footerSpans lays out the footer actions left to right.
func (m PickerModel) footerSpans() []span {
	var spans []span
	x := 0
	add := func(kind hitKind, label string) {
		if len(spans) > 0 {
			x += ansi.StringWidth(footerGap)
		}
		w := ansi.StringWidth(label)
		spans = append(spans, span{kind: kind, label: label, start: x, end: x + w})
		x += w
	}
	if m.cfg.Picker.ShowToday {
		add(hitToday, m.labels.Today)
	}
	if m.cfg.Picker.AllowClear {
		add(hitClear, m.labels.Clear)
	}
	return spans
}

func (m PickerModel) renderFooter() string {
	parts := make([]string, 0, 2)
	for _, s := range m.footerSpans() {
		parts = append(parts, CurrentTheme.Action.Render(s.label))
	}
	return strings.Join(parts, footerGap)
}

// hitTest maps a terminal cell to the element rendered there by View.
func (m PickerModel) hitTest(x, y int) hit {
	if y == 0 {
		w := ansi.StringWidth(m.inputView())
		if x >= 0 && x < w {
			return hit{kind: hitInput}
		}
		if m.showClearMarker() {
			start := w + 1
			if x >= start && x < start+ansi.StringWidth(config.ClearMarker) {
				return hit{kind: hitClearMarker}
			}
		}
		return hit{kind: hitNone}
	}
	if !m.open {
		return hit{kind: hitNone}
	}

	panelWidth := innerWidth + 2*config.PanelPaddingX + 2
	panelHeight := m.contentRows() + 2
	if x < 0 || x >= panelWidth || y < panelTop || y >= panelTop+panelHeight {
		return hit{kind: hitNone}
	}
	row := y - panelTop - 1
	col := x - contentX
	if row < 0 || row >= m.contentRows() || col < 0 || col >= innerWidth {
		return hit{kind: hitPanel}
	}

	switch {
	case row == headerRow:
		if col < config.CellWidth {
			return hit{kind: hitPrev}
		}
		if col >= innerWidth-config.CellWidth {
			return hit{kind: hitNext}
		}
	case row >= firstDayRow && row < footerRow:
		idx := (row-firstDayRow)*calendar.GridColumns + col/config.CellWidth
		return hit{kind: hitCell, index: idx}
	case row == footerRow:
		for _, s := range m.footerSpans() {
			if col >= s.start && col < s.end {
				return hit{kind: s.kind}
			}
		}
	}
	return hit{kind: hitPanel}
}
