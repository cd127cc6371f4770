package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/akyairhashvil/datepick/internal/config"
	"github.com/akyairhashvil/datepick/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			util.LogError(m.logger, "export month sheet", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.message = "Saved " + msg.path
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.Disabled() {
			return m, nil
		}
		return m.commitInput()
	}
	if next, cmd, handled := m.keys.Dispatch(m, key); handled {
		return next, cmd
	}
	if m.Disabled() || !acceptsInput(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd
}

// acceptsInput limits typing to what a YYYY/MM/DD value can contain.
func acceptsInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '/' && r != '-' {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}

// commitInput handles enter in the input box. Unchanged text toggles the
// popup; anything else is parsed and mirrored into the navigator.
func (m PickerModel) commitInput() (tea.Model, tea.Cmd) {
	if !m.inputDirty() {
		return m.setOpen(!m.open), nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		if m.cfg.Picker.AllowClear {
			if err := m.nav.ExternalSelectionSet(nil); err != nil {
				m.err = err
				return m, nil
			}
		}
		m.err = nil
		m.syncInput()
		return m, nil
	}
	date, err := calendar.ParseDate(text)
	if err != nil {
		m.logger.Debug("rejected typed date", zap.String("input", text), zap.Error(err))
		m.err = err
		return m, nil
	}
	if err := m.nav.ExternalSelectionSet(&date); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.message = ""
	m.syncInput()
	return m, nil
}

func (m PickerModel) setOpen(open bool) PickerModel {
	m.open = open
	return m
}

// applyChange reflects an emitted selection change in the input box.
func (m *PickerModel) applyChange(change calendar.SelectionChange) {
	m.err = nil
	m.syncInput()
	if change.ClosePopup {
		m.open = false
	}
}

func (m PickerModel) clickDay(day int, membership calendar.Membership) PickerModel {
	change, err := m.nav.DayClicked(day, membership)
	if err != nil {
		m.err = err
		return m
	}
	m.applyChange(change)
	return m
}

func (m PickerModel) selectToday() PickerModel {
	m.applyChange(m.nav.SelectToday())
	return m
}

// clearSelection always emits, even when nothing was selected.
func (m PickerModel) clearSelection() PickerModel {
	m.applyChange(m.nav.Clear())
	return m
}

func (m PickerModel) page(delta int) PickerModel {
	if delta < 0 {
		m.nav.MonthBackward()
	} else {
		m.nav.MonthForward()
	}
	return m
}

func (m PickerModel) cycleTheme() PickerModel {
	name := NextTheme()
	m.message = "Theme: " + CurrentTheme.Name
	if m.settings == nil {
		return m
	}
	if err := m.settings.SetSetting(m.ctx, config.SettingTheme, name); err != nil {
		util.LogError(m.logger, "persist theme", err)
		m.err = err
	}
	return m
}

func (m PickerModel) exportCmd() tea.Cmd {
	grid := m.nav.Grid()
	var selected *calendar.CalendarDate
	if sel, ok := m.nav.Selected(); ok {
		selected = &sel
	}
	path := filepath.Join(m.cfg.Export.Dir, fmt.Sprintf("datepick_%s.pdf", grid.Reference))
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: ExportMonthPDF(path, grid, selected)}
	}
}

func (m PickerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Disabled() || !m.cfg.UI.Mouse || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.open {
			return m.page(-1), nil
		}
	case tea.MouseButtonWheelDown:
		if m.open {
			return m.page(1), nil
		}
	case tea.MouseButtonLeft:
		return m.handleClick(msg.X, msg.Y), nil
	}
	return m, nil
}

func (m PickerModel) handleClick(x, y int) PickerModel {
	h := m.hitTest(x, y)
	switch h.kind {
	case hitInput:
		return m.setOpen(true)
	case hitClearMarker, hitClear:
		return m.clearSelection()
	case hitPrev:
		return m.page(-1)
	case hitNext:
		return m.page(1)
	case hitCell:
		cell := m.nav.Grid().Cells[h.index]
		return m.clickDay(cell.Day, cell.Membership)
	case hitToday:
		return m.selectToday()
	case hitPanel:
		return m
	}
	// Anywhere else dismisses the popup.
	m.open = false
	return m
}

func bindActions(k *Keymap, cfg *config.Config) {
	k.Bind(Action{Name: "open", Keys: []string{"o"}, When: WhenClosed, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
		return m.setOpen(true), nil
	}})
	k.Bind(Action{Name: "close", Keys: []string{"esc"}, When: WhenOpen, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
		return m.setOpen(false), nil
	}})
	k.Bind(Action{Name: "prev month", Keys: []string{"[", "<", "pgup"}, When: WhenOpen, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
		return m.page(-1), nil
	}})
	k.Bind(Action{Name: "next month", Keys: []string{"]", ">", "pgdown"}, When: WhenOpen, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
		return m.page(1), nil
	}})
	if cfg.Picker.ShowToday {
		k.Bind(Action{Name: "today", Keys: []string{"t"}, When: WhenOpen, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
			return m.selectToday(), nil
		}})
	}
	if cfg.Picker.AllowClear {
		k.Bind(Action{Name: "clear", Keys: []string{"c"}, When: Editable, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
			return m.clearSelection(), nil
		}})
	}
	k.Bind(Action{Name: "theme", Keys: []string{"T"}, When: Always, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
		return m.cycleTheme(), nil
	}})
	k.Bind(Action{Name: "pdf", Keys: []string{"p"}, When: Always, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
		m.message = ""
		return m, m.exportCmd()
	}})
	k.Bind(Action{Name: "quit", Keys: []string{"q"}, When: Always, Run: func(m PickerModel) (PickerModel, tea.Cmd) {
		return m, tea.Quit
	}})
}
