package tui

import (
	"context"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/akyairhashvil/datepick/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type exportDoneMsg struct {
	path string
	err  error
}

// PickerOptions configures a PickerModel. Only Config is required.
type PickerOptions struct {
	Config   *config.Config
	Initial  *calendar.CalendarDate
	Clock    calendar.Clock
	Settings SettingsStore
	Logger   *zap.Logger
	OnChange func(calendar.SelectionChange)
}

// PickerModel is the bubbletea model for one input box plus its popup panel.
type PickerModel struct {
	ctx      context.Context
	cfg      *config.Config
	nav      *calendar.Navigator
	labels   Labels
	input    textinput.Model
	keys     *Keymap
	settings SettingsStore
	logger   *zap.Logger

	open    bool
	err     error
	message string
	width   int
	height  int
}

// NewPickerModel fails only when opts.Initial is not a real date.
func NewPickerModel(ctx context.Context, opts PickerOptions) (PickerModel, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = cfg.Picker.Placeholder
	ti.CharLimit = config.MaxInputLength
	ti.Width = config.InputWidth
	ti.Prompt = ""
	if !cfg.Picker.Disabled {
		ti.Focus()
	}

	nav, err := calendar.NewNavigator(opts.Clock, opts.Initial, logger.Named("navigator"))
	if err != nil {
		return PickerModel{}, err
	}
	m := PickerModel{
		ctx:      ctx,
		cfg:      cfg,
		nav:      nav,
		labels:   LabelsFor(cfg.Picker.Locale),
		input:    ti,
		settings: opts.Settings,
		logger:   logger,
	}
	m.nav.OnSelectionChanged(opts.OnChange)
	m.keys = NewKeymap()
	bindActions(m.keys, cfg)
	m.loadTheme()
	m.syncInput()
	return m, nil
}

func (m *PickerModel) loadTheme() {
	name := m.cfg.UI.Theme
	if m.settings != nil {
		if stored, ok := m.settings.GetSetting(m.ctx, config.SettingTheme); ok {
			name = stored
		}
	}
	if !SetTheme(name) {
		m.logger.Warn("unknown theme, keeping current", zap.String("theme", name))
	}
}

func (m PickerModel) Init() tea.Cmd { return textinput.Blink }

// Selected returns the current selection, if any.
func (m PickerModel) Selected() (calendar.CalendarDate, bool) {
	return m.nav.Selected()
}

func (m PickerModel) Navigator() *calendar.Navigator { return m.nav }

func (m PickerModel) IsOpen() bool { return m.open }

func (m PickerModel) Err() error { return m.err }

// Disabled reports whether the picker is read-only.
func (m PickerModel) Disabled() bool { return m.cfg.Picker.Disabled }

// syncInput writes the selection into the input box.
func (m *PickerModel) syncInput() {
	if sel, ok := m.nav.Selected(); ok {
		m.input.SetValue(sel.Format(calendar.DisplayLayout))
	} else {
		m.input.SetValue("")
	}
	m.input.CursorEnd()
}

// inputDirty reports whether the input text differs from the selection.
func (m PickerModel) inputDirty() bool {
	want := ""
	if sel, ok := m.nav.Selected(); ok {
		want = sel.Format(calendar.DisplayLayout)
	}
	return m.input.Value() != want
}
