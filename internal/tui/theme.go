package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Border    lipgloss.Color
	Header    lipgloss.Style
	Arrow     lipgloss.Style
	Weekday   lipgloss.Style
	Day       lipgloss.Style
	Outside   lipgloss.Style
	Selected  lipgloss.Style
	Today     lipgloss.Style
	Action    lipgloss.Style
	Input     lipgloss.Style
	Error     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Arrow:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Weekday:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Day:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Outside:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true),
		Today:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Underline(true),
		Action:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Input:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Arrow:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Weekday:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Day:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Outside:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("120")).Bold(true),
		Today:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Underline(true),
		Action:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Input:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
	"mono": {
		Name:      "Mono",
		Border:    lipgloss.Color("250"),
		Header:    lipgloss.NewStyle().Bold(true),
		Arrow:     lipgloss.NewStyle().Bold(true),
		Weekday:   lipgloss.NewStyle().Faint(true),
		Day:       lipgloss.NewStyle(),
		Outside:   lipgloss.NewStyle().Faint(true),
		Selected:  lipgloss.NewStyle().Reverse(true),
		Today:     lipgloss.NewStyle().Underline(true),
		Action:    lipgloss.NewStyle().Bold(true),
		Input:     lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// currentThemeKey mirrors CurrentTheme for cycling and persistence.
var currentThemeKey = "default"

// SetTheme switches themes; unknown names are ignored.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
		currentThemeKey = name
	}
	return ok
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme activates the theme after the current one and returns its key.
func NextTheme() string {
	names := ThemeNames()
	for i, name := range names {
		if name == currentThemeKey {
			next := names[(i+1)%len(names)]
			SetTheme(next)
			return next
		}
	}
	SetTheme(names[0])
	return names[0]
}
