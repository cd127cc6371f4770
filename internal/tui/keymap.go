package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Availability says in which picker states an action fires.
type Availability int

const (
	// Always covers app-level actions; they work even on a read-only picker.
	Always Availability = iota
	// Editable actions change the selection and need an enabled picker.
	Editable
	// WhenOpen actions need an enabled picker with the popup shown.
	WhenOpen
	// WhenClosed actions need an enabled picker with the popup hidden.
	WhenClosed
)

func (a Availability) allows(m PickerModel) bool {
	if a == Always {
		return true
	}
	if m.cfg.Picker.Disabled {
		return false
	}
	switch a {
	case WhenOpen:
		return m.open
	case WhenClosed:
		return !m.open
	}
	return true
}

// Action is one picker command reachable from one or more keys. The first
// key is the one shown in the help line.
type Action struct {
	Name string
	Keys []string
	When Availability
	Run  func(PickerModel) (PickerModel, tea.Cmd)
}

// Keymap resolves key presses to picker actions.
type Keymap struct {
	actions []Action
	byKey   map[string][]int
}

func NewKeymap() *Keymap {
	return &Keymap{byKey: make(map[string][]int)}
}

// Bind adds a. A key bound to several actions dispatches to the first one
// available in the current state.
func (k *Keymap) Bind(a Action) {
	idx := len(k.actions)
	k.actions = append(k.actions, a)
	for _, key := range a.Keys {
		k.byKey[key] = append(k.byKey[key], idx)
	}
}

// Dispatch runs the action bound to key if the picker state allows it.
func (k *Keymap) Dispatch(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	for _, idx := range k.byKey[key] {
		a := k.actions[idx]
		if a.When.allows(m) {
			next, cmd := a.Run(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// Available lists the actions that can fire in m's state, in bind order.
func (k *Keymap) Available(m PickerModel) []Action {
	var out []Action
	for _, a := range k.actions {
		if a.When.allows(m) {
			out = append(out, a)
		}
	}
	return out
}

// Help renders the available actions as "key name" pairs.
func (k *Keymap) Help(m PickerModel) string {
	var parts []string
	for _, a := range k.Available(m) {
		if a.Name == "" || len(a.Keys) == 0 {
			continue
		}
		parts = append(parts, a.Keys[0]+" "+a.Name)
	}
	return strings.Join(parts, " · ")
}
