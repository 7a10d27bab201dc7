package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/maskedit/pkg/mask"
)

// KeysFromMsg converts a terminal key message into logical field keys.
// Typed or pasted runes produce one key each. Terminals deliver keypad
// digits as runes, so they map to digits here as well.
func KeysFromMsg(msg tea.KeyMsg) []mask.Key {
	switch msg.Type {
	case tea.KeyTab:
		return []mask.Key{mask.Tab}
	case tea.KeyBackspace:
		return []mask.Key{mask.Backspace}
	case tea.KeyLeft:
		return []mask.Key{mask.Left}
	case tea.KeyRight:
		return []mask.Key{mask.Right}
	case tea.KeyRunes:
		if msg.Alt {
			return []mask.Key{mask.Other}
		}
		keys := make([]mask.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, mask.KeyFromRune(r))
		}
		return keys
	default:
		return []mask.Key{mask.Other}
	}
}

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Save  key.Binding
	Copy  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func binding(sc ShortcutKey, desc string, extra ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(append(sc.Keys(), extra...)...),
		key.WithHelp(FormatShortcutForHelp(sc), desc),
	)
}

func newKeyMap() keyMap {
	return keyMap{
		Next:  binding(Shortcuts.Next, "next field"),
		Prev:  binding(Shortcuts.Prev, "prev field"),
		Save:  binding(Shortcuts.Save, "save"),
		Copy:  binding(Shortcuts.Copy, "copy"),
		Clear: binding(Shortcuts.Clear, "clear"),
		Quit:  binding(Shortcuts.Quit, "quit", "ctrl+c"),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Save, k.Copy, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
