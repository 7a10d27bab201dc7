package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey is a form shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// For returns the shortcut for the given OS
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Get returns the shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// Keys returns the key names bound for the current OS. The default key stays
// bound next to an OS alternative so either works.
func (s ShortcutKey) Keys() []string {
	keys := []string{s.Get()}
	if s.Default != "" && s.Default != keys[0] {
		keys = append(keys, s.Default)
	}
	return keys
}

// Shortcuts are the form's global keys. Digits, backspace and arrows belong
// to the focused field and are not listed here.
var Shortcuts = struct {
	Next  ShortcutKey
	Prev  ShortcutKey
	Save  ShortcutKey
	Copy  ShortcutKey
	Clear ShortcutKey
	Quit  ShortcutKey
}{
	Next: ShortcutKey{
		Default: "tab",
	},
	Prev: ShortcutKey{
		Windows: "backtab", // Windows terminal compatibility
		Default: "shift+tab",
	},
	Save: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Ctrl+S is XOFF in many terminals
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	Copy: ShortcutKey{
		Default: "ctrl+y",
	},
	Clear: ShortcutKey{
		Mac:     "ctrl+k",
		Linux:   "alt+k", // readline kill-line
		Windows: "alt+k",
		Default: "ctrl+k",
	},
	Quit: ShortcutKey{
		Default: "esc",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get(), GetOS())
}

func formatShortcut(shortcut string, os OSType) string {
	// M- prefix for Alt is the common terminal convention outside macOS
	if os == OSLinux || os == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	return shortcut
}
