package mask

import "strings"

// KeyKind identifies a logical key understood by the edit engine
type KeyKind int

const (
	// KeyOther is any key the engine swallows without effect
	KeyOther KeyKind = iota
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyDigit
)

// Key is a logical key press. Digit is only meaningful for KeyDigit.
type Key struct {
	Kind  KeyKind
	Digit byte
}

// Common keys
var (
	Tab       = Key{Kind: KeyTab}
	Backspace = Key{Kind: KeyBackspace}
	Left      = Key{Kind: KeyLeft}
	Right     = Key{Kind: KeyRight}
	Other     = Key{Kind: KeyOther}
)

// Digit returns the key for decimal digit n. Values outside 0-9 yield Other.
func Digit(n int) Key {
	if n < 0 || n > 9 {
		return Other
	}
	return Key{Kind: KeyDigit, Digit: byte('0' + n)}
}

// KeyFromRune maps a typed character to a key. Only ASCII digits are digits.
func KeyFromRune(r rune) Key {
	if r >= '0' && r <= '9' {
		return Digit(int(r - '0'))
	}
	return Other
}

// ParseKey converts a key name into a Key. Digits may be given as "0".."9"
// or as keypad names ("kp0", "numpad0"), which normalise to the same digit.
// Unknown names parse as Other.
func ParseKey(name string) Key {
	s := strings.ToLower(strings.TrimSpace(name))

	switch s {
	case "tab":
		return Tab
	case "backspace", "back", "bs":
		return Backspace
	case "left", "arrowleft":
		return Left
	case "right", "arrowright":
		return Right
	}

	for _, prefix := range []string{"numpad", "kp"} {
		s = strings.TrimPrefix(s, prefix)
	}

	if len(s) == 1 {
		return KeyFromRune(rune(s[0]))
	}
	return Other
}

// String returns a readable name for the key
func (k Key) String() string {
	switch k.Kind {
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyDigit:
		return string(k.Digit)
	default:
		return "other"
	}
}
