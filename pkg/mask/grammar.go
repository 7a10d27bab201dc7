// Package mask implements the editing core of a masked text field: the mask
// grammar, projection of the real value onto the mask, caret mapping, the
// key-driven edit engine and caret slot validation.
package mask

// Unfilled is rendered for placeholders that have no valid character yet
const Unfilled = '_'

// SlotKind describes one kind of placeholder slot
type SlotKind struct {
	Name  string
	Valid func(ch byte) bool
}

// slotKinds maps a mask character to the slot it declares.
// Adding a placeholder kind only requires a new entry here.
var slotKinds = map[byte]SlotKind{
	'9': {Name: "digit", Valid: isDigit},
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// IsPlaceholder reports whether the mask character c marks an editable slot
func IsPlaceholder(c byte) bool {
	_, ok := slotKinds[c]
	return ok
}

// IsValidForSlot reports whether ch may fill a slot declared by placeholder
func IsValidForSlot(ch, placeholder byte) bool {
	kind, ok := slotKinds[placeholder]
	if !ok {
		return false
	}
	return kind.Valid(ch)
}

// KindOf returns the slot kind for a placeholder character
func KindOf(placeholder byte) (SlotKind, bool) {
	kind, ok := slotKinds[placeholder]
	return kind, ok
}

// PlaceholderCount returns the number of editable slots in mask
func PlaceholderCount(mask string) int {
	count := 0
	for i := 0; i < len(mask); i++ {
		if IsPlaceholder(mask[i]) {
			count++
		}
	}
	return count
}
