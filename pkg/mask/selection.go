package mask

// LegalSlots returns the display offsets the caret may rest at, in
// ascending order. Placeholders are legal up to and including the first one
// that real does not fill; literals are legal when they touch a placeholder.
// The end of the mask is legal only when real fills every placeholder.
func LegalSlots(mask, real string) []int {
	if mask == "" {
		return nil
	}

	var slots []int
	realIdx := 0
	i := 0

	for ; i < len(mask); i++ {
		if !IsPlaceholder(mask[i]) {
			if touchesPlaceholder(mask, i) {
				slots = append(slots, i)
			}
			continue
		}

		slots = append(slots, i)

		if realIdx >= len(real) {
			break
		}
		realIdx++
	}

	if i == len(mask) && realIdx == len(real) {
		slots = append(slots, i)
	}

	return slots
}

func touchesPlaceholder(mask string, i int) bool {
	if i > 0 && IsPlaceholder(mask[i-1]) {
		return true
	}
	return i+1 < len(mask) && IsPlaceholder(mask[i+1])
}

// IsLegalSlot reports whether offset is one of the legal caret slots
func IsLegalSlot(mask, real string, offset int) bool {
	for _, slot := range LegalSlots(mask, real) {
		if slot == offset {
			return true
		}
	}
	return false
}

// Snap picks the slot the caret should move to from current. With advance
// set it takes the first slot at or after current, otherwise the closest
// slot with ties going to the leftmost. ok is false when nothing qualifies.
func Snap(slots []int, current int, advance bool) (slot int, ok bool) {
	if len(slots) == 0 {
		return current, false
	}

	if advance {
		for _, s := range slots {
			if s >= current {
				return s, true
			}
		}
		return current, false
	}

	best := slots[0]
	for _, s := range slots[1:] {
		if distance(s, current) < distance(best, current) {
			best = s
		}
	}
	return best, true
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
