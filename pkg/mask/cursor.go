package mask

// NoMapping is returned by DisplayToReal when the display offset has no
// real-value coordinate
const NoMapping = -1

// DisplayToReal translates a caret offset in the display into an index into
// real. The walk stops at the first placeholder that is either at display or
// past the end of real. ok is false for an empty mask or when no placeholder
// is reached.
func DisplayToReal(mask, real string, display int) (idx int, ok bool) {
	realIdx := 0

	for i := 0; i < len(mask); i++ {
		if !IsPlaceholder(mask[i]) {
			continue
		}

		if realIdx == len(real) || i == display {
			return realIdx, true
		}

		realIdx++
	}

	return NoMapping, false
}

// PlaceholderAt returns the display offset of the n-th placeholder (zero
// based), or -1 when the mask has fewer placeholders
func PlaceholderAt(mask string, n int) int {
	if n < 0 {
		return -1
	}
	for i := 0; i < len(mask); i++ {
		if !IsPlaceholder(mask[i]) {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	return -1
}
