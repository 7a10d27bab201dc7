package mask

import "strings"

// Project renders real onto mask. Literals are copied, placeholders take the
// next real character or Unfilled. The first character that is not valid for
// its slot blanks every later placeholder and stops consuming real.
func Project(mask, real string) string {
	if mask == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(mask))

	realIdx := 0
	invalid := false

	for i := 0; i < len(mask); i++ {
		c := mask[i]

		if !IsPlaceholder(c) {
			b.WriteByte(c)
			continue
		}

		if invalid || realIdx >= len(real) {
			b.WriteByte(Unfilled)
			continue
		}

		ch := real[realIdx]
		if !IsValidForSlot(ch, c) {
			invalid = true
			b.WriteByte(Unfilled)
			continue
		}

		b.WriteByte(ch)
		realIdx++
	}

	return b.String()
}
