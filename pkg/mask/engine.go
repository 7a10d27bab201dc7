package mask

// HandleKey applies one key to the field and reports whether the key was
// consumed. Every key except Tab is consumed, including keys that change
// nothing, so stray characters never reach the host's text.
func (f *Field) HandleKey(k Key) bool {
	switch k.Kind {
	case KeyTab:
		return false
	case KeyBackspace:
		f.backspace()
	case KeyLeft:
		f.moveLeft()
	case KeyRight:
		f.moveRight()
	case KeyDigit:
		f.insertDigit(k.Digit)
	}
	return true
}

// backspace removes the character under the caret, or the last character
// when the caret is past the value, and steps the caret back by one
func (f *Field) backspace() {
	r, ok := DisplayToReal(f.mask, f.real, f.selectionStart)
	if !ok {
		return
	}
	if r > len(f.real)-1 {
		r = len(f.real) - 1
	}
	if r < 0 {
		return
	}

	start := f.selectionStart
	f.SetRealText(f.real[:r] + f.real[r+1:])
	f.SetSelectionStart(start - 1)
}

// moveLeft and moveRight place the caret using the real index as a display
// offset. Masks with single character placeholders rely on this.
func (f *Field) moveLeft() {
	r, ok := DisplayToReal(f.mask, f.real, f.selectionStart)
	if !ok || r <= 0 {
		return
	}
	f.SetSelectionStart(r - 1)
}

func (f *Field) moveRight() {
	r, ok := DisplayToReal(f.mask, f.real, f.selectionStart)
	if !ok || r >= len(f.real) {
		return
	}
	f.SetSelectionStart(r + 1)
}

// insertDigit inserts d at the caret and moves the caret one position per
// literal crossed plus one
func (f *Field) insertDigit(d byte) {
	if len(f.real) >= PlaceholderCount(f.mask) {
		return
	}
	r, ok := DisplayToReal(f.mask, f.real, f.selectionStart)
	if !ok {
		return
	}

	landing := PlaceholderAt(f.mask, r)
	if landing < 0 || !IsValidForSlot(d, f.mask[landing]) {
		return
	}

	start := f.selectionStart
	extra := 0

	// A caret resting on a literal first crosses the literals up to the
	// next placeholder.
	next := start
	for next < len(f.mask) && !IsPlaceholder(f.mask[next]) {
		next++
		extra++
	}
	next++
	for next < len(f.mask) && !IsPlaceholder(f.mask[next]) {
		next++
		extra++
	}

	f.SetRealText(f.real[:r] + string(d) + f.real[r:])
	f.pendingAdvance = true
	f.SetSelectionStart(start + extra + 1)
}
