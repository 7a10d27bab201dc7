package mask

// Host is the widget a Field drives. It receives the rendered text and caret
// offset whenever they change.
type Host interface {
	SetText(text string)
	SetCaret(offset int)
}

// Property names an observable property of a Field
type Property string

const (
	PropertyMask     Property = "mask"
	PropertyRealText Property = "real_text"
)

// Change is delivered to listeners after a property was assigned and the
// display text rederived
type Change struct {
	Property Property
	Display  string
}

// Field holds the state of one masked input: the mask, the real value, the
// derived display text and the caret. It is not safe for concurrent use.
type Field struct {
	mask           string
	real           string
	display        string
	selectionStart int
	pendingAdvance bool

	// validating is set while a validator pass runs, writing while a caret
	// write is being pushed to the host. Selection notifications that arrive
	// during either are echoes of our own writes and are ignored.
	validating bool
	writing    bool

	host      Host
	listeners []func(Change)
}

// NewField creates a field for mask with an empty value and the caret on the
// first legal slot
func NewField(mask string) *Field {
	f := &Field{}
	f.SetMask(mask)
	return f
}

// AttachHost connects a host and pushes the current text and caret to it
func (f *Field) AttachHost(h Host) {
	f.host = h
	if h == nil {
		return
	}
	h.SetText(f.display)
	f.pushCaret()
}

// OnChange registers fn to be called after every mask or value assignment
func (f *Field) OnChange(fn func(Change)) {
	f.listeners = append(f.listeners, fn)
}

// Mask returns the current mask
func (f *Field) Mask() string {
	return f.mask
}

// SetMask replaces the mask, rederives the display and revalidates the caret
func (f *Field) SetMask(mask string) {
	f.mask = mask
	f.rederive(PropertyMask)
	f.validate()
}

// RealText returns the underlying value
func (f *Field) RealText() string {
	return f.real
}

// SetRealText assigns the value directly. Characters are not validated here;
// the display blanks everything from the first invalid character on.
func (f *Field) SetRealText(real string) {
	f.real = real
	f.rederive(PropertyRealText)
	f.validate()
}

// DisplayText returns the mask rendered with the real value
func (f *Field) DisplayText() string {
	return f.display
}

// SelectionStart returns the caret offset in display coordinates
func (f *Field) SelectionStart() int {
	return f.selectionStart
}

// SetSelectionStart moves the caret and snaps it onto a legal slot
func (f *Field) SetSelectionStart(offset int) {
	f.writeCaret(offset)
	f.validate()
}

// SelectionChanged is the host's notification that the caret moved to
// offset. Notifications caused by the field's own caret writes are ignored.
func (f *Field) SelectionChanged(offset int) {
	if f.validating || f.writing {
		return
	}
	f.selectionStart = offset
	f.validate()
}

// PendingAdvance reports whether the next validator pass is biased forward
func (f *Field) PendingAdvance() bool {
	return f.pendingAdvance
}

// PlaceholderCount returns the number of editable slots in the mask
func (f *Field) PlaceholderCount() int {
	return PlaceholderCount(f.mask)
}

// IsComplete reports whether every placeholder holds a character
func (f *Field) IsComplete() bool {
	return f.mask != "" && len(f.real) == f.PlaceholderCount()
}

// LegalSlots returns the caret slots for the current mask and value
func (f *Field) LegalSlots() []int {
	return LegalSlots(f.mask, f.real)
}

func (f *Field) rederive(prop Property) {
	f.display = Project(f.mask, f.real)
	if f.host != nil {
		f.host.SetText(f.display)
	}
	for _, fn := range f.listeners {
		fn(Change{Property: prop, Display: f.display})
	}
}

// validate snaps the caret onto a legal slot and clears PendingAdvance
func (f *Field) validate() {
	if f.validating {
		return
	}
	f.validating = true
	defer func() { f.validating = false }()

	advance := f.pendingAdvance
	f.pendingAdvance = false

	slot, ok := Snap(LegalSlots(f.mask, f.real), f.selectionStart, advance)
	if ok && slot != f.selectionStart {
		f.writeCaret(slot)
	}
}

func (f *Field) writeCaret(offset int) {
	f.selectionStart = offset
	f.pushCaret()
}

func (f *Field) pushCaret() {
	if f.host == nil {
		return
	}
	f.writing = true
	defer func() { f.writing = false }()
	f.host.SetCaret(f.selectionStart)
}
