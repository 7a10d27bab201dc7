package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/maskedit/pkg/files"
	"github.com/pluqqy/maskedit/pkg/models"
)

const statusTimeout = 3 * time.Second

// App is the form of masked fields
type App struct {
	fields    []*MaskFieldState
	focus     int
	settings  *models.Settings
	values    *models.Values
	canSave   bool
	copy      func(string) error
	renderer  *InputRenderer
	title     *ViewTitle
	confirm   *ConfirmationModel
	keys      keyMap
	help      help.Model
	width     int
	height    int
	statusMsg string
	statusSeq int
}

// AppOption configures an App
type AppOption func(*App)

// WithSaving enables writing values to the project on ctrl+s
func WithSaving(enabled bool) AppOption {
	return func(a *App) {
		a.canSave = enabled
	}
}

// WithClipboard replaces the clipboard writer
func WithClipboard(fn func(string) error) AppOption {
	return func(a *App) {
		a.copy = fn
	}
}

// NewApp builds the form for the configured fields, pre-filled with saved
// values
func NewApp(settings *models.Settings, values *models.Values, opts ...AppOption) *App {
	if values == nil {
		values = models.NewValues()
	}

	a := &App{
		settings: settings,
		values:   values,
		copy:     clipboard.WriteAll,
		renderer: NewInputRenderer(settings.UI.Width),
		title:    NewViewTitle("MASKEDIT"),
		confirm:  NewConfirmation(),
		keys:     newKeyMap(),
		help:     help.New(),
	}

	for _, fs := range settings.Fields {
		a.fields = append(a.fields, NewMaskFieldState(fs, values.Get(fs.Name)))
	}
	if len(a.fields) > 0 {
		a.fields[0].Focused = true
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return ClearStatusMsg{seq: seq}
		})

	case ClearStatusMsg:
		// A newer status restarted the timer
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case valuesSavedMsg:
		a.values = msg.values
		return a, func() tea.Msg {
			return StatusMsg("✓ Values saved")
		}

	case tea.KeyMsg:
		if a.confirm.Active() {
			return a, a.confirm.Update(msg)
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, a.quit()
		case key.Matches(msg, a.keys.Save):
			return a, a.save()
		case key.Matches(msg, a.keys.Copy):
			return a, a.copyFocused()
		case key.Matches(msg, a.keys.Clear):
			if field := a.Focused(); field != nil {
				field.Clear()
			}
			return a, nil
		case key.Matches(msg, a.keys.Prev):
			a.moveFocus(-1)
			return a, nil
		}

		field := a.Focused()
		if field == nil {
			return a, nil
		}

		handled, cmd := field.HandleInput(msg)
		if !handled && key.Matches(msg, a.keys.Next) {
			a.moveFocus(1)
		}
		return a, cmd
	}

	return a, nil
}

// SetSize updates the layout for a new terminal size
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width

	fieldWidth := a.settings.UI.Width
	if fieldWidth <= 0 || fieldWidth > width-4 {
		fieldWidth = width - 4
	}
	a.renderer.Width = fieldWidth
}

// Focused returns the field that receives keys
func (a *App) Focused() *MaskFieldState {
	if len(a.fields) == 0 {
		return nil
	}
	return a.fields[a.focus]
}

// Fields returns the form fields in order
func (a *App) Fields() []*MaskFieldState {
	return a.fields
}

// Status returns the current status message
func (a *App) Status() string {
	return a.statusMsg
}

// Unsaved returns the fields whose value differs from the saved one
func (a *App) Unsaved() []*MaskFieldState {
	var changed []*MaskFieldState
	for _, f := range a.fields {
		if f.Field.RealText() != a.values.Get(f.Name) {
			changed = append(changed, f)
		}
	}
	return changed
}

// quit exits at once unless saving is enabled and values changed, in which
// case it asks first
func (a *App) quit() tea.Cmd {
	changed := a.Unsaved()
	if !a.canSave || len(changed) == 0 {
		return tea.Quit
	}

	details := make([]string, 0, len(changed))
	for _, f := range changed {
		details = append(details, fmt.Sprintf("%s: %s", f.Label, f.Field.DisplayText()))
	}

	a.confirm.Show(ConfirmationConfig{
		Message:     "Discard unsaved values?",
		Details:     details,
		Destructive: true,
	}, func() tea.Cmd {
		return tea.Quit
	}, nil)

	return nil
}

func (a *App) moveFocus(delta int) {
	n := len(a.fields)
	if n == 0 {
		return
	}
	a.fields[a.focus].Focused = false
	a.focus = (a.focus + delta + n) % n
	a.fields[a.focus].Focused = true
}

// save writes the field values in the background. The saved set is only
// replaced once the write succeeded, so a failed save still counts as
// unsaved on quit.
func (a *App) save() tea.Cmd {
	snapshot := models.NewValues()
	for name, real := range a.values.Fields {
		snapshot.Set(name, real)
	}
	for _, f := range a.fields {
		snapshot.Set(f.Name, f.Field.RealText())
	}

	if !a.canSave {
		a.values = snapshot
		return func() tea.Msg {
			return StatusMsg("Values are kept for this session only (run 'maskedit init' to save them)")
		}
	}

	return func() tea.Msg {
		if err := files.WriteValues(snapshot); err != nil {
			return StatusMsg(fmt.Sprintf("✗ Failed to save values: %v", err))
		}
		return valuesSavedMsg{values: snapshot}
	}
}

func (a *App) copyFocused() tea.Cmd {
	field := a.Focused()
	if field == nil {
		return nil
	}

	text := field.Field.DisplayText()
	label := field.Label
	copyFn := a.copy

	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return StatusMsg(fmt.Sprintf("✗ Failed to copy: %v", err))
		}
		return StatusMsg(fmt.Sprintf("✓ Copied %s: %s", label, text))
	}
}

// Messages for communication between views
type StatusMsg string

// ClearStatusMsg is sent to clear the status set by the StatusMsg with the
// same sequence number
type ClearStatusMsg struct {
	seq int
}

// valuesSavedMsg carries the value set that was written to disk
type valuesSavedMsg struct {
	values *models.Values
}
