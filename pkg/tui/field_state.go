package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/maskedit/pkg/mask"
	"github.com/pluqqy/maskedit/pkg/models"
)

// MaskFieldState is one masked field in the form. It is the host of its
// mask.Field and mirrors the text and caret the field pushes to it.
type MaskFieldState struct {
	Name    string
	Label   string
	Field   *mask.Field
	Text    string // Rendered text as last pushed by the field
	Caret   int    // Caret offset as last pushed by the field
	Focused bool
}

// NewMaskFieldState creates a field from its settings and a saved value.
// With a saved value the caret starts at the end of it.
func NewMaskFieldState(settings models.FieldSettings, saved string) *MaskFieldState {
	s := &MaskFieldState{
		Name:  settings.Name,
		Label: settings.DisplayLabel(),
	}

	s.Field = mask.NewField(settings.Mask)
	s.Field.AttachHost(s)

	if saved != "" {
		s.Field.SetRealText(saved)
		s.Field.SetSelectionStart(len(settings.Mask))
	}

	return s
}

// SetText implements mask.Host
func (s *MaskFieldState) SetText(text string) {
	s.Text = text
}

// SetCaret implements mask.Host
func (s *MaskFieldState) SetCaret(offset int) {
	s.Caret = offset
}

// HandleInput feeds a key message to the field. Tab is never handled so the
// form can move focus.
func (s *MaskFieldState) HandleInput(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	wasComplete := s.Field.IsComplete()

	handled = true
	for _, k := range KeysFromMsg(msg) {
		if !s.Field.HandleKey(k) {
			handled = false
		}
	}

	if !wasComplete && s.Field.IsComplete() {
		label := s.Label
		cmd = func() tea.Msg {
			return StatusMsg(fmt.Sprintf("✓ %s complete", label))
		}
	}

	return handled, cmd
}

// Clear removes the value and returns the caret to the first slot
func (s *MaskFieldState) Clear() {
	s.Field.SetRealText("")
	s.Field.SetSelectionStart(0)
}
