package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/maskedit/pkg/models"
)

var dateSettings = models.FieldSettings{Name: "date", Label: "Date", Mask: "99/99/9999"}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewMaskFieldState(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		s := NewMaskFieldState(dateSettings, "")

		assert.Equal(t, "date", s.Name)
		assert.Equal(t, "Date", s.Label)
		assert.Equal(t, "__/__/____", s.Text)
		assert.Equal(t, 0, s.Caret)
	})

	t.Run("saved value puts caret after it", func(t *testing.T) {
		s := NewMaskFieldState(dateSettings, "12")

		assert.Equal(t, "12/__/____", s.Text)
		assert.Equal(t, 3, s.Caret)
	})

	t.Run("label falls back to name", func(t *testing.T) {
		s := NewMaskFieldState(models.FieldSettings{Name: "zip", Mask: "99999"}, "")
		assert.Equal(t, "zip", s.Label)
	})
}

func TestMaskFieldState_HandleInput(t *testing.T) {
	s := NewMaskFieldState(dateSettings, "")

	handled, cmd := s.HandleInput(runes("12"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, "12/__/____", s.Text)
	assert.Equal(t, 3, s.Caret)

	handled, _ = s.HandleInput(runes("x"))
	assert.True(t, handled, "stray characters are swallowed")
	assert.Equal(t, "12/__/____", s.Text)

	handled, _ = s.HandleInput(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, handled)
	assert.Equal(t, "1_/__/____", s.Text)
	assert.Equal(t, 1, s.Caret)

	handled, cmd = s.HandleInput(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestMaskFieldState_CompletionStatus(t *testing.T) {
	s := NewMaskFieldState(dateSettings, "")

	_, cmd := s.HandleInput(runes("1231202"))
	assert.Nil(t, cmd)

	_, cmd = s.HandleInput(runes("4"))
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg("✓ Date complete"), cmd())
	assert.Equal(t, "12/31/2024", s.Text)
	assert.Equal(t, 10, s.Caret)

	// Already complete: no second message
	_, cmd = s.HandleInput(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
}

func TestMaskFieldState_Clear(t *testing.T) {
	s := NewMaskFieldState(dateSettings, "12312024")

	s.Clear()

	assert.Equal(t, "", s.Field.RealText())
	assert.Equal(t, "__/__/____", s.Text)
	assert.Equal(t, 0, s.Caret)
}
