package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/maskedit/pkg/files"
	"github.com/pluqqy/maskedit/pkg/models"
)

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	a := NewApp(models.DefaultSettings(), models.NewValues(), opts...)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

func send(a *App, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

func TestNewApp(t *testing.T) {
	values := models.NewValues()
	values.Set("date", "1231")

	a := NewApp(models.DefaultSettings(), values)

	require.Len(t, a.Fields(), 3)
	assert.True(t, a.Fields()[0].Focused)
	assert.False(t, a.Fields()[1].Focused)
	assert.Equal(t, "12/31/____", a.Fields()[1].Text)
	assert.Nil(t, a.Init())
}

func TestNewApp_NilValues(t *testing.T) {
	a := NewApp(models.DefaultSettings(), nil)
	assert.Equal(t, "(___) ___-____", a.Fields()[0].Text)
}

func TestApp_FocusNavigation(t *testing.T) {
	a := newTestApp(t)

	send(a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "date", a.Focused().Name)

	send(a, tea.KeyMsg{Type: tea.KeyTab})
	send(a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "phone", a.Focused().Name, "tab wraps around")

	send(a, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "zip", a.Focused().Name)

	focused := 0
	for _, f := range a.Fields() {
		if f.Focused {
			focused++
		}
	}
	assert.Equal(t, 1, focused)
}

func TestApp_TypingGoesToFocusedField(t *testing.T) {
	a := newTestApp(t)

	cmd := send(a, runes("5551234567"))

	phone := a.Fields()[0]
	assert.Equal(t, "(555) 123-4567", phone.Text)
	assert.Equal(t, 14, phone.Caret)
	assert.Equal(t, "5551234567", phone.Field.RealText())
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg("✓ Phone number complete"), cmd())

	assert.Equal(t, "", a.Fields()[1].Field.RealText())
}

func TestApp_ClearFocusedField(t *testing.T) {
	a := newTestApp(t)
	send(a, runes("555"))

	send(a, tea.KeyMsg{Type: tea.KeyCtrlK})

	assert.Equal(t, "", a.Fields()[0].Field.RealText())
	assert.Equal(t, 0, a.Fields()[0].Caret)
}

func TestApp_SaveWithoutProject(t *testing.T) {
	a := newTestApp(t)
	send(a, runes("902"))
	send(a, tea.KeyMsg{Type: tea.KeyShiftTab})
	send(a, runes("90210"))

	cmd := send(a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Contains(t, string(msg.(StatusMsg)), "session only")
	assert.Equal(t, "90210", a.values.Get("zip"))
	assert.Equal(t, "902", a.values.Get("phone"))
	assert.Equal(t, "", a.values.Get("date"))
}

func TestApp_SaveWritesValues(t *testing.T) {
	dir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(oldDir)
	require.NoError(t, files.InitProjectStructure())

	a := newTestApp(t, WithSaving(true))
	send(a, tea.KeyMsg{Type: tea.KeyTab})
	send(a, runes("0704"))

	cmd := send(a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Len(t, a.Unsaved(), 1, "values count as unsaved until the write is confirmed")

	cmd = send(a, cmd())
	assert.Empty(t, a.Unsaved())
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg("✓ Values saved"), cmd())

	saved, err := files.ReadValues()
	require.NoError(t, err)
	assert.Equal(t, "0704", saved.Get("date"))
	assert.Equal(t, "", saved.Get("phone"))
}

func TestApp_CopyFocusedDisplay(t *testing.T) {
	var copied string
	a := newTestApp(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	send(a, tea.KeyMsg{Type: tea.KeyTab})
	send(a, runes("12"))

	cmd := send(a, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)

	assert.Equal(t, StatusMsg("✓ Copied Date: 12/__/____"), cmd())
	assert.Equal(t, "12/__/____", copied)
}

func TestApp_CopyFailure(t *testing.T) {
	a := newTestApp(t, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	cmd := send(a, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg("✗ Failed to copy: no clipboard"), cmd())
}

func TestApp_StatusMessages(t *testing.T) {
	a := newTestApp(t)

	cmd := send(a, StatusMsg("hello"))
	assert.Equal(t, "hello", a.Status())
	assert.NotNil(t, cmd, "status clear should be scheduled")

	cmd = send(a, ClearStatusMsg{seq: a.statusSeq})
	assert.Equal(t, "", a.Status())
	assert.Nil(t, cmd)
}

func TestApp_StaleStatusClearIsIgnored(t *testing.T) {
	a := newTestApp(t)

	send(a, StatusMsg("✓ Phone number complete"))
	first := a.statusSeq
	send(a, StatusMsg("✓ Values saved"))

	send(a, ClearStatusMsg{seq: first})
	assert.Equal(t, "✓ Values saved", a.Status())

	send(a, ClearStatusMsg{seq: a.statusSeq})
	assert.Equal(t, "", a.Status())
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp(t)

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		cmd := send(a, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestApp_View(t *testing.T) {
	a := NewApp(models.DefaultSettings(), models.NewValues())
	assert.Equal(t, "Loading...", a.View())

	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	send(a, runes("555"))
	send(a, StatusMsg("a status line"))

	view := a.View()
	assert.Contains(t, view, "MASKEDIT")
	assert.Contains(t, view, "Phone number")
	assert.Contains(t, view, "ZIP code")
	assert.Contains(t, view, `value: "555"`)
	assert.Contains(t, view, "a status line")
	assert.NotContains(t, view, "slots:")
}

func TestApp_ViewShowsSlots(t *testing.T) {
	settings := models.DefaultSettings()
	settings.UI.ShowSlots = true
	settings.UI.ShowRealText = false

	a := NewApp(settings, models.NewValues())
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := a.View()
	assert.Contains(t, view, "slots: [0 1]")
	assert.NotContains(t, view, "value:")
}

func TestApp_NoFields(t *testing.T) {
	a := NewApp(&models.Settings{}, nil)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, a.Focused())
	assert.Nil(t, send(a, runes("1")))
	assert.Nil(t, send(a, tea.KeyMsg{Type: tea.KeyCtrlY}))
	assert.True(t, strings.Contains(a.View(), "No fields configured"))
}

func TestApp_SetSizeLimitsFieldWidth(t *testing.T) {
	a := NewApp(models.DefaultSettings(), nil)

	a.SetSize(30, 10)
	assert.Equal(t, 26, a.renderer.Width)

	a.SetSize(120, 40)
	assert.Equal(t, 40, a.renderer.Width)
}

func TestApp_QuitAsksWhenValuesChanged(t *testing.T) {
	a := newTestApp(t, WithSaving(true))
	send(a, runes("555"))

	require.Len(t, a.Unsaved(), 1)
	assert.Nil(t, send(a, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Contains(t, a.View(), "Discard unsaved values?")
	assert.Contains(t, a.View(), "Phone number: (555) ___-____")

	// Digits go to the prompt, not the field
	send(a, runes("1"))
	assert.Equal(t, "555", a.Fields()[0].Field.RealText())

	assert.Nil(t, send(a, runes("n")))
	assert.NotContains(t, a.View(), "Discard unsaved values?")

	send(a, tea.KeyMsg{Type: tea.KeyEsc})
	cmd := send(a, runes("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ViewShowsCompletion(t *testing.T) {
	a := newTestApp(t)
	assert.Contains(t, a.View(), "0/3 complete")

	send(a, runes("5551234567"))
	assert.Contains(t, a.View(), "1/3 complete")
}

func TestApp_FailedSaveStaysUnsaved(t *testing.T) {
	dir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(oldDir)
	require.NoError(t, files.InitProjectStructure())
	// A directory where the values file belongs makes the write fail
	require.NoError(t, os.Mkdir(filepath.Join(files.MaskeditDir, files.ValuesFile), 0755))

	a := newTestApp(t, WithSaving(true))
	send(a, runes("5"))

	cmd := send(a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, StatusMsg(""), msg)
	assert.Contains(t, string(msg.(StatusMsg)), "Failed to save values")
	send(a, msg)

	require.Len(t, a.Unsaved(), 1)
	assert.Equal(t, "", a.values.Get("phone"))

	assert.Nil(t, send(a, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.True(t, a.confirm.Active())
}
