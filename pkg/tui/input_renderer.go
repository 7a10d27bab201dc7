package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/maskedit/pkg/mask"
)

// InputRenderer renders masked input fields
type InputRenderer struct {
	Width int
}

// NewInputRenderer creates a new input renderer
func NewInputRenderer(width int) *InputRenderer {
	return &InputRenderer{Width: width}
}

// RenderMaskedField renders display text with the caret cell highlighted.
// Unfilled slots are dimmed. A caret at len(display) is drawn as a trailing
// block.
func (ir *InputRenderer) RenderMaskedField(display string, caret int, showCursor, cursorVisible bool) string {
	inputFieldStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorNormal)).
		Width(ir.Width).
		Padding(0, 1)

	cursorStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorActive)).
		Foreground(lipgloss.Color(ColorWhite)).
		Bold(true)

	unfilledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorVeryDim))

	if caret < 0 {
		caret = 0
	}
	if caret > len(display) {
		caret = len(display)
	}

	var content strings.Builder

	for i := 0; i < len(display); i++ {
		cell := string(display[i])
		switch {
		case showCursor && cursorVisible && i == caret:
			content.WriteString(cursorStyle.Render(cell))
		case display[i] == mask.Unfilled:
			content.WriteString(unfilledStyle.Render(cell))
		default:
			content.WriteString(cell)
		}
	}

	if showCursor && cursorVisible && caret == len(display) {
		content.WriteString(cursorStyle.Render(" "))
	}

	return inputFieldStyle.Render(content.String())
}

// RenderMaskedFieldWithLabel renders a field with its label above it
func (ir *InputRenderer) RenderMaskedFieldWithLabel(label, display string, caret int, focused bool) string {
	var result strings.Builder

	if focused {
		result.WriteString(ActiveHeaderStyle.Render(label))
	} else {
		result.WriteString(HeaderStyle.Render(label))
	}
	result.WriteString("\n")
	result.WriteString(ir.RenderMaskedField(display, caret, focused, true))

	return result.String()
}
