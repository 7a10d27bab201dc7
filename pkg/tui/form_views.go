package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	a.title.SetDetail(a.completion())
	b.WriteString(a.title.View(a.width))
	b.WriteString("\n\n")

	if len(a.fields) == 0 {
		b.WriteString(DescriptionStyle.Render("No fields configured. Add fields to .maskedit/settings.yaml."))
		b.WriteString("\n")
	}

	for _, f := range a.fields {
		b.WriteString(a.renderField(f))
		b.WriteString("\n\n")
	}

	if a.confirm.Active() {
		b.WriteString(a.confirm.View())
	} else {
		b.WriteString(a.help.View(a.keys))
	}

	if a.statusMsg != "" {
		width := a.width - 2
		if width < 20 {
			width = 20
		}
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(wordwrap.String(a.statusMsg, width)))
	}

	return b.String()
}

func (a *App) renderField(f *MaskFieldState) string {
	var b strings.Builder

	label := f.Label
	if f.Field.IsComplete() {
		label += " " + CompleteStyle.Render("✓")
	}
	b.WriteString(a.renderer.RenderMaskedFieldWithLabel(label, f.Text, f.Caret, f.Focused))

	var details []string
	if a.settings.UI.ShowRealText {
		details = append(details, fmt.Sprintf("value: %q", f.Field.RealText()))
	}
	if a.settings.UI.ShowSlots {
		details = append(details, fmt.Sprintf("caret: %d  slots: %v", f.Caret, f.Field.LegalSlots()))
	}
	if len(details) > 0 {
		b.WriteString("\n")
		b.WriteString(DescriptionStyle.Render(strings.Join(details, "  ")))
	}

	return b.String()
}

func (a *App) completion() string {
	if len(a.fields) == 0 {
		return ""
	}
	complete := 0
	for _, f := range a.fields {
		if f.Field.IsComplete() {
			complete++
		}
	}
	return fmt.Sprintf("%d/%d complete", complete, len(a.fields))
}
