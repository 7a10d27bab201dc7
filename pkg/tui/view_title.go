package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle is the form's title bar: a name on the left and an optional
// detail such as a completion count on the right
type ViewTitle struct {
	text   string
	detail string
}

// NewViewTitle creates a new view title with the given text
func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{
		text: text,
	}
}

// SetDetail sets the right-hand detail text
func (v *ViewTitle) SetDetail(detail string) {
	v.detail = detail
}

// View renders the title to fit width
func (v *ViewTitle) View(width int) string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	title := titleStyle.Render(v.text)
	if v.detail == "" {
		return title
	}

	detail := DescriptionStyle.Render(v.detail)
	gap := width - lipgloss.Width(title) - lipgloss.Width(detail)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), detail)
}
