package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Status  lipgloss.Style
	KeyHint lipgloss.Style
	High    lipgloss.Style
	Low     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Status:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		High:    lipgloss.NewStyle().Foreground(t.Accent),
		Low:     lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// ProgressBar renders a width-cell bar filled to percent.
func (s Styles) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(filled, width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 1 {
		return s.High.Render(bar)
	}
	return s.Low.Render(bar)
}
