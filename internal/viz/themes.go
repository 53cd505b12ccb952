package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

// Available themes
var (
	ThemeMono = Theme{
		Name:    "mono",
		Accent:  lipgloss.Color("#b4b4b4"),
		Muted:   lipgloss.Color("#3c3c3c"),
		Success: lipgloss.Color("#ffffff"),
		Warning: lipgloss.Color("#b4b4b4"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Accent:  lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Accent:  lipgloss.Color("#ffd700"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
	}

	Themes = []Theme{ThemeMono, ThemeRetroGreen, ThemeOcean}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("viz: unknown theme %q", name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
