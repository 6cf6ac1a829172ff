package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the full-screen view.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Border lipgloss.Color
	Pen    lipgloss.Color
	Prompt lipgloss.Color
	Status lipgloss.Color
	Error  lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#88ff88"),
		Border: lipgloss.Color("#005500"),
		Pen:    lipgloss.Color("#00ff00"),
		Prompt: lipgloss.Color("#00cc00"),
		Status: lipgloss.Color("#88ff88"),
		Error:  lipgloss.Color("#ff0000"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#00ffff"),
		Border: lipgloss.Color("#444466"),
		Pen:    lipgloss.Color("#ff00ff"),
		Prompt: lipgloss.Color("#ffff00"),
		Status: lipgloss.Color("#00ff00"),
		Error:  lipgloss.Color("#ff0000"),
		Muted:  lipgloss.Color("#666666"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Pen:    lipgloss.Color("#ffffff"),
		Prompt: lipgloss.Color("#0088ff"),
		Status: lipgloss.Color("#cccccc"),
		Error:  lipgloss.Color("#ff0000"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#4488aa"),
		Pen:    lipgloss.Color("#ffd700"),
		Prompt: lipgloss.Color("#0077be"),
		Status: lipgloss.Color("#00ff88"),
		Error:  lipgloss.Color("#ff4444"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#feca57"),
		Border: lipgloss.Color("#8b6b8c"),
		Pen:    lipgloss.Color("#ff6b6b"),
		Prompt: lipgloss.Color("#ff9ff3"),
		Status: lipgloss.Color("#5fd068"),
		Error:  lipgloss.Color("#ff4757"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// themeIndex returns the position of name in Themes, or 0 if unknown.
func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
