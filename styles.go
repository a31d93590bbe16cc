package combobox

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorAccent = lipgloss.Color("#a7754e") // warm
	ColorHover  = lipgloss.Color("#c78854") // highlighted row
	ColorText   = lipgloss.Color("#d7d9da") // main text
	ColorMuted  = lipgloss.Color("#9ba0bf") // muted text
)

// Theme carries the styles the widget renders with. Accent colors the cursor
// block, Hover the highlighted row.
type Theme struct {
	Accent lipgloss.Style
	Hover  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Prompt lipgloss.Style
	Row    lipgloss.Style
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		Accent: lipgloss.NewStyle().Foreground(ColorAccent),
		Hover: lipgloss.NewStyle().
			Foreground(ColorHover).
			Bold(true),
		Text:   lipgloss.NewStyle().Foreground(ColorText),
		Muted:  lipgloss.NewStyle().Foreground(ColorMuted),
		Prompt: lipgloss.NewStyle().Foreground(ColorMuted),
		Row:    lipgloss.NewStyle().Foreground(ColorText),
	}
}
