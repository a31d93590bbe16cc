// Package demo hosts the combobox widget the way a real application does:
// it owns the committed value and the option list, pushes both back into the
// widget whenever the value changes, and consumes commit messages.
package demo

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mossline/combobox"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf")).
			PaddingTop(1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f866b"))
)

// fieldRow is the screen row View places the widget's text field on: the
// header line and the blank line below it come first. Mouse events carry
// screen coordinates and must be shifted by it before reaching the widget.
const fieldRow = 2

// App is the root TUI model.
type App struct {
	box     combobox.Model[string]
	value   string
	options []string
	width   int
	height  int
}

// NewApp builds the demo around a fixed option list.
func NewApp(options []string, theme combobox.Theme) App {
	box := combobox.New(combobox.Config[string]{
		Options:     options,
		MapToString: func(s string) string { return s },
		Theme:       &theme,
	})
	return App{
		box:     box,
		options: options,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case combobox.ChangedMsg:
		// The commit round-trip: adopt the value and hand it, plus the full
		// option list, back to the widget.
		a.value = msg.Value
		a.box.SetValue(a.value)
		a.box.SetOptions(a.options)
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	case tea.MouseMsg:
		msg.Y -= fieldRow
		var cmd tea.Cmd
		a.box, cmd = a.box.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.box, cmd = a.box.Update(msg)
	return a, cmd
}

func (a App) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Pick a fruit"))
	b.WriteString("\n\n")
	b.WriteString(a.box.View())
	b.WriteString("\n\n")
	b.WriteString(valueStyle.Render("Committed: " + a.value))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑/↓ navigate · enter commit · esc revert · ctrl+c quit"))
	return b.String()
}

// Value returns the committed value the app owns.
func (a App) Value() string { return a.value }
