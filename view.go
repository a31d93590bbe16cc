package combobox

import "strings"

// View renders the text field and, when open, the option list beneath it.
// Row content passes through sanitization so caller-supplied mappers cannot
// smuggle escape sequences into the terminal.
func (m Model[T]) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Prompt.Render("> "))
	b.WriteString(m.theme.Text.Render(SanitizeOneLine(m.DisplayValue())))
	if m.focused {
		b.WriteString(m.theme.Accent.Render("█"))
	}

	if !m.open {
		return b.String()
	}

	for i, option := range m.options {
		b.WriteString("\n")
		selected := i == m.selection
		label := SanitizeOneLine(m.renderRow(option, selected))
		if selected {
			b.WriteString(m.theme.Hover.Render("> " + label))
		} else {
			b.WriteString(m.theme.Row.Render("  " + label))
		}
	}
	return b.String()
}
