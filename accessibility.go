package combobox

// Accessibility is the widget's assistive-technology contract: the field
// carries combobox semantics, references the listbox it controls, and names
// the highlighted row as its active descendant while real focus stays on the
// field.
type Accessibility struct {
	Role             string // always "combobox"
	Autocomplete     string // always "list"
	Popup            string // always "listbox"
	Expanded         bool
	Controls         string // listbox identifier
	ActiveDescendant string // highlighted option identifier, empty when none
	Rows             []RowAccessibility
}

// RowAccessibility describes one option row. ID is set only on the selected
// row, enabling the active-descendant reference.
type RowAccessibility struct {
	ID       string
	Selected bool
}

// Accessibility returns the current semantic snapshot. Identifiers are the
// ones memoized at construction; they never regenerate.
func (m Model[T]) Accessibility() Accessibility {
	a := Accessibility{
		Role:         "combobox",
		Autocomplete: "list",
		Popup:        "listbox",
		Expanded:     m.open,
		Controls:     m.listboxID,
		Rows:         make([]RowAccessibility, len(m.options)),
	}
	if m.selection >= 0 && m.selection < len(m.options) {
		a.ActiveDescendant = m.optionID
		a.Rows[m.selection] = RowAccessibility{ID: m.optionID, Selected: true}
	}
	return a
}

// RootID identifies the widget's container.
func (m Model[T]) RootID() string { return m.rootID }

// InputID identifies the text field.
func (m Model[T]) InputID() string { return m.inputID }

// ListboxID identifies the option list.
func (m Model[T]) ListboxID() string { return m.listboxID }

// OptionID identifies the highlighted option row.
func (m Model[T]) OptionID() string { return m.optionID }

// Contains reports whether target is one of this widget's identifiers. Blur
// suppression uses it the way a DOM widget checks descendant containment.
func (m Model[T]) Contains(target string) bool {
	switch target {
	case m.rootID, m.inputID, m.listboxID, m.optionID:
		return true
	}
	return false
}
