package combobox

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mossline/combobox/ident"
)

const noSelection = -1

// ChangedMsg is the default commit message: it is emitted on every keystroke,
// on Enter, and on option click. Escape and blur never emit it.
type ChangedMsg struct {
	ID    string
	Value string
}

// FocusMsg gives the widget keyboard focus.
type FocusMsg struct{}

// BlurMsg reports that focus moved to the element identified by Target. A
// target belonging to this widget (an option row about to handle its own
// click) is ignored.
type BlurMsg struct {
	Target string
}

// Config wires a Model to its host.
type Config[T any] struct {
	// Value is the committed value. The host owns it; the widget only ever
	// reads it back into the display.
	Value string
	// Options are the candidate choices. The host supplies the full list and
	// may replace it wholesale between updates via SetOptions.
	Options []T
	// MapToString projects an option to its display text. It must be
	// deterministic for the same input. Nil falls back to fmt.Sprint.
	MapToString func(T) string
	// MapToNode optionally renders an option row given its selected flag.
	// When nil, rows render through MapToString. The choice is made once at
	// construction.
	MapToNode func(option T, selected bool) string
	// OnChange is invoked at every commit moment with the new value. Nil
	// defaults to a command emitting ChangedMsg tagged with the input ID.
	OnChange func(value string) tea.Cmd
	// Theme overrides DefaultTheme.
	Theme *Theme
	// IDs generates the widget's stable identifiers. Nil uses the
	// process-wide generator.
	IDs ident.Generator
}

// Model is a text field paired with a dropdown option list. The host owns the
// committed value and the option list and pushes both in with SetValue and
// SetOptions; the widget manages the open/closed state, the highlighted
// option, and the edited text, and reports commits through OnChange.
type Model[T any] struct {
	value     string
	options   []T
	selection int
	tempValue string
	open      bool
	focused   bool

	mapString func(T) string
	renderRow func(T, bool) string
	onChange  func(string) tea.Cmd
	theme     Theme

	rootID    string
	inputID   string
	listboxID string
	optionID  string
}

// New builds a Model. The four identifiers are drawn from the generator once
// and kept for the widget's lifetime.
func New[T any](cfg Config[T]) Model[T] {
	mapString := cfg.MapToString
	if mapString == nil {
		mapString = func(option T) string { return fmt.Sprint(option) }
	}

	renderRow := func(option T, _ bool) string { return mapString(option) }
	if cfg.MapToNode != nil {
		renderRow = cfg.MapToNode
	}

	theme := DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}

	gen := cfg.IDs
	if gen == nil {
		gen = ident.Default()
	}

	m := Model[T]{
		value:     cfg.Value,
		options:   cfg.Options,
		selection: noSelection,
		tempValue: cfg.Value,
		focused:   true,
		mapString: mapString,
		renderRow: renderRow,
		theme:     theme,
		rootID:    gen.Next("combobox"),
		inputID:   gen.Next("combobox-input"),
		listboxID: gen.Next("combobox-listbox"),
		optionID:  gen.Next("combobox-option"),
	}

	m.onChange = cfg.OnChange
	if m.onChange == nil {
		id := m.inputID
		m.onChange = func(value string) tea.Cmd {
			return func() tea.Msg {
				return ChangedMsg{ID: id, Value: value}
			}
		}
	}
	return m
}

// SetValue replaces the committed value. Display text picks it up through
// reconciliation or the empty-text fallback.
func (m *Model[T]) SetValue(value string) {
	m.value = value
}

// SetOptions replaces the option list and reconciles the selection and
// display text against it. The list may have grown, shrunk, or been swapped
// since the last call.
func (m *Model[T]) SetOptions(options []T) {
	m.options = options
	m.reconcile()
}

// setSelection moves the highlight and reconciles. Reconciliation only runs
// on an actual change.
func (m *Model[T]) setSelection(index int) {
	if index == m.selection {
		return
	}
	m.selection = index
	m.reconcile()
}

// reconcile recomputes the display text from the selection and option list.
// An index past the end resets to no selection and falls back to the
// committed value. The boundary is deliberately index > len(options), so
// index == len(options) slips through both resets and the lookup guard below
// turns it into a no-op.
func (m *Model[T]) reconcile() {
	switch {
	case m.selection == noSelection:
		m.tempValue = m.value
	case m.selection > len(m.options):
		m.selection = noSelection
		m.tempValue = m.value
	case m.selection >= 0 && m.selection < len(m.options):
		m.tempValue = m.mapString(m.options[m.selection])
	}
}

func (m Model[T]) Init() tea.Cmd {
	return nil
}

func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case FocusMsg:
		m.Focus()
		return m, nil
	case BlurMsg:
		m.Blur(msg.Target)
		return m, nil
	}
	return m, nil
}

func (m Model[T]) updateKey(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	switch {
	case isDown(msg):
		m.open = true
		m.setSelection(m.nextSelection())
	case isUp(msg):
		m.setSelection(m.prevSelection())
	case isEnter(msg):
		committed := m.tempValue
		m.open = false
		m.setSelection(noSelection)
		return m, m.onChange(committed)
	case isBack(msg):
		m.open = false
		m.setSelection(noSelection)
		m.tempValue = m.value
	case isKey(msg, "backspace", "delete"):
		text := m.DisplayValue()
		if text == "" {
			return m, nil
		}
		runes := []rune(text)
		return m, m.typeText(string(runes[:len(runes)-1]))
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			return m, m.typeText(m.DisplayValue() + string(msg.Runes))
		}
		if isKey(msg, " ") {
			return m, m.typeText(m.DisplayValue() + " ")
		}
	}
	return m, nil
}

// typeText applies an edit to the field: the list opens, any selection
// preview is abandoned, the typed text wins over the reconciled value, and
// the commit fires on this keystroke.
func (m *Model[T]) typeText(text string) tea.Cmd {
	m.open = true
	m.setSelection(noSelection)
	m.tempValue = text
	return m.onChange(text)
}

func (m Model[T]) updateMouse(msg tea.MouseMsg) (Model[T], tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	// Widget-local coordinates: row 0 is the text field, rows 1..N map to
	// the open list.
	if msg.Y == 0 {
		m.Focus()
		return m, nil
	}
	if !m.open {
		return m, nil
	}
	cmd := m.ClickOption(msg.Y - 1)
	return m, cmd
}

// ClickOption activates the option at index: the highlight moves there, its
// stringified form is committed, the list closes, and keyboard focus returns
// to the field. A stale index (the list changed since it was rendered) is a
// no-op.
func (m *Model[T]) ClickOption(index int) tea.Cmd {
	if index < 0 || index >= len(m.options) {
		return nil
	}
	m.setSelection(index)
	m.tempValue = m.mapString(m.options[index])
	m.open = false
	m.focused = true
	return m.onChange(m.tempValue)
}

// Focus gives the widget keyboard focus.
func (m *Model[T]) Focus() {
	m.focused = true
}

// Blur reports that focus moved to the element identified by target. When
// the target is inside this widget the blur is ignored; otherwise the list
// closes and any uncommitted edit is discarded.
func (m *Model[T]) Blur(target string) {
	if m.Contains(target) {
		return
	}
	m.focused = false
	m.open = false
	m.setSelection(noSelection)
	m.tempValue = m.value
}

func (m Model[T]) nextSelection() int {
	next := m.selection + 1
	if next >= len(m.options) {
		return noSelection
	}
	return next
}

func (m Model[T]) prevSelection() int {
	prev := m.selection - 1
	if prev < noSelection {
		return len(m.options) - 1
	}
	return prev
}

// Value returns the committed value last pushed in by the host.
func (m Model[T]) Value() string { return m.value }

// TempValue returns the working text.
func (m Model[T]) TempValue() string { return m.tempValue }

// Selection returns the highlighted option index, or -1.
func (m Model[T]) Selection() int { return m.selection }

// IsOpen reports whether the option list is visible.
func (m Model[T]) IsOpen() bool { return m.open }

// Focused reports whether the widget has keyboard focus.
func (m Model[T]) Focused() bool { return m.focused }

// DisplayValue is the text the field shows: the working text when non-empty,
// otherwise the committed value.
func (m Model[T]) DisplayValue() string {
	if m.tempValue != "" {
		return m.tempValue
	}
	return m.value
}
